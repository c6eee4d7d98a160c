package service

import (
	"bytes"
	"encoding/csv"
	"testing"

	"Sistem-Absensi-Karyawan/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func parseCSV(t *testing.T, raw []byte) [][]string {
	t.Helper()
	rows, err := csv.NewReader(bytes.NewReader(raw)).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestAttendanceCSV(t *testing.T) {
	records := []models.AttendanceWithUser{
		{
			ID:          primitive.NewObjectID(),
			Date:        "2026-08-03",
			Name:        "Budi",
			Email:       "budi@kantor.id",
			ShiftName:   "Pagi",
			Waktu:       "09:05",
			WaktuKeluar: "16:40",
			Status:      models.StatusTelat,
			Method:      models.MethodReguler,
			Lokasi:      "Kantor Pusat",
			Reason:      "macet, ban bocor",
		},
	}

	raw, err := AttendanceCSV(records)
	require.NoError(t, err)

	rows := parseCSV(t, raw)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Tanggal", "Nama", "Email", "Shift", "Jam Masuk", "Jam Keluar", "Status", "Metode", "Lokasi", "Alasan"}, rows[0])
	assert.Equal(t, "2026-08-03", rows[1][0])
	assert.Equal(t, "Telat", rows[1][6])

	// Alasan berisi koma harus selamat dari quoting CSV.
	assert.Equal(t, "macet, ban bocor", rows[1][9])
}

func TestHoursSummaryCSV(t *testing.T) {
	summaries := []models.HoursSummary{
		{
			UserID:             primitive.NewObjectID(),
			Name:               "Budi",
			Email:              "budi@kantor.id",
			Month:              "2026-08",
			JamSeharusnya:      168,
			JamAktual:          160.5,
			JamKurang:          7.58,
			JamLembur:          0.08,
			HariHadir:          18,
			HariTelat:          2,
			HariSusulan:        1,
			HariTanpaKehadiran: 0,
		},
	}

	raw, err := HoursSummaryCSV(summaries)
	require.NoError(t, err)

	rows := parseCSV(t, raw)
	require.Len(t, rows, 2)
	assert.Equal(t, "Hari Tanpa Kehadiran", rows[0][10])
	assert.Equal(t, []string{"Budi", "budi@kantor.id", "2026-08", "168.00", "160.50", "7.58", "0.08", "18", "2", "1", "0"}, rows[1])
}

func gridFixture() *models.MonthlyGrid {
	return &models.MonthlyGrid{
		Month: "2026-08",
		Days:  []string{"2026-08-03", "2026-08-04"},
		Rows: []models.MonthlyGridRow{
			{
				UserID: primitive.NewObjectID(),
				Name:   "Budi",
				Email:  "budi@kantor.id",
				Cells: []models.MonthlyGridCell{
					{Date: "2026-08-03", Glyph: models.GlyphLengkap, Klasifikasi: models.KlasifikasiLengkap, JamAktual: 8},
					{Date: "2026-08-04", Glyph: models.GlyphKurang, Klasifikasi: models.KlasifikasiKurang, JamAktual: 4},
				},
				TotalJamSeharusnya: 16,
				TotalJamAktual:     12,
				TotalJamKurang:     4,
				TotalJamLembur:     0,
			},
		},
	}
}

func TestGridCSV(t *testing.T) {
	raw, err := GridCSV(gridFixture())
	require.NoError(t, err)

	rows := parseCSV(t, raw)
	require.Len(t, rows, 2)

	// Nama + Email + 2 hari + 4 kolom total
	require.Len(t, rows[0], 8)
	assert.Equal(t, "2026-08-03", rows[0][2])
	assert.Equal(t, []string{"Budi", "budi@kantor.id", "✓", "−", "16.00", "12.00", "4.00", "0.00"}, rows[1])
}

func TestGridXLSX(t *testing.T) {
	raw, err := GridXLSX(gridFixture())
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue("Rekap Harian", "A1")
	require.NoError(t, err)
	assert.Equal(t, "REKAP HARIAN 2026-08", title)

	name, err := f.GetCellValue("Rekap Harian", "A3")
	require.NoError(t, err)
	assert.Equal(t, "Budi", name)

	glyph, err := f.GetCellValue("Rekap Harian", "C3")
	require.NoError(t, err)
	assert.Equal(t, models.GlyphLengkap, glyph)
}
