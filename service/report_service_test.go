package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"Sistem-Absensi-Karyawan/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeUserSource struct {
	karyawan []models.User
}

func (f *fakeUserSource) FindAllKaryawan(ctx context.Context) ([]models.User, error) {
	return f.karyawan, nil
}

func (f *fakeUserSource) FindUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	for i := range f.karyawan {
		if f.karyawan[i].ID == id {
			return &f.karyawan[i], nil
		}
	}
	return nil, nil
}

type fakeAttendanceSource struct {
	records []models.AttendanceWithShift
	err     error
}

func (f *fakeAttendanceSource) FindRangeWithShift(ctx context.Context, startDate, endDate string) ([]models.AttendanceWithShift, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.AttendanceWithShift
	for _, r := range f.records {
		if r.Date >= startDate && r.Date <= endDate {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeAttendanceSource) FindUserRangeWithShift(ctx context.Context, userID primitive.ObjectID, startDate, endDate string) ([]models.AttendanceWithShift, error) {
	all, err := f.FindRangeWithShift(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}
	var out []models.AttendanceWithShift
	for _, r := range all {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func newTestUser(name, email string) models.User {
	return models.User{
		ID:    primitive.NewObjectID(),
		Name:  name,
		Email: email,
		Role:  "karyawan",
	}
}

func shiftOf(name, start, end string) *models.Shift {
	return &models.Shift{
		ID:        primitive.NewObjectID(),
		Name:      name,
		StartTime: start,
		EndTime:   end,
	}
}

func record(user models.User, date, in, out, status string, shift *models.Shift) models.AttendanceWithShift {
	return models.AttendanceWithShift{
		ID:          primitive.NewObjectID(),
		UserID:      user.ID,
		Date:        date,
		Waktu:       in,
		WaktuKeluar: out,
		Status:      status,
		Method:      models.MethodReguler,
		Shift:       shift,
	}
}

func newReportService(users []models.User, records []models.AttendanceWithShift) *ReportService {
	return NewReportService(
		&fakeUserSource{karyawan: users},
		&fakeAttendanceSource{records: records},
		time.UTC,
	)
}

func TestUserHoursSummary(t *testing.T) {
	ctx := context.Background()
	pagi := shiftOf("Pagi", "09:00", "17:00")
	malam := shiftOf("Malam", "22:00", "06:00")

	t.Run("late checkout leaves missing hours", func(t *testing.T) {
		user := newTestUser("Budi", "budi@kantor.id")
		records := []models.AttendanceWithShift{
			record(user, "2026-08-03", "09:05", "16:40", models.StatusHadir, pagi),
		}

		summary, err := newReportService([]models.User{user}, records).UserHoursSummary(ctx, user.ID, "2026-08")
		require.NoError(t, err)

		assert.Equal(t, 8.0, summary.JamSeharusnya)
		assert.Equal(t, 7.58, summary.JamAktual)
		assert.Equal(t, 0.42, summary.JamKurang)
		assert.Equal(t, 0.0, summary.JamLembur)
		assert.Equal(t, 1, summary.HariHadir)
		assert.Equal(t, 20, summary.HariTanpaKehadiran)
	})

	t.Run("overnight shift worked in full is complete", func(t *testing.T) {
		user := newTestUser("Sari", "sari@kantor.id")
		records := []models.AttendanceWithShift{
			record(user, "2026-08-03", "22:00", "06:00", models.StatusHadir, malam),
		}

		summary, err := newReportService([]models.User{user}, records).UserHoursSummary(ctx, user.ID, "2026-08")
		require.NoError(t, err)

		assert.Equal(t, 8.0, summary.JamSeharusnya)
		assert.Equal(t, 8.0, summary.JamAktual)
		assert.Equal(t, 0.0, summary.JamKurang)
		assert.Equal(t, 0.0, summary.JamLembur)
	})

	t.Run("record without shift counts as overtime", func(t *testing.T) {
		user := newTestUser("Tono", "tono@kantor.id")
		records := []models.AttendanceWithShift{
			record(user, "2026-08-04", "09:00", "12:00", models.StatusHadir, nil),
		}

		summary, err := newReportService([]models.User{user}, records).UserHoursSummary(ctx, user.ID, "2026-08")
		require.NoError(t, err)

		assert.Equal(t, 0.0, summary.JamSeharusnya)
		assert.Equal(t, 3.0, summary.JamAktual)
		assert.Equal(t, 3.0, summary.JamLembur)
		assert.Equal(t, 0.0, summary.JamKurang)
	})

	t.Run("open session contributes zero actual hours", func(t *testing.T) {
		user := newTestUser("Rina", "rina@kantor.id")
		records := []models.AttendanceWithShift{
			record(user, "2026-08-05", "09:00", "", models.StatusHadir, pagi),
		}

		summary, err := newReportService([]models.User{user}, records).UserHoursSummary(ctx, user.ID, "2026-08")
		require.NoError(t, err)

		assert.Equal(t, 8.0, summary.JamSeharusnya)
		assert.Equal(t, 0.0, summary.JamAktual)
		assert.Equal(t, 8.0, summary.JamKurang)
	})

	t.Run("multiple records on one day are summed", func(t *testing.T) {
		user := newTestUser("Dewi", "dewi@kantor.id")
		records := []models.AttendanceWithShift{
			record(user, "2026-08-06", "09:00", "13:00", models.StatusHadir, pagi),
			record(user, "2026-08-06", "14:00", "18:00", models.StatusHadir, nil),
		}

		summary, err := newReportService([]models.User{user}, records).UserHoursSummary(ctx, user.ID, "2026-08")
		require.NoError(t, err)

		assert.Equal(t, 8.0, summary.JamSeharusnya)
		assert.Equal(t, 8.0, summary.JamAktual)
		assert.Equal(t, 0.0, summary.JamKurang)
		assert.Equal(t, 0.0, summary.JamLembur)
		assert.Equal(t, 1, summary.HariHadir)
	})

	t.Run("rounding happens once on the monthly total", func(t *testing.T) {
		// Tiga sesi 20 menit tanpa shift. Pembulatan per sesi akan
		// menghasilkan 0.99, total penuh harus 1.00.
		user := newTestUser("Joko", "joko@kantor.id")
		records := []models.AttendanceWithShift{
			record(user, "2026-08-03", "09:00", "09:20", models.StatusHadir, nil),
			record(user, "2026-08-04", "09:00", "09:20", models.StatusHadir, nil),
			record(user, "2026-08-05", "09:00", "09:20", models.StatusHadir, nil),
		}

		summary, err := newReportService([]models.User{user}, records).UserHoursSummary(ctx, user.ID, "2026-08")
		require.NoError(t, err)

		assert.Equal(t, 1.0, summary.JamAktual)
		assert.Equal(t, 1.0, summary.JamLembur)
	})

	t.Run("late day counted once even with extra records", func(t *testing.T) {
		user := newTestUser("Andi", "andi@kantor.id")
		records := []models.AttendanceWithShift{
			record(user, "2026-08-07", "09:20", "13:00", models.StatusTelat, pagi),
			record(user, "2026-08-07", "14:00", "17:00", models.StatusHadir, nil),
		}

		summary, err := newReportService([]models.User{user}, records).UserHoursSummary(ctx, user.ID, "2026-08")
		require.NoError(t, err)

		assert.Equal(t, 1, summary.HariTelat)
		assert.Equal(t, 0, summary.HariHadir)
	})

	t.Run("unknown user is rejected", func(t *testing.T) {
		svc := newReportService([]models.User{newTestUser("Budi", "budi@kantor.id")}, nil)
		_, err := svc.UserHoursSummary(ctx, primitive.NewObjectID(), "2026-08")
		assert.EqualError(t, err, "user tidak ditemukan")
	})
}

func TestUserHoursSummaryExclusivity(t *testing.T) {
	// JamKurang dan JamLembur tidak boleh positif bersamaan, berapa pun
	// kombinasi sesi pada satu hari.
	ctx := context.Background()
	pagi := shiftOf("Pagi", "09:00", "17:00")

	cases := []struct {
		name string
		in   string
		out  string
	}{
		{"short day", "09:00", "15:00"},
		{"exact day", "09:00", "17:00"},
		{"long day", "09:00", "19:30"},
		{"open day", "09:00", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			user := newTestUser("Budi", "budi@kantor.id")
			records := []models.AttendanceWithShift{
				record(user, "2026-08-03", tc.in, tc.out, models.StatusHadir, pagi),
			}

			summary, err := newReportService([]models.User{user}, records).UserHoursSummary(ctx, user.ID, "2026-08")
			require.NoError(t, err)

			bothPositive := summary.JamKurang > 0 && summary.JamLembur > 0
			assert.False(t, bothPositive, "JamKurang=%v JamLembur=%v", summary.JamKurang, summary.JamLembur)
		})
	}
}

func TestMonthlyGrid(t *testing.T) {
	ctx := context.Background()
	pagi := shiftOf("Pagi", "09:00", "17:00")

	budi := newTestUser("Budi", "budi@kantor.id")
	sari := newTestUser("Sari", "sari@kantor.id")

	records := []models.AttendanceWithShift{
		record(budi, "2026-08-03", "09:00", "17:00", models.StatusHadir, pagi),
		record(budi, "2026-08-04", "09:00", "13:00", models.StatusHadir, pagi),
		record(sari, "2026-08-03", "09:00", "20:00", models.StatusHadir, pagi),
	}

	grid, err := newReportService([]models.User{budi, sari}, records).MonthlyGrid(ctx, "2026-08")
	require.NoError(t, err)

	require.Len(t, grid.Days, 21)
	require.Len(t, grid.Rows, 2)
	assert.Equal(t, "2026-08", grid.Month)

	budiRow := grid.Rows[0]
	require.Len(t, budiRow.Cells, 21)
	assert.Equal(t, models.KlasifikasiLengkap, budiRow.Cells[0].Klasifikasi)
	assert.Equal(t, models.GlyphLengkap, budiRow.Cells[0].Glyph)
	assert.Equal(t, models.KlasifikasiKurang, budiRow.Cells[1].Klasifikasi)
	assert.Equal(t, models.GlyphKurang, budiRow.Cells[1].Glyph)
	assert.Equal(t, models.KlasifikasiTanpaKehadiran, budiRow.Cells[2].Klasifikasi)
	assert.Equal(t, models.GlyphTanpaKehadiran, budiRow.Cells[2].Glyph)
	assert.Equal(t, 16.0, budiRow.TotalJamSeharusnya)
	assert.Equal(t, 12.0, budiRow.TotalJamAktual)
	assert.Equal(t, 4.0, budiRow.TotalJamKurang)
	assert.Equal(t, 0.0, budiRow.TotalJamLembur)

	sariRow := grid.Rows[1]
	assert.Equal(t, models.KlasifikasiLembur, sariRow.Cells[0].Klasifikasi)
	assert.Equal(t, models.GlyphLembur, sariRow.Cells[0].Glyph)
	assert.Equal(t, 3.0, sariRow.TotalJamLembur)
}

func TestMonthlyGridSumsOverlappingShiftsBlindly(t *testing.T) {
	// Dua record sehari yang sama-sama membawa shift menjumlahkan jam
	// seharusnya dua kali. Shift tumpang tindih dijumlahkan apa adanya,
	// tanpa deduplikasi.
	ctx := context.Background()
	pagi := shiftOf("Pagi", "09:00", "17:00")

	budi := newTestUser("Budi", "budi@kantor.id")
	records := []models.AttendanceWithShift{
		record(budi, "2026-08-03", "09:00", "13:00", models.StatusHadir, pagi),
		record(budi, "2026-08-03", "14:00", "18:00", models.StatusHadir, pagi),
	}

	grid, err := newReportService([]models.User{budi}, records).MonthlyGrid(ctx, "2026-08")
	require.NoError(t, err)
	assert.Equal(t, 16.0, grid.Rows[0].TotalJamSeharusnya)
	assert.Equal(t, 8.0, grid.Rows[0].TotalJamAktual)
}

func TestMonthlyGridPropagatesSourceError(t *testing.T) {
	svc := NewReportService(
		&fakeUserSource{karyawan: []models.User{newTestUser("Budi", "budi@kantor.id")}},
		&fakeAttendanceSource{err: errors.New("koneksi putus")},
		time.UTC,
	)

	_, err := svc.MonthlyGrid(context.Background(), "2026-08")
	assert.ErrorContains(t, err, "koneksi putus")
}

func TestUserCalendar(t *testing.T) {
	ctx := context.Background()
	pagi := shiftOf("Pagi", "09:00", "17:00")

	user := newTestUser("Budi", "budi@kantor.id")
	records := []models.AttendanceWithShift{
		record(user, "2026-08-03", "09:00", "17:00", models.StatusHadir, pagi),
	}

	cal, err := newReportService([]models.User{user}, records).UserCalendar(ctx, user.ID, "2026-08")
	require.NoError(t, err)

	require.Len(t, cal.Weeks, 6)
	for _, week := range cal.Weeks {
		require.Len(t, week, 7)
	}

	// Agustus 2026 mulai hari Sabtu: kalender mundur ke Senin 27 Juli.
	assert.Equal(t, "2026-07-27", cal.Weeks[0][0].Date)
	assert.False(t, cal.Weeks[0][0].InMonth)
	assert.Empty(t, cal.Weeks[0][0].Klasifikasi)

	monday := cal.Weeks[1][0]
	assert.Equal(t, "2026-08-03", monday.Date)
	assert.True(t, monday.InMonth)
	assert.Equal(t, models.KlasifikasiLengkap, monday.Klasifikasi)
	assert.Equal(t, 8.0, monday.JamAktual)

	// Sabtu dalam bulan adalah sel nyata tapi tidak direkap.
	saturday := cal.Weeks[1][5]
	assert.Equal(t, "2026-08-08", saturday.Date)
	assert.True(t, saturday.InMonth)
	assert.Empty(t, saturday.Klasifikasi)

	// Sel terakhir adalah padding bulan September.
	lastCell := cal.Weeks[5][6]
	assert.Equal(t, "2026-09-06", lastCell.Date)
	assert.False(t, lastCell.InMonth)
}

func TestHoursSummaries(t *testing.T) {
	ctx := context.Background()
	pagi := shiftOf("Pagi", "09:00", "17:00")

	budi := newTestUser("Budi", "budi@kantor.id")
	sari := newTestUser("Sari", "sari@kantor.id")

	records := []models.AttendanceWithShift{
		record(budi, "2026-08-03", "09:00", "17:00", models.StatusHadir, pagi),
		record(sari, "2026-08-03", "09:00", "17:00", models.StatusSusulan, nil),
	}

	summaries, err := newReportService([]models.User{budi, sari}, records).HoursSummaries(ctx, "2026-08")
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, "Budi", summaries[0].Name)
	assert.Equal(t, 1, summaries[0].HariHadir)
	assert.Equal(t, 20, summaries[0].HariTanpaKehadiran)

	assert.Equal(t, "Sari", summaries[1].Name)
	assert.Equal(t, 1, summaries[1].HariSusulan)
}
