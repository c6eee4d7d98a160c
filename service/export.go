package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"Sistem-Absensi-Karyawan/models"

	"github.com/xuri/excelize/v2"
)

// Header kolom per jenis laporan. Urutannya bagian dari kontrak ekspor.
var (
	attendanceHeader = []string{"Tanggal", "Nama", "Email", "Shift", "Jam Masuk", "Jam Keluar", "Status", "Metode", "Lokasi", "Alasan"}
	summaryHeader    = []string{"Nama", "Email", "Bulan", "Jam Seharusnya", "Jam Aktual", "Jam Kurang", "Jam Lembur", "Hari Hadir", "Hari Telat", "Hari Susulan", "Hari Tanpa Kehadiran"}
)

func formatHours(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func writeCSV(header []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(header); err != nil {
		return nil, fmt.Errorf("gagal menulis header CSV: %w", err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("gagal menulis baris CSV: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("gagal menyelesaikan CSV: %w", err)
	}
	return buf.Bytes(), nil
}

// writeXLSX merender satu tabel menjadi workbook: baris judul yang digabung,
// baris header bergaya, lalu baris data apa adanya.
func writeXLSX(sheetName, title string, header []string, rows [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("gagal membuat sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	lastCol, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return nil, fmt.Errorf("gagal menghitung koordinat kolom: %w", err)
	}

	f.SetCellValue(sheetName, "A1", title)
	f.MergeCell(sheetName, "A1", lastCol)
	f.SetCellStyle(sheetName, "A1", lastCol, headerStyle)
	f.SetRowHeight(sheetName, 1, 25)

	for i, label := range header {
		cell, err := excelize.CoordinatesToCellName(i+1, 2)
		if err != nil {
			return nil, fmt.Errorf("gagal menghitung koordinat header: %w", err)
		}
		f.SetCellValue(sheetName, cell, label)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx, row := range rows {
		for colIdx, value := range row {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+3)
			if err != nil {
				return nil, fmt.Errorf("gagal menghitung koordinat sel: %w", err)
			}
			f.SetCellValue(sheetName, cell, value)
		}
	}

	f.SetColWidth(sheetName, "A", "B", 22)
	f.DeleteSheet("Sheet1")

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("gagal menulis workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func attendanceRows(records []models.AttendanceWithUser) [][]string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.Date,
			r.Name,
			r.Email,
			r.ShiftName,
			r.Waktu,
			r.WaktuKeluar,
			r.Status,
			r.Method,
			r.Lokasi,
			r.Reason,
		})
	}
	return rows
}

func summaryRows(summaries []models.HoursSummary) [][]string {
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			s.Name,
			s.Email,
			s.Month,
			formatHours(s.JamSeharusnya),
			formatHours(s.JamAktual),
			formatHours(s.JamKurang),
			formatHours(s.JamLembur),
			strconv.Itoa(s.HariHadir),
			strconv.Itoa(s.HariTelat),
			strconv.Itoa(s.HariSusulan),
			strconv.Itoa(s.HariTanpaKehadiran),
		})
	}
	return rows
}

func gridHeader(grid *models.MonthlyGrid) []string {
	header := make([]string, 0, len(grid.Days)+6)
	header = append(header, "Nama", "Email")
	header = append(header, grid.Days...)
	header = append(header, "Total Jam Seharusnya", "Total Jam Aktual", "Total Jam Kurang", "Total Jam Lembur")
	return header
}

func gridRows(grid *models.MonthlyGrid) [][]string {
	rows := make([][]string, 0, len(grid.Rows))
	for _, r := range grid.Rows {
		row := make([]string, 0, len(r.Cells)+6)
		row = append(row, r.Name, r.Email)
		for _, cell := range r.Cells {
			row = append(row, cell.Glyph)
		}
		row = append(row,
			formatHours(r.TotalJamSeharusnya),
			formatHours(r.TotalJamAktual),
			formatHours(r.TotalJamKurang),
			formatHours(r.TotalJamLembur),
		)
		rows = append(rows, row)
	}
	return rows
}

// AttendanceCSV menserialisasi daftar record absensi mentah.
func AttendanceCSV(records []models.AttendanceWithUser) ([]byte, error) {
	return writeCSV(attendanceHeader, attendanceRows(records))
}

// HoursSummaryCSV menserialisasi rekonsiliasi jam kerja bulanan.
func HoursSummaryCSV(summaries []models.HoursSummary) ([]byte, error) {
	return writeCSV(summaryHeader, summaryRows(summaries))
}

// GridCSV menserialisasi grid harian: satu baris per karyawan, satu kolom
// glyph per hari kerja.
func GridCSV(grid *models.MonthlyGrid) ([]byte, error) {
	return writeCSV(gridHeader(grid), gridRows(grid))
}

func AttendanceXLSX(records []models.AttendanceWithUser) ([]byte, error) {
	return writeXLSX("Absensi", "LAPORAN ABSENSI", attendanceHeader, attendanceRows(records))
}

func HoursSummaryXLSX(summaries []models.HoursSummary) ([]byte, error) {
	return writeXLSX("Rekonsiliasi", "REKONSILIASI JAM KERJA", summaryHeader, summaryRows(summaries))
}

func GridXLSX(grid *models.MonthlyGrid) ([]byte, error) {
	return writeXLSX("Rekap Harian", fmt.Sprintf("REKAP HARIAN %s", grid.Month), gridHeader(grid), gridRows(grid))
}
