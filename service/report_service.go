package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"Sistem-Absensi-Karyawan/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Kalender bulanan selalu dirender enam minggu penuh.
const calendarWeeks = 6

// UserSource dan AttendanceSource adalah kemampuan akses data yang
// dibutuhkan laporan, dipisah sebagai interface supaya agregator bisa diuji
// deterministik tanpa database hidup.
type UserSource interface {
	FindAllKaryawan(ctx context.Context) ([]models.User, error)
	FindUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

type AttendanceSource interface {
	FindRangeWithShift(ctx context.Context, startDate, endDate string) ([]models.AttendanceWithShift, error)
	FindUserRangeWithShift(ctx context.Context, userID primitive.ObjectID, startDate, endDate string) ([]models.AttendanceWithShift, error)
}

type ReportService struct {
	users       UserSource
	attendances AttendanceSource
	loc         *time.Location
}

func NewReportService(users UserSource, attendances AttendanceSource, loc *time.Location) *ReportService {
	return &ReportService{
		users:       users,
		attendances: attendances,
		loc:         loc,
	}
}

// dayTotals mengakumulasi durasi penuh satu user pada satu tanggal.
// Pembulatan baru dilakukan saat dikonversi menjadi rekap.
type dayTotals struct {
	expected time.Duration
	actual   time.Duration
	records  int
	open     bool
	telat    bool
	susulan  bool
}

func (t *dayTotals) missing() time.Duration {
	if t.expected > t.actual {
		return t.expected - t.actual
	}
	return 0
}

func (t *dayTotals) overtime() time.Duration {
	if t.actual > t.expected {
		return t.actual - t.expected
	}
	return 0
}

func (t *dayTotals) add(record models.AttendanceWithShift) error {
	if record.Shift != nil {
		expected, err := ShiftDuration(record.Shift.StartTime, record.Shift.EndTime)
		if err != nil {
			return fmt.Errorf("shift %s: %w", record.Shift.Name, err)
		}
		t.expected += expected
	}

	actual, err := SessionDuration(record.Waktu, record.WaktuKeluar)
	if err != nil {
		return fmt.Errorf("record absensi %s: %w", record.ID.Hex(), err)
	}
	t.actual += actual

	t.records++
	if record.Waktu != "" && record.WaktuKeluar == "" {
		t.open = true
	}
	switch record.Status {
	case models.StatusTelat:
		t.telat = true
	case models.StatusSusulan:
		t.susulan = true
	}
	return nil
}

// groupTotals mengelompokkan record per user per tanggal. Semua record pada
// tanggal yang sama dijumlahkan, tidak dideduplikasi.
func groupTotals(records []models.AttendanceWithShift) (map[primitive.ObjectID]map[string]*dayTotals, error) {
	grouped := make(map[primitive.ObjectID]map[string]*dayTotals)
	for _, record := range records {
		perDay, ok := grouped[record.UserID]
		if !ok {
			perDay = make(map[string]*dayTotals)
			grouped[record.UserID] = perDay
		}

		totals, ok := perDay[record.Date]
		if !ok {
			totals = &dayTotals{}
			perDay[record.Date] = totals
		}

		if err := totals.add(record); err != nil {
			return nil, err
		}
	}
	return grouped, nil
}

// buildRekap membulatkan akumulasi durasi satu kali lalu mengklasifikasikan
// dari nilai yang sudah dibulatkan. JamKurang dan JamLembur tidak pernah
// positif bersamaan karena keduanya residu dari selisih yang sama.
func buildRekap(date string, t *dayTotals) models.RekapHarian {
	if t == nil {
		t = &dayTotals{}
	}

	rekap := models.RekapHarian{
		Date:           date,
		JamSeharusnya:  RoundHours(t.expected),
		JamAktual:      RoundHours(t.actual),
		JamKurang:      RoundHours(t.missing()),
		JamLembur:      RoundHours(t.overtime()),
		JumlahRecord:   t.records,
		AdaKehadiran:   t.records > 0,
		AdaSesiTerbuka: t.open,
	}

	switch {
	case t.records == 0:
		rekap.Klasifikasi = models.KlasifikasiTanpaKehadiran
	case rekap.JamKurang > 0:
		rekap.Klasifikasi = models.KlasifikasiKurang
	case rekap.JamLembur > 0:
		rekap.Klasifikasi = models.KlasifikasiLembur
	default:
		rekap.Klasifikasi = models.KlasifikasiLengkap
	}
	rekap.Glyph = models.GlyphFor(rekap.Klasifikasi)
	return rekap
}

// buildSummary merekonsiliasi satu karyawan selama satu bulan. Kekurangan
// dan lembur diakumulasi per hari secara terpisah: defisit hari Senin tidak
// saling menghapus dengan lembur hari Selasa.
func buildSummary(user models.User, month string, days []string, perDay map[string]*dayTotals) models.HoursSummary {
	summary := models.HoursSummary{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Month:  month,
	}

	var expectedSum, actualSum, missingSum, overtimeSum time.Duration
	for _, day := range days {
		totals := perDay[day]
		if totals == nil || totals.records == 0 {
			summary.HariTanpaKehadiran++
			continue
		}

		expectedSum += totals.expected
		actualSum += totals.actual
		missingSum += totals.missing()
		overtimeSum += totals.overtime()

		switch {
		case totals.telat:
			summary.HariTelat++
		case totals.susulan:
			summary.HariSusulan++
		default:
			summary.HariHadir++
		}
	}

	summary.JamSeharusnya = RoundHours(expectedSum)
	summary.JamAktual = RoundHours(actualSum)
	summary.JamKurang = RoundHours(missingSum)
	summary.JamLembur = RoundHours(overtimeSum)
	return summary
}

// MonthlyGrid menyusun matriks semua karyawan x hari kerja untuk satu bulan.
func (s *ReportService) MonthlyGrid(ctx context.Context, month string) (*models.MonthlyGrid, error) {
	first, last, err := MonthRange(month, s.loc)
	if err != nil {
		return nil, err
	}
	days := WorkingDays(first, last)

	users, err := s.users.FindAllKaryawan(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.attendances.FindRangeWithShift(ctx, first.Format(DateLayout), last.Format(DateLayout))
	if err != nil {
		return nil, err
	}

	grouped, err := groupTotals(records)
	if err != nil {
		return nil, err
	}

	grid := &models.MonthlyGrid{
		Month: month,
		Days:  days,
		Rows:  make([]models.MonthlyGridRow, 0, len(users)),
	}

	for _, user := range users {
		perDay := grouped[user.ID]

		row := models.MonthlyGridRow{
			UserID: user.ID,
			Name:   user.Name,
			Email:  user.Email,
			Cells:  make([]models.MonthlyGridCell, 0, len(days)),
		}

		var expectedSum, actualSum, missingSum, overtimeSum time.Duration
		for _, day := range days {
			totals := perDay[day]
			rekap := buildRekap(day, totals)
			row.Cells = append(row.Cells, models.MonthlyGridCell{
				Date:        day,
				Glyph:       rekap.Glyph,
				Klasifikasi: rekap.Klasifikasi,
				JamAktual:   rekap.JamAktual,
			})

			if totals != nil {
				expectedSum += totals.expected
				actualSum += totals.actual
				missingSum += totals.missing()
				overtimeSum += totals.overtime()
			}
		}

		row.TotalJamSeharusnya = RoundHours(expectedSum)
		row.TotalJamAktual = RoundHours(actualSum)
		row.TotalJamKurang = RoundHours(missingSum)
		row.TotalJamLembur = RoundHours(overtimeSum)
		grid.Rows = append(grid.Rows, row)
	}

	return grid, nil
}

// HoursSummaries merekonsiliasi seluruh karyawan untuk satu bulan.
func (s *ReportService) HoursSummaries(ctx context.Context, month string) ([]models.HoursSummary, error) {
	first, last, err := MonthRange(month, s.loc)
	if err != nil {
		return nil, err
	}
	days := WorkingDays(first, last)

	users, err := s.users.FindAllKaryawan(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.attendances.FindRangeWithShift(ctx, first.Format(DateLayout), last.Format(DateLayout))
	if err != nil {
		return nil, err
	}

	grouped, err := groupTotals(records)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.HoursSummary, 0, len(users))
	for _, user := range users {
		summaries = append(summaries, buildSummary(user, month, days, grouped[user.ID]))
	}
	return summaries, nil
}

// UserHoursSummary merekonsiliasi satu karyawan untuk satu bulan.
func (s *ReportService) UserHoursSummary(ctx context.Context, userID primitive.ObjectID, month string) (*models.HoursSummary, error) {
	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user tidak ditemukan")
	}

	first, last, err := MonthRange(month, s.loc)
	if err != nil {
		return nil, err
	}
	days := WorkingDays(first, last)

	records, err := s.attendances.FindUserRangeWithShift(ctx, userID, first.Format(DateLayout), last.Format(DateLayout))
	if err != nil {
		return nil, err
	}

	grouped, err := groupTotals(records)
	if err != nil {
		return nil, err
	}

	summary := buildSummary(*user, month, days, grouped[userID])
	return &summary, nil
}

// UserCalendar merender kalender bulanan satu karyawan: enam minggu tujuh
// hari dimulai hari Senin, dengan sel di luar bulan sebagai padding. Rekap
// hanya diisi pada hari kerja di dalam bulan.
func (s *ReportService) UserCalendar(ctx context.Context, userID primitive.ObjectID, month string) (*models.CalendarGrid, error) {
	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user tidak ditemukan")
	}

	first, last, err := MonthRange(month, s.loc)
	if err != nil {
		return nil, err
	}

	records, err := s.attendances.FindUserRangeWithShift(ctx, userID, first.Format(DateLayout), last.Format(DateLayout))
	if err != nil {
		return nil, err
	}

	grouped, err := groupTotals(records)
	if err != nil {
		return nil, err
	}
	perDay := grouped[userID]

	// Mundur ke hari Senin pada atau sebelum tanggal satu
	offset := (int(first.Weekday()) + 6) % 7
	cursor := first.AddDate(0, 0, -offset)

	grid := &models.CalendarGrid{
		Month:  month,
		UserID: userID,
		Name:   user.Name,
		Weeks:  make([][]models.CalendarCell, 0, calendarWeeks),
	}

	for week := 0; week < calendarWeeks; week++ {
		cells := make([]models.CalendarCell, 0, 7)
		for day := 0; day < 7; day++ {
			date := cursor.Format(DateLayout)
			cell := models.CalendarCell{
				Date:    date,
				Day:     cursor.Day(),
				InMonth: cursor.Month() == first.Month() && cursor.Year() == first.Year(),
			}

			weekday := cursor.Weekday()
			if cell.InMonth && weekday != time.Saturday && weekday != time.Sunday {
				rekap := buildRekap(date, perDay[date])
				cell.Glyph = rekap.Glyph
				cell.Klasifikasi = rekap.Klasifikasi
				cell.JamSeharusnya = rekap.JamSeharusnya
				cell.JamAktual = rekap.JamAktual
			}

			cells = append(cells, cell)
			cursor = cursor.AddDate(0, 0, 1)
		}
		grid.Weeks = append(grid.Weeks, cells)
	}

	return grid, nil
}
