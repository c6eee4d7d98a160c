package service

import (
	"fmt"
	"math"
	"time"
)

const (
	ClockLayout = "15:04"
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
)

// ParseClock mengubah jam "HH:MM" menjadi durasi sejak tengah malam.
func ParseClock(value string) (time.Duration, error) {
	t, err := time.Parse(ClockLayout, value)
	if err != nil {
		return 0, fmt.Errorf("format jam tidak valid: %q", value)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

// ShiftDuration menghitung durasi dari jam mulai ke jam selesai. Jam selesai
// yang lebih kecil dari jam mulai dianggap melewati tengah malam dan
// ditambah 24 jam sebelum dikurangkan.
func ShiftDuration(startTime, endTime string) (time.Duration, error) {
	start, err := ParseClock(startTime)
	if err != nil {
		return 0, err
	}
	end, err := ParseClock(endTime)
	if err != nil {
		return 0, err
	}

	if end < start {
		end += 24 * time.Hour
	}
	return end - start, nil
}

// SessionDuration menghitung durasi absen masuk ke absen keluar dengan
// kebijakan tengah malam yang sama. Waktu keluar kosong berarti sesi masih
// terbuka dan menyumbang nol jam, bukan nilai parsial.
func SessionDuration(checkIn, checkOut string) (time.Duration, error) {
	if checkOut == "" {
		return 0, nil
	}
	return ShiftDuration(checkIn, checkOut)
}

// RoundHours mengubah durasi menjadi jam yang dibulatkan dua desimal.
// Pembulatan hanya boleh dilakukan sekali di akhir: jumlahkan durasi penuh
// dulu, baru panggil fungsi ini, supaya galat pembulatan tidak menumpuk.
func RoundHours(d time.Duration) float64 {
	return math.Round(d.Hours()*100) / 100
}

// WorkingDays mengembalikan tanggal hari kerja (Senin sampai Jumat) dari
// start sampai end inklusif. Sabtu dan Minggu dikecualikan, tanpa kalender
// hari libur.
func WorkingDays(start, end time.Time) []string {
	var days []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		days = append(days, d.Format(DateLayout))
	}
	return days
}

// MonthRange mengurai bulan "2006-01" menjadi tanggal pertama dan terakhir
// bulan tersebut pada zona waktu yang diberikan.
func MonthRange(month string, loc *time.Location) (time.Time, time.Time, error) {
	first, err := time.ParseInLocation(MonthLayout, month, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("format bulan tidak valid: %q", month)
	}
	last := first.AddDate(0, 1, -1)
	return first, last, nil
}
