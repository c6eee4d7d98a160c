package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Klasifikasi harian hasil rekonsiliasi jam kerja.
const (
	KlasifikasiLengkap        = "lengkap"
	KlasifikasiKurang         = "kurang"
	KlasifikasiLembur         = "lembur"
	KlasifikasiTanpaKehadiran = "tanpa_kehadiran"
)

// Glyph satu karakter per klasifikasi, dipakai sel grid dan ekspor.
const (
	GlyphLengkap        = "✓"
	GlyphKurang         = "−"
	GlyphLembur         = "+"
	GlyphTanpaKehadiran = "×"
)

// GlyphFor mengembalikan glyph untuk sebuah klasifikasi.
func GlyphFor(klasifikasi string) string {
	switch klasifikasi {
	case KlasifikasiLengkap:
		return GlyphLengkap
	case KlasifikasiKurang:
		return GlyphKurang
	case KlasifikasiLembur:
		return GlyphLembur
	default:
		return GlyphTanpaKehadiran
	}
}

// RekapHarian adalah agregat turunan satu karyawan pada satu tanggal.
// Semua nilai jam sudah dibulatkan dua desimal. JamKurang dan JamLembur
// tidak pernah positif bersamaan.
type RekapHarian struct {
	Date           string  `json:"date"`
	JamSeharusnya  float64 `json:"jam_seharusnya"`
	JamAktual      float64 `json:"jam_aktual"`
	JamKurang      float64 `json:"jam_kurang"`
	JamLembur      float64 `json:"jam_lembur"`
	Klasifikasi    string  `json:"klasifikasi"`
	Glyph          string  `json:"glyph"`
	JumlahRecord   int     `json:"jumlah_record"`
	AdaKehadiran   bool    `json:"ada_kehadiran"`
	AdaSesiTerbuka bool    `json:"ada_sesi_terbuka"`
}

// MonthlyGridCell adalah satu sel pada grid bulanan admin.
type MonthlyGridCell struct {
	Date        string  `json:"date"`
	Glyph       string  `json:"glyph"`
	Klasifikasi string  `json:"klasifikasi"`
	JamAktual   float64 `json:"jam_aktual"`
}

// MonthlyGridRow adalah satu baris grid bulanan: satu karyawan dengan satu
// sel per hari kerja plus total bulanan.
type MonthlyGridRow struct {
	UserID             primitive.ObjectID `json:"user_id"`
	Name               string             `json:"name"`
	Email              string             `json:"email"`
	Cells              []MonthlyGridCell  `json:"cells"`
	TotalJamSeharusnya float64            `json:"total_jam_seharusnya"`
	TotalJamAktual     float64            `json:"total_jam_aktual"`
	TotalJamKurang     float64            `json:"total_jam_kurang"`
	TotalJamLembur     float64            `json:"total_jam_lembur"`
}

// MonthlyGrid adalah matriks karyawan x hari kerja untuk satu bulan.
// Days memuat tanggal kolom terurut, hanya hari kerja (Senin-Jumat).
type MonthlyGrid struct {
	Month string           `json:"month"`
	Days  []string         `json:"days"`
	Rows  []MonthlyGridRow `json:"rows"`
}

// CalendarCell adalah satu sel kalender. Sel di luar bulan berjalan adalah
// padding dengan InMonth false dan tanpa rekap.
type CalendarCell struct {
	Date          string  `json:"date"`
	Day           int     `json:"day"`
	InMonth       bool    `json:"in_month"`
	Glyph         string  `json:"glyph,omitempty"`
	Klasifikasi   string  `json:"klasifikasi,omitempty"`
	JamSeharusnya float64 `json:"jam_seharusnya"`
	JamAktual     float64 `json:"jam_aktual"`
}

// CalendarGrid adalah tampilan kalender bulanan satu karyawan, selalu enam
// minggu tujuh hari dengan minggu dimulai hari Senin.
type CalendarGrid struct {
	Month  string             `json:"month"`
	UserID primitive.ObjectID `json:"user_id"`
	Name   string             `json:"name"`
	Weeks  [][]CalendarCell   `json:"weeks"`
}

// HoursSummary adalah rekonsiliasi jam kerja satu karyawan selama satu bulan.
type HoursSummary struct {
	UserID             primitive.ObjectID `json:"user_id"`
	Name               string             `json:"name"`
	Email              string             `json:"email"`
	Month              string             `json:"month"`
	JamSeharusnya      float64            `json:"jam_seharusnya"`
	JamAktual          float64            `json:"jam_aktual"`
	JamKurang          float64            `json:"jam_kurang"`
	JamLembur          float64            `json:"jam_lembur"`
	HariHadir          int                `json:"hari_hadir"`
	HariTelat          int                `json:"hari_telat"`
	HariSusulan        int                `json:"hari_susulan"`
	HariTanpaKehadiran int                `json:"hari_tanpa_kehadiran"`
}

// DashboardStats adalah ringkasan untuk kartu dashboard admin.
type DashboardStats struct {
	Date             string    `json:"date"`
	TotalKaryawan    int64     `json:"total_karyawan"`
	HadirHariIni     int64     `json:"hadir_hari_ini"`
	TelatHariIni     int64     `json:"telat_hari_ini"`
	SusulanHariIni   int64     `json:"susulan_hari_ini"`
	SesiTerbuka      int64     `json:"sesi_terbuka"`
	PengajuanPending int64     `json:"pengajuan_pending"`
	UpdatedAt        time.Time `json:"updated_at"`
}
