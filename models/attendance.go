package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Status kehadiran yang valid untuk sebuah record absensi.
const (
	StatusHadir   = "Hadir"
	StatusTelat   = "Telat"
	StatusSusulan = "Susulan"
)

// Metode pencatatan absensi.
const (
	MethodReguler = "reguler"
	MethodSusulan = "susulan"
)

type Attendance struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID      primitive.ObjectID `json:"user_id" bson:"user_id,omitempty"`
	ShiftID     primitive.ObjectID `json:"shift_id,omitempty" bson:"shift_id,omitempty"`
	DeviceID    primitive.ObjectID `json:"device_id,omitempty" bson:"device_id,omitempty"`
	Date        string             `json:"date" bson:"date,omitempty"`
	Waktu       string             `json:"waktu" bson:"waktu,omitempty"`
	WaktuKeluar string             `json:"waktu_keluar" bson:"waktu_keluar,omitempty"`
	Status      string             `json:"status" bson:"status,omitempty"`
	Method      string             `json:"method" bson:"method,omitempty"`
	Lokasi      string             `json:"lokasi" bson:"lokasi,omitempty"`
	Reason      string             `json:"reason,omitempty" bson:"reason,omitempty"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at,omitempty"`
}

// AttendanceCheckInPayload adalah body untuk absen masuk karyawan.
// Lokasi dikirim sebagai nilai QR lokasi kantor, koordinat diambil dari
// perangkat, dan serial menunjuk perangkat absensi yang terdaftar.
type AttendanceCheckInPayload struct {
	QRValue      string   `json:"qr_value" validate:"required"`
	DeviceSerial string   `json:"device_serial" validate:"required"`
	Latitude     *float64 `json:"latitude" validate:"required"`
	Longitude    *float64 `json:"longitude" validate:"required"`
	ShiftID      string   `json:"shift_id" validate:"required"`
}

type AttendanceUpdatePayload struct {
	Waktu       string `json:"waktu,omitempty" validate:"omitempty,datetime=15:04"`
	WaktuKeluar string `json:"waktu_keluar,omitempty" validate:"omitempty,datetime=15:04"`
	Status      string `json:"status,omitempty" validate:"omitempty,oneof=Hadir Telat Susulan"`
	Lokasi      string `json:"lokasi,omitempty"`
	Reason      string `json:"reason,omitempty"`
}

// AttendanceWithUser adalah hasil join attendances dengan users dan shifts
// untuk tampilan admin.
type AttendanceWithUser struct {
	ID          primitive.ObjectID `json:"id" bson:"_id"`
	UserID      primitive.ObjectID `json:"user_id" bson:"user_id"`
	Name        string             `json:"name" bson:"name"`
	Email       string             `json:"email" bson:"email"`
	Date        string             `json:"date" bson:"date"`
	Waktu       string             `json:"waktu" bson:"waktu"`
	WaktuKeluar string             `json:"waktu_keluar" bson:"waktu_keluar"`
	Status      string             `json:"status" bson:"status"`
	Method      string             `json:"method" bson:"method"`
	Lokasi      string             `json:"lokasi" bson:"lokasi"`
	Reason      string             `json:"reason,omitempty" bson:"reason,omitempty"`
	ShiftName   string             `json:"shift_name,omitempty" bson:"shift_name,omitempty"`
}

// AttendanceWithShift membawa record absensi beserta shift yang dirujuknya.
// Shift bernilai nil bila record tidak menunjuk shift manapun.
type AttendanceWithShift struct {
	ID          primitive.ObjectID `json:"id" bson:"_id"`
	UserID      primitive.ObjectID `json:"user_id" bson:"user_id"`
	Date        string             `json:"date" bson:"date"`
	Waktu       string             `json:"waktu" bson:"waktu"`
	WaktuKeluar string             `json:"waktu_keluar" bson:"waktu_keluar"`
	Status      string             `json:"status" bson:"status"`
	Method      string             `json:"method" bson:"method"`
	Shift       *Shift             `json:"shift,omitempty" bson:"shift,omitempty"`
}
