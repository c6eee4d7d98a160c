package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Device adalah perangkat absensi yang terdaftar pada sebuah lokasi.
// Hanya perangkat aktif yang boleh dipakai untuk absen masuk.
type Device struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name,omitempty"`
	Serial       string             `json:"serial" bson:"serial,omitempty"`
	LocationID   primitive.ObjectID `json:"location_id,omitempty" bson:"location_id,omitempty"`
	RegisteredBy primitive.ObjectID `json:"registered_by,omitempty" bson:"registered_by,omitempty"`
	Active       bool               `json:"active" bson:"active"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt    time.Time          `json:"updated_at" bson:"updated_at,omitempty"`
}

type DevicePayload struct {
	Name       string `json:"name" validate:"required,min=3,max=100"`
	Serial     string `json:"serial" validate:"required,min=4,max=64"`
	LocationID string `json:"location_id" validate:"required"`
}

// DeviceActivePayload memakai pointer agar nilai false tetap terbaca saat validasi.
type DeviceActivePayload struct {
	Active *bool `json:"active" validate:"required"`
}
