package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Location adalah titik presensi beserta radius geofence dalam meter.
// QRCode diisi nilai unik yang dirender menjadi gambar QR untuk dipindai
// saat absen masuk.
type Location struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name,omitempty"`
	Address   string             `json:"address" bson:"address,omitempty"`
	Latitude  float64            `json:"latitude" bson:"latitude"`
	Longitude float64            `json:"longitude" bson:"longitude"`
	RadiusM   float64            `json:"radius_m" bson:"radius_m,omitempty"`
	QRCode    string             `json:"qr_code,omitempty" bson:"qr_code,omitempty"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at,omitempty"`
}

type LocationPayload struct {
	Name      string   `json:"name" validate:"required,min=3,max=100"`
	Address   string   `json:"address" validate:"required"`
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
	RadiusM   float64  `json:"radius_m" validate:"required,gt=0"`
}
