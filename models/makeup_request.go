package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Status pengajuan absen susulan.
const (
	MakeupStatusPending  = "pending"
	MakeupStatusApproved = "approved"
	MakeupStatusRejected = "rejected"
)

// MakeupRequest adalah pengajuan absen susulan untuk tanggal yang terlewat.
// Saat disetujui admin, sebuah record absensi berstatus Susulan dibuat untuk
// tanggal tersebut.
type MakeupRequest struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID      primitive.ObjectID `json:"user_id" bson:"user_id,omitempty"`
	Date        string             `json:"date" bson:"date,omitempty"`
	Reason      string             `json:"reason" bson:"reason,omitempty"`
	EvidenceURL string             `json:"evidence_url,omitempty" bson:"evidence_url,omitempty"`
	Status      string             `json:"status" bson:"status,omitempty"`
	Note        string             `json:"note,omitempty" bson:"note,omitempty"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at,omitempty"`
}

type MakeupRequestPayload struct {
	Date   string `json:"date" validate:"required,datetime=2006-01-02"`
	Reason string `json:"reason" validate:"required,min=5,max=500"`
}

type MakeupStatusUpdatePayload struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
	Note   string `json:"note,omitempty" validate:"omitempty,max=500"`
}

// MakeupRequestWithUser adalah hasil join makeup_requests dengan users untuk
// daftar persetujuan admin.
type MakeupRequestWithUser struct {
	ID          primitive.ObjectID `json:"id" bson:"_id"`
	UserID      primitive.ObjectID `json:"user_id" bson:"user_id"`
	Name        string             `json:"name" bson:"name"`
	Email       string             `json:"email" bson:"email"`
	Date        string             `json:"date" bson:"date"`
	Reason      string             `json:"reason" bson:"reason"`
	EvidenceURL string             `json:"evidence_url,omitempty" bson:"evidence_url,omitempty"`
	Status      string             `json:"status" bson:"status"`
	Note        string             `json:"note,omitempty" bson:"note,omitempty"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
}
