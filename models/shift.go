package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Shift mendefinisikan jam kerja. Shift malam ditandai dengan end_time yang
// lebih kecil dari start_time dan dianggap berakhir keesokan harinya.
type Shift struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name,omitempty"`
	StartTime string             `json:"start_time" bson:"start_time,omitempty"`
	EndTime   string             `json:"end_time" bson:"end_time,omitempty"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at,omitempty"`
}

type ShiftPayload struct {
	Name      string `json:"name" validate:"required,min=3,max=50"`
	StartTime string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime   string `json:"end_time" validate:"required,datetime=15:04"`
}
