package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ScheduleRule menugaskan shift kepada karyawan pada tanggal tertentu.
// RecurrenceRule opsional memakai format RRULE iCalendar, misal
// "FREQ=WEEKLY;BYDAY=MO,TU,WE,TH,FR", dan diekspansi per rentang tanggal
// saat jadwal diminta.
type ScheduleRule struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID         primitive.ObjectID `json:"user_id" bson:"user_id"`
	ShiftID        primitive.ObjectID `json:"shift_id" bson:"shift_id"`
	Date           string             `json:"date" bson:"date"`
	RecurrenceRule string             `json:"recurrence_rule,omitempty" bson:"recurrence_rule,omitempty"`
	Note           string             `json:"note,omitempty" bson:"note,omitempty"`
	CreatedAt      time.Time          `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt      time.Time          `json:"updated_at" bson:"updated_at,omitempty"`
}

type ScheduleRulePayload struct {
	UserID         string `json:"user_id" validate:"required"`
	ShiftID        string `json:"shift_id" validate:"required"`
	Date           string `json:"date" validate:"required,datetime=2006-01-02"`
	RecurrenceRule string `json:"recurrence_rule,omitempty"`
	Note           string `json:"note,omitempty" validate:"omitempty,max=200"`
}

type Holiday struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

// ScheduleEntry adalah satu kemunculan jadwal hasil ekspansi recurrence rule,
// siap ditampilkan di kalender kerja.
type ScheduleEntry struct {
	RuleID    primitive.ObjectID `json:"rule_id"`
	UserID    primitive.ObjectID `json:"user_id"`
	Date      string             `json:"date"`
	ShiftID   primitive.ObjectID `json:"shift_id"`
	ShiftName string             `json:"shift_name,omitempty"`
	StartTime string             `json:"start_time,omitempty"`
	EndTime   string             `json:"end_time,omitempty"`
	Note      string             `json:"note,omitempty"`
	IsHoliday bool               `json:"is_holiday"`
}
