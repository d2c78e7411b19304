package appointment

import (
	"time"

	"github.com/google/uuid"
)

// Appointment statuses.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCanceled  = "canceled"
)

// Appointment represents a booked consultation slot.
type Appointment struct {
	ID           uuid.UUID `db:"id" json:"id"`
	PatientEmail string    `db:"patient_email" json:"patient_email"`
	PatientName  string    `db:"patient_name" json:"patient_name"`
	Date         string    `db:"date" json:"date"` // ISO date, e.g. 2025-11-20
	Time         string    `db:"time" json:"time"` // HH:mm in 24h format
	Reason       *string   `db:"reason" json:"reason,omitempty"`
	Status       string    `db:"status" json:"status"` // pending | confirmed | canceled
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}
