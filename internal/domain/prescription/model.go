package prescription

import (
	"time"

	"github.com/google/uuid"
)

// Prescription is a list of supplement or diet items issued to a patient.
type Prescription struct {
	ID           uuid.UUID `db:"id" json:"id"`
	PatientEmail string    `db:"patient_email" json:"patient_email"`
	PatientName  *string   `db:"patient_name" json:"patient_name,omitempty"`
	Items        []string  `db:"items" json:"items"`
	Instructions *string   `db:"instructions" json:"instructions,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
