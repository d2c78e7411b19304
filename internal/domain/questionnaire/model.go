package questionnaire

import (
	"time"

	"github.com/google/uuid"
)

// Response is a patient's intake questionnaire submission.
type Response struct {
	ID                 uuid.UUID `db:"id" json:"id"`
	PatientEmail       string    `db:"patient_email" json:"patient_email"`
	Goals              *string   `db:"goals" json:"goals,omitempty"`
	Allergies          *string   `db:"allergies" json:"allergies,omitempty"`
	DietaryPreferences *string   `db:"dietary_preferences" json:"dietary_preferences,omitempty"`
	Notes              *string   `db:"notes" json:"notes,omitempty"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
}
