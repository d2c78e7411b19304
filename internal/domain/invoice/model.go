package invoice

import (
	"time"

	"github.com/google/uuid"
)

// Item is a single invoice line.
type Item struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Invoice represents a bill issued to a patient. Line items are stored as a
// JSONB document alongside the computed amounts.
type Invoice struct {
	ID           uuid.UUID `db:"id" json:"id"`
	PatientEmail string    `db:"patient_email" json:"patient_email"`
	PatientName  *string   `db:"patient_name" json:"patient_name,omitempty"`
	Items        []Item    `db:"items" json:"items"`
	Subtotal     float64   `db:"subtotal" json:"subtotal"`
	Tax          float64   `db:"tax" json:"tax"`
	Total        float64   `db:"total" json:"total"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
