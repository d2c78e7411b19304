package appointment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

var validStatuses = map[string]bool{
	StatusPending: true, StatusConfirmed: true, StatusCanceled: true,
}

func (s *Service) Create(ctx context.Context, a *Appointment) error {
	if a.PatientEmail == "" {
		return fmt.Errorf("patient_email is required")
	}
	if !strings.Contains(a.PatientEmail, "@") {
		return fmt.Errorf("patient_email is not a valid email address")
	}
	if a.PatientName == "" {
		return fmt.Errorf("patient_name is required")
	}
	if _, err := time.Parse("2006-01-02", a.Date); err != nil {
		return fmt.Errorf("date must be an ISO date (YYYY-MM-DD): %w", err)
	}
	if _, err := time.Parse("15:04", a.Time); err != nil {
		return fmt.Errorf("time must be HH:mm in 24h format: %w", err)
	}
	if a.Status == "" {
		a.Status = StatusPending
	}
	if !validStatuses[a.Status] {
		return fmt.Errorf("invalid status: %s", a.Status)
	}
	return s.repo.Create(ctx, a)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	if !validStatuses[status] {
		return fmt.Errorf("invalid status: %s", status)
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *Service) List(ctx context.Context, patientEmail string, limit, offset int) ([]*Appointment, int, error) {
	return s.repo.List(ctx, patientEmail, limit, offset)
}
