package questionnaire

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Submit(ctx context.Context, q *Response) error {
	if q.PatientEmail == "" {
		return fmt.Errorf("patient_email is required")
	}
	if !strings.Contains(q.PatientEmail, "@") {
		return fmt.Errorf("patient_email is not a valid email address")
	}
	return s.repo.Create(ctx, q)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Response, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, patientEmail string, limit, offset int) ([]*Response, int, error) {
	return s.repo.List(ctx, patientEmail, limit, offset)
}
