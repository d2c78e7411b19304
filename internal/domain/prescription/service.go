package prescription

import (
	"context"
	"fmt"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, p *Prescription) error {
	if p.PatientEmail == "" {
		return fmt.Errorf("patient_email is required")
	}
	if !strings.Contains(p.PatientEmail, "@") {
		return fmt.Errorf("patient_email is not a valid email address")
	}
	if len(p.Items) == 0 {
		return fmt.Errorf("at least one item is required")
	}
	for i, item := range p.Items {
		if strings.TrimSpace(item) == "" {
			return fmt.Errorf("item %d is empty", i)
		}
	}
	return s.repo.Create(ctx, p)
}

func (s *Service) List(ctx context.Context, patientEmail string, limit, offset int) ([]*Prescription, int, error) {
	return s.repo.List(ctx, patientEmail, limit, offset)
}
