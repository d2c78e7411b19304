package invoice

import (
	"context"
	"fmt"
	"math"
	"strings"
)

// amountEpsilon tolerates float rounding in client-computed amounts.
const amountEpsilon = 0.005

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, inv *Invoice) error {
	if inv.PatientEmail == "" {
		return fmt.Errorf("patient_email is required")
	}
	if !strings.Contains(inv.PatientEmail, "@") {
		return fmt.Errorf("patient_email is not a valid email address")
	}
	if len(inv.Items) == 0 {
		return fmt.Errorf("at least one item is required")
	}

	var subtotal float64
	for i, item := range inv.Items {
		if item.Name == "" {
			return fmt.Errorf("item %d: name is required", i)
		}
		if item.Price < 0 {
			return fmt.Errorf("item %d: price cannot be negative", i)
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("item %d: quantity must be positive", i)
		}
		subtotal += item.Price * float64(item.Quantity)
	}

	if math.Abs(subtotal-inv.Subtotal) > amountEpsilon {
		return fmt.Errorf("subtotal %.2f does not match line items (%.2f)", inv.Subtotal, subtotal)
	}
	if inv.Tax < 0 {
		return fmt.Errorf("tax cannot be negative")
	}
	if math.Abs(inv.Subtotal+inv.Tax-inv.Total) > amountEpsilon {
		return fmt.Errorf("total %.2f does not equal subtotal plus tax (%.2f)", inv.Total, inv.Subtotal+inv.Tax)
	}

	return s.repo.Create(ctx, inv)
}

func (s *Service) List(ctx context.Context, patientEmail string, limit, offset int) ([]*Invoice, int, error) {
	return s.repo.List(ctx, patientEmail, limit, offset)
}
