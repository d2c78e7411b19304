package invoice

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

type mockRepo struct {
	items []*Invoice
}

func (m *mockRepo) Create(_ context.Context, inv *Invoice) error {
	inv.ID = uuid.New()
	inv.CreatedAt = time.Now()
	m.items = append(m.items, inv)
	return nil
}

func (m *mockRepo) List(_ context.Context, patientEmail string, limit, offset int) ([]*Invoice, int, error) {
	var result []*Invoice
	for _, inv := range m.items {
		if patientEmail == "" || inv.PatientEmail == patientEmail {
			result = append(result, inv)
		}
	}
	return result, len(result), nil
}

func validInvoice() *Invoice {
	return &Invoice{
		PatientEmail: "jane@example.com",
		Items: []Item{
			{Name: "consultation", Price: 80.00, Quantity: 1},
			{Name: "meal plan", Price: 25.50, Quantity: 2},
		},
		Subtotal: 131.00,
		Tax:      13.10,
		Total:    144.10,
	}
}

func TestCreate(t *testing.T) {
	svc := NewService(&mockRepo{})
	inv := validInvoice()
	if err := svc.Create(context.Background(), inv); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inv.ID == uuid.Nil {
		t.Error("expected ID to be assigned")
	}
}

func TestCreate_RejectsWrongSubtotal(t *testing.T) {
	svc := NewService(&mockRepo{})
	inv := validInvoice()
	inv.Subtotal = 100.00
	inv.Total = 113.10
	if err := svc.Create(context.Background(), inv); err == nil {
		t.Error("expected error for subtotal not matching line items")
	}
}

func TestCreate_RejectsWrongTotal(t *testing.T) {
	svc := NewService(&mockRepo{})
	inv := validInvoice()
	inv.Total = 999.99
	if err := svc.Create(context.Background(), inv); err == nil {
		t.Error("expected error for total not equal to subtotal plus tax")
	}
}

func TestCreate_ToleratesRounding(t *testing.T) {
	svc := NewService(&mockRepo{})
	inv := &Invoice{
		PatientEmail: "jane@example.com",
		Items:        []Item{{Name: "session", Price: 33.33, Quantity: 3}},
		Subtotal:     99.99,
		Tax:          0,
		Total:        99.99,
	}
	if err := svc.Create(context.Background(), inv); err != nil {
		t.Fatalf("rounding within epsilon should pass: %v", err)
	}
}

func TestCreate_Validation(t *testing.T) {
	svc := NewService(&mockRepo{})

	cases := []struct {
		name   string
		mutate func(*Invoice)
	}{
		{"missing email", func(inv *Invoice) { inv.PatientEmail = "" }},
		{"no items", func(inv *Invoice) { inv.Items = nil }},
		{"unnamed item", func(inv *Invoice) { inv.Items[0].Name = "" }},
		{"negative price", func(inv *Invoice) { inv.Items[0].Price = -1 }},
		{"zero quantity", func(inv *Invoice) { inv.Items[0].Quantity = 0 }},
		{"negative tax", func(inv *Invoice) { inv.Tax = -5 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			inv := validInvoice()
			tc.mutate(inv)
			if err := svc.Create(context.Background(), inv); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestList_FiltersByPatient(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)
	svc.Create(context.Background(), validInvoice())

	other := validInvoice()
	other.PatientEmail = "bob@example.com"
	svc.Create(context.Background(), other)

	_, total, err := svc.List(context.Background(), "bob@example.com", 50, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 1 {
		t.Fatalf("expected 1, got %d", total)
	}
}
