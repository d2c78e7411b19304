package prescription

import "context"

type Repository interface {
	Create(ctx context.Context, p *Prescription) error
	List(ctx context.Context, patientEmail string, limit, offset int) ([]*Prescription, int, error)
}
