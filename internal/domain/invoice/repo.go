package invoice

import "context"

type Repository interface {
	Create(ctx context.Context, inv *Invoice) error
	List(ctx context.Context, patientEmail string, limit, offset int) ([]*Invoice, int, error)
}
