package questionnaire

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, r *Response) error
	GetByID(ctx context.Context, id uuid.UUID) (*Response, error)
	List(ctx context.Context, patientEmail string, limit, offset int) ([]*Response, int, error)
}
