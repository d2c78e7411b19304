package invoice

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const cols = `id, patient_email, patient_name, items, subtotal, tax, total, created_at`

func scan(row pgx.Row) (*Invoice, error) {
	var inv Invoice
	var items []byte
	err := row.Scan(&inv.ID, &inv.PatientEmail, &inv.PatientName, &items,
		&inv.Subtotal, &inv.Tax, &inv.Total, &inv.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &inv.Items); err != nil {
		return nil, fmt.Errorf("decode invoice items: %w", err)
	}
	return &inv, nil
}

func (r *repoPG) Create(ctx context.Context, inv *Invoice) error {
	inv.ID = uuid.New()
	items, err := json.Marshal(inv.Items)
	if err != nil {
		return fmt.Errorf("encode invoice items: %w", err)
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO invoice (id, patient_email, patient_name, items, subtotal, tax, total)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		inv.ID, inv.PatientEmail, inv.PatientName, items, inv.Subtotal, inv.Tax, inv.Total)
	return err
}

func (r *repoPG) List(ctx context.Context, patientEmail string, limit, offset int) ([]*Invoice, int, error) {
	where := ``
	countWhere := ``
	args := []interface{}{limit, offset}
	var countArgs []interface{}
	if patientEmail != "" {
		where = ` WHERE patient_email = $3`
		countWhere = ` WHERE patient_email = $1`
		args = append(args, patientEmail)
		countArgs = append(countArgs, patientEmail)
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM invoice`+countWhere, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+cols+` FROM invoice`+where+` ORDER BY created_at DESC LIMIT $1 OFFSET $2`, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*Invoice
	for rows.Next() {
		inv, err := scan(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, inv)
	}
	return items, total, rows.Err()
}
