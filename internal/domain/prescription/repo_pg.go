package prescription

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const cols = `id, patient_email, patient_name, items, instructions, created_at`

func scan(row pgx.Row) (*Prescription, error) {
	var p Prescription
	err := row.Scan(&p.ID, &p.PatientEmail, &p.PatientName, &p.Items, &p.Instructions, &p.CreatedAt)
	return &p, err
}

func (r *repoPG) Create(ctx context.Context, p *Prescription) error {
	p.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO prescription (id, patient_email, patient_name, items, instructions)
		VALUES ($1,$2,$3,$4,$5)`,
		p.ID, p.PatientEmail, p.PatientName, p.Items, p.Instructions)
	return err
}

func (r *repoPG) List(ctx context.Context, patientEmail string, limit, offset int) ([]*Prescription, int, error) {
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
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM prescription`+countWhere, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+cols+` FROM prescription`+where+` ORDER BY created_at DESC LIMIT $1 OFFSET $2`, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*Prescription
	for rows.Next() {
		p, err := scan(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, p)
	}
	return items, total, rows.Err()
}
