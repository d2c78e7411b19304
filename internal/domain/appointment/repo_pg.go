package appointment

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

const cols = `id, patient_email, patient_name, date, time, reason, status, created_at, updated_at`

func scan(row pgx.Row) (*Appointment, error) {
	var a Appointment
	err := row.Scan(&a.ID, &a.PatientEmail, &a.PatientName, &a.Date, &a.Time,
		&a.Reason, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	return &a, err
}

func (r *repoPG) Create(ctx context.Context, a *Appointment) error {
	a.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO appointment (id, patient_email, patient_name, date, time, reason, status)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		a.ID, a.PatientEmail, a.PatientName, a.Date, a.Time, a.Reason, a.Status)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return scan(r.pool.QueryRow(ctx, `SELECT `+cols+` FROM appointment WHERE id = $1`, id))
}

func (r *repoPG) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE appointment SET status = $2, updated_at = NOW() WHERE id = $1`,
		id, status)
	return err
}

func (r *repoPG) List(ctx context.Context, patientEmail string, limit, offset int) ([]*Appointment, int, error) {
	where := ``
	args := []interface{}{limit, offset}
	if patientEmail != "" {
		where = ` WHERE patient_email = $3`
		args = append(args, patientEmail)
	}

	var total int
	countArgs := args[2:]
	countWhere := ``
	if patientEmail != "" {
		countWhere = ` WHERE patient_email = $1`
	}
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM appointment`+countWhere, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+cols+` FROM appointment`+where+` ORDER BY created_at DESC LIMIT $1 OFFSET $2`, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*Appointment
	for rows.Next() {
		a, err := scan(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, a)
	}
	return items, total, rows.Err()
}
