package questionnaire

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

const cols = `id, patient_email, goals, allergies, dietary_preferences, notes, created_at`

func scan(row pgx.Row) (*Response, error) {
	var q Response
	err := row.Scan(&q.ID, &q.PatientEmail, &q.Goals, &q.Allergies,
		&q.DietaryPreferences, &q.Notes, &q.CreatedAt)
	return &q, err
}

func (r *repoPG) Create(ctx context.Context, q *Response) error {
	q.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO questionnaire_response (id, patient_email, goals, allergies, dietary_preferences, notes)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		q.ID, q.PatientEmail, q.Goals, q.Allergies, q.DietaryPreferences, q.Notes)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Response, error) {
	return scan(r.pool.QueryRow(ctx, `SELECT `+cols+` FROM questionnaire_response WHERE id = $1`, id))
}

func (r *repoPG) List(ctx context.Context, patientEmail string, limit, offset int) ([]*Response, int, error) {
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
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM questionnaire_response`+countWhere, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+cols+` FROM questionnaire_response`+where+` ORDER BY created_at DESC LIMIT $1 OFFSET $2`, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*Response
	for rows.Next() {
		q, err := scan(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, q)
	}
	return items, total, rows.Err()
}
