package message

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

const cols = `id, room, sender, sender_email, content, created_at`

func scan(row pgx.Row) (*Message, error) {
	var m Message
	err := row.Scan(&m.ID, &m.Room, &m.Sender, &m.SenderEmail, &m.Content, &m.CreatedAt)
	return &m, err
}

func (r *repoPG) Create(ctx context.Context, m *Message) error {
	m.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO message (id, room, sender, sender_email, content)
		VALUES ($1,$2,$3,$4,$5)`,
		m.ID, m.Room, m.Sender, m.SenderEmail, m.Content)
	return err
}

func (r *repoPG) ListByRoom(ctx context.Context, room string, limit, offset int) ([]*Message, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM message WHERE room = $1`, room).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+cols+` FROM message WHERE room = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		room, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*Message
	for rows.Next() {
		m, err := scan(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, m)
	}
	return items, total, rows.Err()
}
