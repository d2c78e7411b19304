package message

import "context"

type Repository interface {
	Create(ctx context.Context, m *Message) error
	ListByRoom(ctx context.Context, room string, limit, offset int) ([]*Message, int, error)
}
