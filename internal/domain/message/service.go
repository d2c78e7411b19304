package message

import (
	"context"
	"fmt"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, m *Message) error {
	if m.Sender == "" {
		return fmt.Errorf("sender is required")
	}
	if m.Content == "" {
		return fmt.Errorf("content is required")
	}
	if m.SenderEmail != nil && !strings.Contains(*m.SenderEmail, "@") {
		return fmt.Errorf("sender_email is not a valid email address")
	}
	if m.Room == "" {
		m.Room = DefaultRoom
	}
	return s.repo.Create(ctx, m)
}

func (s *Service) ListByRoom(ctx context.Context, room string, limit, offset int) ([]*Message, int, error) {
	if room == "" {
		room = DefaultRoom
	}
	return s.repo.ListByRoom(ctx, room, limit, offset)
}
