package message

import (
	"time"

	"github.com/google/uuid"
)

// DefaultRoom is used when a message is posted without a room.
const DefaultRoom = "general"

// Message is a persisted chat message. Persistence is a separate CRUD path
// from the live room broadcast: posting here does not fan out to connected
// clients, and relayed frames are not stored unless a client posts them.
type Message struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Room        string    `db:"room" json:"room"`
	Sender      string    `db:"sender" json:"sender"`
	SenderEmail *string   `db:"sender_email" json:"sender_email,omitempty"`
	Content     string    `db:"content" json:"content"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
