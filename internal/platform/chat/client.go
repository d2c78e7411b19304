// Package chat provides the real-time room broadcast subsystem. Clients
// connect over WebSocket to a named room and every text frame they send is
// relayed verbatim to the other live members of that room. Rooms are
// ephemeral, in-memory groupings; nothing here touches the persistence layer.
package chat

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	gorillawebsocket "github.com/gorilla/websocket"
)

// ErrClientClosed is returned by Send after the client's transport has been
// closed.
var ErrClientClosed = errors.New("chat: client closed")

// Conn abstracts a WebSocket connection for testability.
type Conn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Client is the live handle for one connection. It is owned by the serve
// loop that created it; the registry only references it for membership.
type Client struct {
	ID   string
	Room string

	conn   Conn
	mu     sync.Mutex // serializes writes and guards closed
	closed bool
}

// NewClient wraps a connection bound to the given room.
func NewClient(room string, conn Conn) *Client {
	return &Client{
		ID:   uuid.New().String(),
		Room: room,
		conn: conn,
	}
}

// Send writes payload as a single text frame. Writes are serialized so that
// concurrent broadcasts cannot interleave partial frames on the wire.
func (c *Client) Send(payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClientClosed
	}
	return c.conn.WriteMessage(gorillawebsocket.TextMessage, payload)
}

// Close shuts down the underlying transport. Safe to call more than once;
// repeated closes are no-ops so racy cleanup paths never double-free.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	return c.conn.Close()
}

// Closed reports whether the transport has been closed.
func (c *Client) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// receive blocks until the next inbound frame. No registry lock is ever held
// across this call.
func (c *Client) receive() ([]byte, error) {
	_, payload, err := c.conn.ReadMessage()
	return payload, err
}

// gorillaConnAdapter wraps a gorilla/websocket.Conn to satisfy the Conn interface.
type gorillaConnAdapter struct {
	conn *gorillawebsocket.Conn
}

func (a *gorillaConnAdapter) ReadMessage() (int, []byte, error) {
	return a.conn.ReadMessage()
}

func (a *gorillaConnAdapter) WriteMessage(messageType int, data []byte) error {
	return a.conn.WriteMessage(messageType, data)
}

func (a *gorillaConnAdapter) Close() error {
	return a.conn.Close()
}
