package chat

import (
	"net/http"

	gorillawebsocket "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

var upgrader = gorillawebsocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins; tighten in production.
	},
}

// Handler owns the accept → join → receive loop → leave → close lifecycle of
// each connection on the /ws/:room endpoint.
type Handler struct {
	registry    *Registry
	broadcaster *Broadcaster
	log         zerolog.Logger
}

// NewHandler creates a Handler bound to the given registry and broadcaster.
func NewHandler(registry *Registry, broadcaster *Broadcaster, log zerolog.Logger) *Handler {
	return &Handler{
		registry:    registry,
		broadcaster: broadcaster,
		log:         log,
	}
}

// RegisterRoutes registers the WebSocket endpoint.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/ws/:room", h.Serve)
}

// Serve upgrades the HTTP connection, joins the client to its room, and runs
// the receive loop until the peer disconnects or the transport errors.
func (h *Handler) Serve(c echo.Context) error {
	room := c.Param("room")
	if room == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "room is required")
	}

	ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	client := NewClient(room, &gorillaConnAdapter{ws})
	h.registry.Join(room, client)
	h.log.Info().
		Str("client_id", client.ID).
		Str("room", room).
		Msg("chat client joined")

	h.receiveLoop(room, client)
	return nil
}

// receiveLoop relays inbound frames to the room until the connection dies.
// Cleanup runs on every exit path: membership is released and the transport
// closed whether the peer disconnected gracefully or the read failed. Receive
// errors are terminal for the connection; reconnection is the client's
// responsibility.
func (h *Handler) receiveLoop(room string, client *Client) {
	defer func() {
		h.registry.Leave(room, client)
		_ = client.Close()
		h.log.Info().
			Str("client_id", client.ID).
			Str("room", room).
			Msg("chat client left")
	}()

	for {
		payload, err := client.receive()
		if err != nil {
			return
		}
		h.broadcaster.Broadcast(room, payload, client)
	}
}
