package chat

import "github.com/rs/zerolog"

// SendResult records the outcome of one delivery attempt during a broadcast.
type SendResult struct {
	Client *Client
	Err    error
}

// Broadcaster fans a message out to every live member of a room. Individual
// send failures are collected, never propagated: a member whose transport has
// died is evicted from the room after the delivery pass and its connection
// closed, and delivery to the remaining members is unaffected.
type Broadcaster struct {
	registry   *Registry
	echoSender bool
	log        zerolog.Logger
}

// NewBroadcaster creates a Broadcaster over the given registry. When
// echoSender is true the sending client receives its own messages back.
func NewBroadcaster(registry *Registry, echoSender bool, log zerolog.Logger) *Broadcaster {
	return &Broadcaster{
		registry:   registry,
		echoSender: echoSender,
		log:        log,
	}
}

// Broadcast delivers payload to the members of room, excluding sender unless
// sender echo is enabled. It never fails as a whole; the per-member outcomes
// are returned for inspection. Delivery iterates a snapshot of the member
// set, so joins and leaves concurrent with a broadcast are safe.
func (b *Broadcaster) Broadcast(room string, payload []byte, sender *Client) []SendResult {
	members := b.registry.Members(room)

	results := make([]SendResult, 0, len(members))
	for _, member := range members {
		if member == sender && !b.echoSender {
			continue
		}
		results = append(results, SendResult{
			Client: member,
			Err:    member.Send(payload),
		})
	}

	// Eviction pass: every handle that failed is stale. Remove it from the
	// room and close its transport if still open.
	for _, res := range results {
		if res.Err == nil {
			continue
		}
		b.registry.Leave(room, res.Client)
		_ = res.Client.Close()
		b.log.Warn().
			Str("client_id", res.Client.ID).
			Str("room", room).
			Err(res.Err).
			Msg("evicted stale chat client")
	}

	return results
}
