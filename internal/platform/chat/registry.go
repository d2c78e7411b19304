package chat

import "sync"

// Registry is the process-wide mapping from room name to the set of clients
// currently joined to that room. Rooms are created lazily on first join and
// pruned when their last member leaves. All operations are thread-safe via
// sync.RWMutex; no lock is held across a blocking wait.
type Registry struct {
	mu      sync.RWMutex
	rooms   map[string]map[*Client]struct{}
	current map[*Client]string // client -> room it is joined to
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		rooms:   make(map[string]map[*Client]struct{}),
		current: make(map[*Client]string),
	}
}

// Join adds client to room, creating the room if it has no prior members.
// Joining a room the client is already in is a no-op. A client is a member of
// at most one room at a time: joining a different room removes it from the
// previous one first.
func (r *Registry) Join(room string, client *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.current[client]; ok {
		if prev == room {
			return
		}
		r.removeLocked(prev, client)
	}

	if r.rooms[room] == nil {
		r.rooms[room] = make(map[*Client]struct{})
	}
	r.rooms[room][client] = struct{}{}
	r.current[client] = room
}

// Leave removes client from room's member set. Absent members are a no-op,
// which keeps racy cleanup paths idempotent. The room entry is deleted once
// its member set becomes empty.
func (r *Registry) Leave(room string, client *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.removeLocked(room, client)
}

func (r *Registry) removeLocked(room string, client *Client) {
	members, ok := r.rooms[room]
	if !ok {
		return
	}
	if _, ok := members[client]; !ok {
		return
	}
	delete(members, client)
	delete(r.current, client)
	if len(members) == 0 {
		delete(r.rooms, room)
	}
}

// Members returns a point-in-time snapshot of room's member set. Callers
// iterate the snapshot, never the live set.
func (r *Registry) Members(room string) []*Client {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members := r.rooms[room]
	snapshot := make([]*Client, 0, len(members))
	for c := range members {
		snapshot = append(snapshot, c)
	}
	return snapshot
}

// RoomOf returns the room the client is currently joined to, if any.
func (r *Registry) RoomOf(client *Client) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	room, ok := r.current[client]
	return room, ok
}

// RoomCount returns the number of rooms with at least one member.
func (r *Registry) RoomCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rooms)
}

// MemberCount returns the number of clients joined to room.
func (r *Registry) MemberCount(room string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rooms[room])
}
