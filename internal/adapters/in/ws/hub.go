// Package ws provides the websocket push channel: a hub tracking which
// connected clients subscribed to which recipient keys, and the connection
// handler feeding it. Membership lives only for the process lifetime;
// reconnecting clients re-join their keys.
package ws

import (
	"log/slog"
	"sync"
)

// Session is one connected push channel. The hub only needs to hand events
// to it; delivery mechanics (and their failures) stay inside the session.
type Session interface {
	Deliver(event string, payload any)
}

// Hub is the in-memory subscription registry. It implements the
// notifications.Router contract: Publish to a key's member set, PublishAll
// to every connected session.
type Hub struct {
	mu       sync.RWMutex
	sessions map[Session]map[string]struct{}
	rooms    map[string]map[Session]struct{}

	logger *slog.Logger
}

// NewHub creates an empty hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		sessions: make(map[Session]map[string]struct{}),
		rooms:    make(map[string]map[Session]struct{}),
		logger:   logger.With("component", "ws_hub"),
	}
}

// Register adds a connected session with no subscriptions yet.
// Registering the same session twice is a no-op.
func (h *Hub) Register(s Session) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.sessions[s]; !ok {
		h.sessions[s] = make(map[string]struct{})
	}
}

// Unregister removes a session and all its subscriptions.
// Unknown sessions are ignored.
func (h *Hub) Unregister(s Session) {
	h.mu.Lock()
	defer h.mu.Unlock()

	keys, ok := h.sessions[s]
	if !ok {
		return
	}

	for key := range keys {
		h.removeFromRoom(s, key)
	}
	delete(h.sessions, s)
}

// Join subscribes a session to a recipient key. Idempotent; joining an
// unregistered session registers it first.
func (h *Hub) Join(s Session, key string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.sessions[s]; !ok {
		h.sessions[s] = make(map[string]struct{})
	}
	h.sessions[s][key] = struct{}{}

	if _, ok := h.rooms[key]; !ok {
		h.rooms[key] = make(map[Session]struct{})
	}
	h.rooms[key][s] = struct{}{}
}

// Leave unsubscribes a session from one key. Idempotent.
func (h *Hub) Leave(s Session, key string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if keys, ok := h.sessions[s]; ok {
		delete(keys, key)
	}
	h.removeFromRoom(s, key)
}

// MembersOf returns how many sessions are subscribed to a key.
func (h *Hub) MembersOf(key string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[key])
}

// Publish delivers the event to every session subscribed to the key.
// Delivery happens outside the lock so a slow session cannot stall joins.
func (h *Hub) Publish(key string, event string, payload any) {
	h.mu.RLock()
	members := make([]Session, 0, len(h.rooms[key]))
	for s := range h.rooms[key] {
		members = append(members, s)
	}
	h.mu.RUnlock()

	for _, s := range members {
		s.Deliver(event, payload)
	}

	h.logger.Debug("event published", "key", key, "event", event, "members", len(members))
}

// PublishAll delivers the event to every connected session, subscribed or not.
func (h *Hub) PublishAll(event string, payload any) {
	h.mu.RLock()
	members := make([]Session, 0, len(h.sessions))
	for s := range h.sessions {
		members = append(members, s)
	}
	h.mu.RUnlock()

	for _, s := range members {
		s.Deliver(event, payload)
	}

	h.logger.Debug("event broadcast", "event", event, "members", len(members))
}

// removeFromRoom must be called with the write lock held.
func (h *Hub) removeFromRoom(s Session, key string) {
	room, ok := h.rooms[key]
	if !ok {
		return
	}

	delete(room, s)
	if len(room) == 0 {
		delete(h.rooms, key)
	}
}
