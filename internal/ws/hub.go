// Package ws streams screen views to clients over websockets.
package ws

import (
	"sync"

	"github.com/guttosm/food-details-service/internal/metrics"
)

// Hub keeps the open streams grouped by session.
type Hub struct {
	mu     sync.Mutex
	rooms  map[string]map[*Client]struct{}
	total  int
	closed bool
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{
		rooms: make(map[string]map[*Client]struct{}),
	}
}

func (h *Hub) register(c *Client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return false
	}
	if h.rooms[c.sessionID] == nil {
		h.rooms[c.sessionID] = make(map[*Client]struct{})
	}
	h.rooms[c.sessionID][c] = struct{}{}
	h.total++
	metrics.SetActiveStreams(h.total)
	return true
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.rooms[c.sessionID]
	if !ok {
		return
	}
	if _, exists := clients[c]; !exists {
		return
	}
	delete(clients, c)
	if len(clients) == 0 {
		delete(h.rooms, c.sessionID)
	}
	h.total--
	metrics.SetActiveStreams(h.total)
}

// Count returns the number of open streams of a session.
func (h *Hub) Count(sessionID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.rooms[sessionID])
}

// Len returns the number of open streams.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.total
}

// Shutdown closes every stream and rejects new ones.
func (h *Hub) Shutdown() {
	h.mu.Lock()
	h.closed = true
	var clients []*Client
	for _, room := range h.rooms {
		for c := range room {
			clients = append(clients, c)
		}
	}
	h.mu.Unlock()

	for _, c := range clients {
		c.goAway()
	}
}
