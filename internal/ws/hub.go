// Package ws provides a broadcast-only websocket feed of task change
// events. Connected clients receive one JSON frame per create, update or
// delete; slow clients are dropped rather than blocking the feed.
package ws

import (
	"encoding/json"
	"sync"
	"time"

	"coder_management/internal/logger"
)

// Event is a single feed frame.
type Event struct {
	Event string    `json:"event"`
	Data  any       `json:"data"`
	At    time.Time `json:"at"`
}

type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*Client]struct{})}
}

func (h *Hub) add(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) remove(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
}

// ClientCount returns the number of connected feed clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Publish broadcasts an event to every connected client. A client whose
// send buffer is full is disconnected.
func (h *Hub) Publish(event string, data any) {
	frame, err := json.Marshal(Event{Event: event, Data: data, At: time.Now().UTC()})
	if err != nil {
		logger.Error("ws: marshal event", "event", event, "error", err)
		return
	}

	h.mu.RLock()
	var stalled []*Client
	for c := range h.clients {
		select {
		case c.send <- frame:
		default:
			stalled = append(stalled, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range stalled {
		h.remove(c)
	}
}
