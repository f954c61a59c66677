package websocket

import (
	"encoding/json"
	"log/slog"
	"sync"
)

// Message is a real-time notification pushed to presentation consumers:
// either an engine event or a full state snapshot.
type Message struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

// Hub maintains the set of active WebSocket clients, broadcasts messages,
// and replays the most recent snapshot to clients as they connect so a UI
// has state immediately.
type Hub struct {
	mu       sync.RWMutex
	clients  map[*Client]struct{}
	lastSnap []byte
	logger   *slog.Logger
}

// NewHub creates a new Hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients: make(map[*Client]struct{}),
		logger:  logger,
	}
}

// Register adds a client to the hub and queues the latest snapshot for it.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	snap := h.lastSnap
	h.mu.Unlock()

	if snap != nil {
		select {
		case c.send <- snap:
		default:
		}
	}
}

// Unregister removes a client from the hub and closes its send channel.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
}

// Broadcast sends a message to all connected clients.
func (h *Hub) Broadcast(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error("marshal broadcast", "error", err)
		return
	}
	h.broadcast(data)
}

// BroadcastSnapshot sends a snapshot message to all clients and retains it
// for replay to future connections.
func (h *Hub) BroadcastSnapshot(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error("marshal snapshot", "error", err)
		return
	}

	h.mu.Lock()
	h.lastSnap = data
	h.mu.Unlock()

	h.broadcast(data)
}

func (h *Hub) broadcast(data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			// Client buffer full, drop the message rather than block
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
