package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"compare-audius-be/internal/pkg/logger"
)

const NoticePagesRevalidated = "pages.revalidated"

// Notice is pushed to every connected admin browser
type Notice struct {
	Type  string    `json:"type"`
	Paths []string  `json:"paths,omitempty"`
	At    time.Time `json:"at"`
}

// Hub fans notices out to the admin sessions connected on this instance.
// Other instances learn about purges over NATS and notify their own hubs.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
	logger     logger.ILogger
}

func NewHub(log logger.ILogger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client, 16),
		logger:     log,
	}
}

// Run owns registration until ctx is done, then closes every client
func (h *Hub) Run(ctx context.Context) error {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.logger.Debug("WS", "Admin client connected", map[string]interface{}{"email": client.Email})

		case client := <-h.unregister:
			h.remove(client)

		case <-ctx.Done():
			h.mu.Lock()
			for client := range h.clients {
				close(client.Send)
				delete(h.clients, client)
			}
			h.mu.Unlock()
			return nil
		}
	}
}

func (h *Hub) remove(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[client] {
		delete(h.clients, client)
		close(client.Send)
		h.logger.Debug("WS", "Admin client disconnected", map[string]interface{}{"email": client.Email})
	}
}

// Notify broadcasts n. Clients whose buffer is full are dropped.
func (h *Hub) Notify(n Notice) {
	if n.At.IsZero() {
		n.At = time.Now().UTC()
	}
	data, err := json.Marshal(n)
	if err != nil {
		return
	}

	var slow []*Client
	h.mu.RLock()
	for client := range h.clients {
		select {
		case client.Send <- data:
		default:
			slow = append(slow, client)
		}
	}
	h.mu.RUnlock()

	for _, client := range slow {
		h.logger.Warn("WS", "Client send buffer full, dropping connection", map[string]interface{}{"email": client.Email})
		h.remove(client)
	}
}

// Count is the number of connected clients
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// PagesPurged tells connected admins which public pages were refreshed
func (h *Hub) PagesPurged(paths []string) {
	h.Notify(Notice{Type: NoticePagesRevalidated, Paths: paths})
}
