package websocket

import (
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/noplanb/backend/internal/cache"
)

// Hub maintains the set of connected admin dashboards and fans admin
// activity events out to them. Events arrive over Redis pub/sub so every
// server instance sees writes made through any of them.
type Hub struct {
	// Registered clients keyed by connection id
	clients map[uuid.UUID]*Client

	// Outbound events for connected clients
	broadcast chan []byte

	// Register requests from clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client

	// Redis client for pub/sub
	redis *cache.RedisClient

	// Mutex for thread-safe operations
	mu sync.RWMutex
}

// NewHub creates a new Hub
func NewHub(redis *cache.RedisClient) *Hub {
	return &Hub{
		clients:    make(map[uuid.UUID]*Client),
		broadcast:  make(chan []byte, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		redis:      redis,
	}
}

// Run starts the hub
func (h *Hub) Run() {
	go h.subscribeToActivity()

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.connID] = client
			h.mu.Unlock()

			log.Printf("Dashboard connected: %s (%s)", client.connID, client.email)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.connID]; ok {
				delete(h.clients, client.connID)
				close(client.send)
			}
			h.mu.Unlock()

			log.Printf("Dashboard disconnected: %s", client.connID)

		case event := <-h.broadcast:
			h.mu.RLock()
			for _, client := range h.clients {
				select {
				case client.send <- event:
				default:
					close(client.send)
					delete(h.clients, client.connID)
				}
			}
			h.mu.RUnlock()
		}
	}
}

// subscribeToActivity relays Redis activity events into the broadcast loop
func (h *Hub) subscribeToActivity() {
	pubsub := h.redis.SubscribeToActivity()
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		h.broadcast <- []byte(msg.Payload)
	}
}

// ClientCount returns the number of connected dashboards
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients)
}
