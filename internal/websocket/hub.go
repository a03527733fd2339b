package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"community-connect-be/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
)

type Hub struct {
	// Registered clients map: SessionID -> List of Clients (multi-device)
	clients map[string][]*Client

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	// Lock for safe map access
	mu sync.RWMutex

	// Redis connection for cross-instance communication
	rdb *redis.Client

	// Dedicated Logger
	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[string][]*Client),
		rdb:        rdb,
		logger:     log,
	}
}

func (h *Hub) Run() {
	// Start Redis Subscriber if Redis is available
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.SessionID] = append(h.clients[client.SessionID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"session_id": client.SessionID})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.SessionID]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.SessionID] = append(clients[:i], clients[i+1:]...)
						// Only close site for client.Send; drop paths just request unregister.
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.SessionID]) == 0 {
					delete(h.clients, client.SessionID)
					h.logger.Info("Hub", "Client completely unregistered", map[string]interface{}{"session_id": client.SessionID})
				}
			}
			h.mu.Unlock()
		}
	}
}

// Send delivers a frame to every device attached to a session, here and on
// other instances via Redis.
func (h *Hub) Send(sessionID string, frame interface{}) {
	data, err := json.Marshal(frame)
	if err != nil {
		h.logger.Error("Hub", "Failed to marshal frame", map[string]interface{}{"error": err.Error()})
		return
	}

	h.mu.RLock()
	clients, localFound := h.clients[sessionID]
	h.mu.RUnlock()

	if localFound {
		for _, client := range clients {
			select {
			case client.Send <- data:
			default:
				h.logger.Warn("Hub", "Client Send buffer full, dropping message", map[string]interface{}{"session_id": sessionID})
				h.unregister <- client
			}
		}
	}

	// Publish to Redis so instances holding other devices of this session
	// deliver too.
	if h.rdb != nil {
		payload := map[string]interface{}{
			"target_session_id": sessionID,
			"message":           json.RawMessage(data),
		}
		jsonPayload, _ := json.Marshal(payload)
		h.rdb.Publish(context.Background(), "cluster_events", jsonPayload)
	}
}

// Broadcast sends a frame to ALL connected clients, e.g. service notices.
func (h *Hub) Broadcast(frame interface{}) {
	data, err := json.Marshal(frame)
	if err != nil {
		return
	}

	// Snapshot under the read lock; unregister requests must not be sent
	// while holding it.
	h.mu.RLock()
	var targets []*Client
	for _, clients := range h.clients {
		targets = append(targets, clients...)
	}
	h.mu.RUnlock()

	for _, client := range targets {
		select {
		case client.Send <- data:
		default:
			h.unregister <- client
		}
	}

	if h.rdb != nil {
		payload := map[string]interface{}{
			"target_session_id": "*", // Wildcard for broadcast
			"message":           json.RawMessage(data),
		}
		jsonPayload, _ := json.Marshal(payload)
		h.rdb.Publish(context.Background(), "cluster_events", jsonPayload)
	}
}

func (h *Hub) subscribeToRedis() {
	// Every instance subscribes to "cluster_events" and filters on the
	// sessions it holds locally.
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, "cluster_events")
	defer pubsub.Close()

	ch := pubsub.Channel()

	for msg := range ch {
		var payload struct {
			TargetSessionID string          `json:"target_session_id"`
			Message         json.RawMessage `json:"message"`
		}
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			log.Printf("Redis msg parse error: %v", err)
			continue
		}

		if payload.TargetSessionID == "*" {
			h.mu.RLock()
			var targets []*Client
			for _, clients := range h.clients {
				targets = append(targets, clients...)
			}
			h.mu.RUnlock()

			for _, client := range targets {
				select {
				case client.Send <- payload.Message:
				default:
					h.unregister <- client
				}
			}
			continue
		}

		h.mu.RLock()
		clients, ok := h.clients[payload.TargetSessionID]
		h.mu.RUnlock()

		if ok {
			for _, client := range clients {
				select {
				case client.Send <- payload.Message:
				default:
					h.unregister <- client
				}
			}
		}
	}
}
