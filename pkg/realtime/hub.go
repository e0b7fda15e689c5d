package realtime

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Origin checks are handled by the CORS layer.
		return true
	},
}

// Event is the change notification pushed to dashboard clients. The
// payload carries just enough for the client to decide what to
// re-fetch; it is not the changed record itself.
type Event struct {
	Type     string `json:"type"`
	GarageID string `json:"garage_id"`
	Payload  any    `json:"payload,omitempty"`
}

type envelope struct {
	garageID uuid.UUID
	data     []byte
}

// Hub tracks connected dashboard clients and fans change events out to
// the clients subscribed to the affected garage.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan envelope
	mutex      sync.RWMutex
	log        *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan envelope, 64),
		log:        log.With(zap.String("component", "realtime_hub")),
	}
}

// Run processes register/unregister/broadcast traffic. Call once from
// a dedicated goroutine at startup.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = true
			h.mutex.Unlock()
			h.log.Debug("Client connected",
				zap.String("garage_id", client.GarageID.String()),
				zap.Int("clients", h.ClientCount()))

		case client := <-h.unregister:
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mutex.Unlock()
			h.log.Debug("Client disconnected",
				zap.String("garage_id", client.GarageID.String()))

		case env := <-h.broadcast:
			h.mutex.Lock()
			for client := range h.clients {
				if client.GarageID != env.garageID {
					continue
				}
				select {
				case client.send <- env.data:
				default:
					close(client.send)
					delete(h.clients, client)
				}
			}
			h.mutex.Unlock()
		}
	}
}

// Publish queues a change event for every client watching the garage.
// Safe to call from any goroutine; drops the event if the hub backlog
// is full rather than blocking the caller.
func (h *Hub) Publish(garageID uuid.UUID, eventType string, payload any) {
	event := Event{
		Type:     eventType,
		GarageID: garageID.String(),
		Payload:  payload,
	}

	data, err := json.Marshal(event)
	if err != nil {
		h.log.Error("Failed to marshal event",
			zap.Error(err),
			zap.String("type", eventType))
		return
	}

	select {
	case h.broadcast <- envelope{garageID: garageID, data: data}:
	default:
		h.log.Warn("Event dropped, hub backlog full",
			zap.String("type", eventType),
			zap.String("garage_id", garageID.String()))
	}
}

func (h *Hub) ClientCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}

// ServeWS upgrades the request and registers a client scoped to the
// given garage.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, garageID uuid.UUID) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Error("WebSocket upgrade failed", zap.Error(err))
		return
	}

	client := &Client{
		GarageID: garageID,
		conn:     conn,
		send:     make(chan []byte, 256),
		hub:      h,
	}

	h.register <- client

	go client.writePump()
	go client.readPump()
}
