package ws

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Client is the part of a websocket connection the hub writes to.
type Client interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Event is pushed to every connected client after a ledger change.
type Event struct {
	ID      uuid.UUID   `json:"id"`
	Type    string      `json:"type"`
	Action  string      `json:"action"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	At      time.Time   `json:"at"`
}

const (
	EventLedgerUpdate = "ledger_update"

	ActionProductCreated     = "product_created"
	ActionProductUpdated     = "product_updated"
	ActionProductDeleted     = "product_deleted"
	ActionTransactionCreated = "transaction_created"
	ActionTransactionDeleted = "transaction_deleted"
)

type Hub struct {
	Clients    map[Client]bool
	Register   chan Client
	Unregister chan Client
	Broadcast  chan []byte
	mutex      sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[Client]bool),
		Register:   make(chan Client),
		Unregister: make(chan Client),
		Broadcast:  make(chan []byte, 64),
	}
}

// Run serves registrations and broadcasts until ctx is done, then closes every client.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.mutex.Lock()
			for conn := range h.Clients {
				conn.Close()
				delete(h.Clients, conn)
			}
			h.mutex.Unlock()
			return

		case conn := <-h.Register:
			h.mutex.Lock()
			h.Clients[conn] = true
			h.mutex.Unlock()
			logrus.Debug("New WS client connected")

		case conn := <-h.Unregister:
			h.mutex.Lock()
			if _, ok := h.Clients[conn]; ok {
				delete(h.Clients, conn)
				conn.Close()
			}
			h.mutex.Unlock()

		case message := <-h.Broadcast:
			h.mutex.Lock()
			for conn := range h.Clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					conn.Close()
					delete(h.Clients, conn)
				}
			}
			h.mutex.Unlock()
		}
	}
}

// Count returns the number of connected clients.
func (h *Hub) Count() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.Clients)
}

// Publish queues a ledger event without blocking. Events are dropped when the
// queue is full. A nil hub ignores the call.
func (h *Hub) Publish(action, message string, data interface{}) {
	if h == nil {
		return
	}
	event := Event{
		ID:      uuid.New(),
		Type:    EventLedgerUpdate,
		Action:  action,
		Message: message,
		Data:    data,
		At:      time.Now().UTC(),
	}
	msg, err := json.Marshal(event)
	if err != nil {
		logrus.WithError(err).Warn("Failed to encode ws event")
		return
	}
	select {
	case h.Broadcast <- msg:
	default:
		logrus.WithField("action", action).Warn("WS queue full, dropping event")
	}
}
