package ws

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/cgabhane/author-website/internal/logger"
	"github.com/cgabhane/author-website/internal/metrics"
	"github.com/cgabhane/author-website/internal/model"
)

// Message is the WebSocket envelope format
type Message struct {
	Type      model.EventType `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	Timestamp time.Time       `json:"timestamp"`
}

// Hub fans site events out to connected admin dashboards
type Hub struct {
	conns map[*Connection]bool
	mu    sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan []byte
	done       chan struct{}
	closeOnce  sync.Once

	log logger.Logger
}

// Connection is one admin dashboard socket
type Connection struct {
	Username string
	Send     chan []byte
}

// NewConnection creates a connection with a buffered send queue
func NewConnection(username string) *Connection {
	return &Connection{
		Username: username,
		Send:     make(chan []byte, 64),
	}
}

// NewHub creates a hub and starts its event loop
func NewHub(log logger.Logger) *Hub {
	h := &Hub{
		conns:      make(map[*Connection]bool),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan []byte, 256),
		done:       make(chan struct{}),
		log:        log,
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.conns[conn] = true
			h.mu.Unlock()
			metrics.AdminConnections.Inc()
			h.log.Info("admin connected to event feed", map[string]interface{}{"username": conn.Username})

		case conn := <-h.unregister:
			h.mu.Lock()
			if h.conns[conn] {
				delete(h.conns, conn)
				close(conn.Send)
				metrics.AdminConnections.Dec()
				h.log.Info("admin left event feed", map[string]interface{}{"username": conn.Username})
			}
			h.mu.Unlock()

		case data := <-h.broadcast:
			h.mu.RLock()
			for conn := range h.conns {
				select {
				case conn.Send <- data:
				default:
					// slow reader, drop
				}
			}
			h.mu.RUnlock()

		case <-h.done:
			h.mu.Lock()
			for conn := range h.conns {
				delete(h.conns, conn)
				close(conn.Send)
				metrics.AdminConnections.Dec()
			}
			h.mu.Unlock()
			return
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	select {
	case h.register <- conn:
	case <-h.done:
		close(conn.Send)
	}
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	select {
	case h.unregister <- conn:
	case <-h.done:
	}
}

// Count returns the number of connected dashboards
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

// Publish sends an event to every connected dashboard (implements service.Broadcaster).
// It never blocks the caller; events are dropped when the queue is full.
func (h *Hub) Publish(eventType model.EventType, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		h.log.WithError(err).Warn("event payload not encodable", map[string]interface{}{"type": string(eventType)})
		return
	}
	data, err := json.Marshal(&Message{
		Type:      eventType,
		Payload:   body,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		return
	}

	select {
	case <-h.done:
	case h.broadcast <- data:
	default:
		h.log.Warn("event feed queue full, dropping event", map[string]interface{}{"type": string(eventType)})
	}
}

// Close disconnects every dashboard and stops the event loop
func (h *Hub) Close() {
	h.closeOnce.Do(func() { close(h.done) })
}
