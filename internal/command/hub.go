package command

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/osse101/Stashkeeper_Go/internal/metrics"
)

// Hub tracks open WebSocket connections and fans events out to them
type Hub struct {
	mu    sync.RWMutex
	conns map[*Connection]struct{}
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{conns: make(map[*Connection]struct{})}
}

func (h *Hub) add(c *Connection) {
	h.mu.Lock()
	h.conns[c] = struct{}{}
	h.mu.Unlock()
	metrics.RealtimeClients.WithLabelValues(metrics.TransportWebSocket).Inc()
}

func (h *Hub) remove(c *Connection) {
	h.mu.Lock()
	_, ok := h.conns[c]
	delete(h.conns, c)
	h.mu.Unlock()
	if ok {
		metrics.RealtimeClients.WithLabelValues(metrics.TransportWebSocket).Dec()
	}
}

// Broadcast sends a reply to every connection. Slow clients miss it rather
// than block the others.
func (h *Hub) Broadcast(reply Reply) {
	msg, err := json.Marshal(reply)
	if err != nil {
		slog.Error(LogMsgWriteError, "error", err, "type", reply.Type)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.conns {
		c.enqueue(msg)
	}
}

// ClientCount returns the number of open connections
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

// Close closes every connection. Their pumps exit on their own.
func (h *Hub) Close() {
	h.mu.RLock()
	conns := make([]*Connection, 0, len(h.conns))
	for c := range h.conns {
		conns = append(conns, c)
	}
	h.mu.RUnlock()

	for _, c := range conns {
		c.Close()
	}
}
