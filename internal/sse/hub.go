package sse

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event is one frame on an SSE stream
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Timestamp int64       `json:"timestamp"`
	Payload   interface{} `json:"payload"`

	// inventories routes the event; empty means it concerns everyone
	inventories []string
}

// Filter narrows what a client receives. Zero value receives everything.
type Filter struct {
	Types       []string
	Inventories []string
}

func (f Filter) accepts(evt Event) bool {
	if len(f.Types) > 0 && !slices.Contains(f.Types, evt.Type) {
		return false
	}
	if len(f.Inventories) == 0 || len(evt.inventories) == 0 {
		return true
	}
	for _, id := range evt.inventories {
		if slices.Contains(f.Inventories, id) {
			return true
		}
	}
	return false
}

// Client is one open stream
type Client struct {
	ID           string
	EventChannel chan Event
	Filter       Filter
}

// Hub fans events out to streams. Registration is synchronous so an event
// broadcast after Register returns always reaches the new client.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
	closed  bool

	queue    chan Event
	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewHub creates a hub; call Start before broadcasting
func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*Client),
		queue:   make(chan Event, BroadcastBufferSize),
		done:    make(chan struct{}),
	}
}

// Start launches the fan-out loop
func (h *Hub) Start() {
	h.wg.Add(1)
	go h.loop()
}

// Stop ends the loop and closes every client channel. Safe to call twice.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() { close(h.done) })
	h.wg.Wait()

	h.mu.Lock()
	defer h.mu.Unlock()
	for id, c := range h.clients {
		close(c.EventChannel)
		delete(h.clients, id)
	}
	h.closed = true
}

func (h *Hub) loop() {
	defer h.wg.Done()
	for {
		select {
		case evt := <-h.queue:
			h.deliver(evt)
		case <-h.done:
			return
		}
	}
}

func (h *Hub) deliver(evt Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.clients {
		if !c.Filter.accepts(evt) {
			continue
		}
		select {
		case c.EventChannel <- evt:
		default:
			// slow reader; it will refetch on the next event
		}
	}
}

// Register adds a client. After Stop the returned client's channel is already closed.
func (h *Hub) Register(filter Filter) *Client {
	c := &Client{
		ID:           uuid.NewString(),
		EventChannel: make(chan Event, ClientEventBuffer),
		Filter:       filter,
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		close(c.EventChannel)
		return c
	}
	h.clients[c.ID] = c
	return c
}

// Unregister removes a client and closes its channel
func (h *Hub) Unregister(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c, ok := h.clients[clientID]; ok {
		close(c.EventChannel)
		delete(h.clients, clientID)
	}
}

// Broadcast queues an event for every client
func (h *Hub) Broadcast(eventType string, payload interface{}) {
	h.BroadcastFor(eventType, payload, nil)
}

// BroadcastFor queues an event that only inventory-filtered clients watching
// one of inventoryIDs receive. Unfiltered clients always receive it.
func (h *Hub) BroadcastFor(eventType string, payload interface{}, inventoryIDs []string) {
	evt := Event{
		ID:          uuid.NewString(),
		Type:        eventType,
		Timestamp:   time.Now().Unix(),
		Payload:     payload,
		inventories: inventoryIDs,
	}
	select {
	case h.queue <- evt:
	default:
		slog.Default().Warn(LogMsgEventDropped, "event_type", eventType)
	}
}

// ClientCount returns the number of open streams
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// FormatSSEMessage renders evt in text/event-stream framing
func FormatSSEMessage(evt Event) ([]byte, error) {
	data, err := json.Marshal(evt)
	if err != nil {
		return nil, err
	}
	return []byte(fmt.Sprintf("id: %s\nevent: %s\ndata: %s\n\n", evt.ID, evt.Type, data)), nil
}
