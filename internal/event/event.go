package event

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/osse101/Stashkeeper_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata map[string]interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata,omitempty"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// State event types
const (
	StateChanged      Type = domain.EventTypeStateChanged
	StateReloaded     Type = domain.EventTypeStateReloaded
	StateReloadFailed Type = domain.EventTypeStateReloadFailed
)

// NewStateChangedEvent announces a committed write. Inventory ids are sorted so
// subscribers can compare payloads.
func NewStateChangedEvent(op, actorID string, inventoryIDs []string, shopChanged bool, version uint64) Event {
	ids := append([]string(nil), inventoryIDs...)
	sort.Strings(ids)
	return Event{
		Version: EventSchemaVersion,
		Type:    StateChanged,
		Payload: domain.StateChangedPayload{
			Op:           op,
			ActorID:      actorID,
			InventoryIDs: ids,
			ShopChanged:  shopChanged,
			Version:      version,
			Timestamp:    time.Now().Unix(),
		},
	}
}

// NewStateReloadedEvent announces a full rebuild from the store
func NewStateReloadedEvent(source string, version uint64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    StateReloaded,
		Payload: domain.StateReloadedPayload{
			Source:    source,
			Version:   version,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewStateReloadFailedEvent announces that the last good state was kept
func NewStateReloadFailedEvent(source string, version uint64, err error) Event {
	payload := domain.StateReloadedPayload{
		Source:    source,
		Version:   version,
		Timestamp: time.Now().Unix(),
	}
	if err != nil {
		payload.Error = err.Error()
	}
	return Event{
		Version: EventSchemaVersion,
		Type:    StateReloadFailed,
		Payload: payload,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers synchronously
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
