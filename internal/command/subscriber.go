package command

import (
	"context"
	"log/slog"

	"github.com/osse101/Stashkeeper_Go/internal/domain"
	"github.com/osse101/Stashkeeper_Go/internal/event"
)

// Subscriber pushes state events to WebSocket clients so they refetch
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new WebSocket subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{hub: hub, bus: bus}
}

// Subscribe registers handlers for the state event types
func (s *Subscriber) Subscribe() {
	types := []event.Type{event.StateChanged, event.StateReloaded, event.StateReloadFailed}
	names := make([]string, len(types))
	for i, typ := range types {
		s.bus.Subscribe(typ, s.relay)
		names[i] = string(typ)
	}
	slog.Info(LogMsgSubscribed, "types", names)
}

func (s *Subscriber) relay(_ context.Context, evt event.Event) error {
	reply := Reply{Kind: ReplyEvent, Type: string(evt.Type)}

	switch evt.Type {
	case event.StateChanged:
		payload, err := event.DecodePayload[domain.StateChangedPayload](evt.Payload)
		if err != nil {
			slog.Warn("Invalid state changed event payload", "error", err)
			return nil
		}
		reply.Data, reply.Version = payload, payload.Version
	default:
		payload, err := event.DecodePayload[domain.StateReloadedPayload](evt.Payload)
		if err != nil {
			slog.Warn("Invalid reload event payload", "error", err)
			return nil
		}
		reply.Data, reply.Version = payload, payload.Version
	}

	if s.hub.ClientCount() == 0 {
		return nil
	}
	s.hub.Broadcast(reply)
	slog.Debug(LogMsgEventRelayed, "event_type", evt.Type, "version", reply.Version)
	return nil
}
