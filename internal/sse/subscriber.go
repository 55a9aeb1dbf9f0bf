package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/Stashkeeper_Go/internal/domain"
	"github.com/osse101/Stashkeeper_Go/internal/event"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers handlers for all relevant event types
func (s *Subscriber) Subscribe() {
	s.bus.Subscribe(event.StateChanged, s.handleStateChanged)
	s.bus.Subscribe(event.StateReloaded, s.handleReload(EventTypeStateReloaded))
	s.bus.Subscribe(event.StateReloadFailed, s.handleReload(EventTypeStateReloadFailed))

	slog.Info(LogMsgSubscribed,
		"types", []string{
			string(event.StateChanged),
			string(event.StateReloaded),
			string(event.StateReloadFailed),
		})
}

func (s *Subscriber) handleStateChanged(_ context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[domain.StateChangedPayload](evt.Payload)
	if err != nil {
		slog.Warn("Invalid state changed event payload", "error", err)
		return nil
	}

	s.hub.BroadcastFor(EventTypeStateChanged, StateChangedPayload{
		Op:           payload.Op,
		ActorID:      payload.ActorID,
		InventoryIDs: payload.InventoryIDs,
		ShopChanged:  payload.ShopChanged,
		Version:      payload.Version,
	}, payload.InventoryIDs)

	slog.Debug(LogMsgEventBroadcast,
		"event_type", EventTypeStateChanged,
		"op", payload.Op,
		"version", payload.Version)
	return nil
}

func (s *Subscriber) handleReload(sseType string) event.Handler {
	return func(_ context.Context, evt event.Event) error {
		payload, err := event.DecodePayload[domain.StateReloadedPayload](evt.Payload)
		if err != nil {
			slog.Warn("Invalid reload event payload", "error", err)
			return nil
		}

		s.hub.Broadcast(sseType, ReloadPayload{
			Source:  payload.Source,
			Version: payload.Version,
			Error:   payload.Error,
		})

		slog.Debug(LogMsgEventBroadcast, "event_type", sseType, "source", payload.Source)
		return nil
	}
}
