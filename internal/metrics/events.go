package metrics

import (
	"context"

	"github.com/osse101/Stashkeeper_Go/internal/domain"
	"github.com/osse101/Stashkeeper_Go/internal/event"
	"github.com/osse101/Stashkeeper_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all state events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, t := range []event.Type{event.StateChanged, event.StateReloaded, event.StateReloadFailed} {
		bus.Subscribe(t, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.StateChanged:
		if p, err := event.DecodePayload[domain.StateChangedPayload](evt.Payload); err == nil {
			StateVersion.Set(float64(p.Version))
		}
	case event.StateReloaded, event.StateReloadFailed:
		p, err := event.DecodePayload[domain.StateReloadedPayload](evt.Payload)
		if err != nil {
			EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
			return nil
		}
		outcome := OutcomeSuccess
		if evt.Type == event.StateReloadFailed {
			outcome = OutcomeFailed
		}
		StateReloads.WithLabelValues(p.Source, outcome).Inc()
		StateVersion.Set(float64(p.Version))
	}

	logger.FromContext(ctx).Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
