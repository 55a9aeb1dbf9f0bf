package bootstrap

import (
	"log/slog"

	"github.com/osse101/Stashkeeper_Go/internal/command"
	"github.com/osse101/Stashkeeper_Go/internal/event"
	"github.com/osse101/Stashkeeper_Go/internal/metrics"
	"github.com/osse101/Stashkeeper_Go/internal/sse"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus event.Bus
	SSEHub   *sse.Hub
	WSHub    *command.Hub
}

// RegisterEventHandlers subscribes the metrics collector and the realtime relays
// (SSE and WebSocket) to state events.
func RegisterEventHandlers(deps EventHandlerDependencies) {
	metrics.NewEventMetricsCollector().Register(deps.EventBus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	sse.NewSubscriber(deps.SSEHub, deps.EventBus).Subscribe()
	command.NewSubscriber(deps.WSHub, deps.EventBus).Subscribe()
	slog.Info(LogMsgRealtimeRelaysRegistered)
}
