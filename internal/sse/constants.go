package sse

import "time"

// Buffer sizes
const (
	BroadcastBufferSize = 100
	ClientEventBuffer   = 50
)

// Stream timing
const (
	KeepaliveInterval = 30 * time.Second
	WriteTimeout      = 10 * time.Second
)

// Query parameters accepted by Handler, both comma separated
const (
	QueryParamTypes       = "types"
	QueryParamInventories = "inventories"
)

// Event types for SSE
const (
	// EventTypeStateChanged is sent after a committed write so clients refetch
	EventTypeStateChanged = "state.changed"

	// EventTypeStateReloaded is sent after the whole state was rebuilt from the store
	EventTypeStateReloaded = "state.reloaded"

	// EventTypeStateReloadFailed is sent when a reload failed and the previous state is still served
	EventTypeStateReloadFailed = "state.reload_failed"

	// EventTypeConnected is the first event on every stream
	EventTypeConnected = "connected"

	// EventTypeKeepalive is the keepalive ping event type
	EventTypeKeepalive = "keepalive"
)

// Log messages
const (
	LogMsgClientConnected    = "SSE client connected"
	LogMsgClientDisconnected = "SSE client disconnected"
	LogMsgEventBroadcast     = "Broadcasting SSE event"
	LogMsgEventDropped       = "SSE broadcast buffer full, event dropped"
	LogMsgWriteError         = "Failed to write SSE event"
	LogMsgSubscribed         = "SSE subscriber registered for event types"
)
