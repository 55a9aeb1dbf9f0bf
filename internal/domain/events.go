package domain

// Event type constants used for bus subscriptions, SSE relays and metrics.
//
// Event types follow the pattern: <entity>.<action> (e.g., "state.changed")
const (
	// EventTypeStateChanged is published after a write is committed
	EventTypeStateChanged = "state.changed"

	// EventTypeStateReloaded is published after the whole state was rebuilt from the store
	EventTypeStateReloaded = "state.reloaded"

	// EventTypeStateReloadFailed is published when a reload failed and the last good state was kept
	EventTypeStateReloadFailed = "state.reload_failed"
)
