package postgres

import "time"

// Listener tuning
const (
	// ListenerReconnectDelay is the pause before re-acquiring a connection after a LISTEN failure
	ListenerReconnectDelay = 2 * time.Second
)

// Error Messages
const (
	ErrMsgRowNotFound = "row not found"
)

// Log Messages
const (
	LogMsgListenerStarted      = "Listening for store changes"
	LogMsgListenerStopped      = "Store change listener stopped"
	LogMsgListenerFailed       = "Store change listener failed, reconnecting"
	LogMsgNotificationReceived = "Store change notification"
	LogMsgSeedSkipped          = "Store already holds data, seed skipped"
	LogMsgSeeded               = "Seeded store"
)
