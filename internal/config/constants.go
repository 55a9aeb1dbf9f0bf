package config

import "time"

// Store modes
const (
	StoreModeOffline   = "offline"
	StoreModeConnected = "connected"
)

// Defaults
const (
	DefaultPort          = 8080
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "text"
	DefaultLogDir        = "logs"
	DefaultEnvironment   = "dev"
	DefaultVersion       = "dev"
	DefaultDBName        = "stashkeeper"
	DefaultDBMaxConns    = 10
	DefaultMediaDir      = "media"
	DefaultMediaBaseURL  = "/media"
	DefaultMaxImageBytes = 2 << 20
	DefaultViewCacheSize = 256
	DefaultViewCacheTTL  = 5 * time.Minute
	DefaultWorkerCount   = 2
)
