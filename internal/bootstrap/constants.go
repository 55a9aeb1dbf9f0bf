package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files (read/write for owner, read for group/others)
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// ServiceName tags every log line
	ServiceName = "stashkeeper"

	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is how many older log files survive startup. The new file makes ten.
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStarting            = "Starting Stashkeeper"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Event System Configuration
// =============================================================================

const (
	// EventDefaultMaxRetries is the default number of retry attempts for failed event publishing
	EventDefaultMaxRetries = 5

	// EventDefaultRetryDelay is the default base delay between retry attempts (exponential backoff)
	EventDefaultRetryDelay = 2 * time.Second

	// EventDeadLetterFile is created under the log directory
	EventDeadLetterFile = "event_deadletter.jsonl"
)

// Log messages for event system initialization
const (
	LogMsgEventSystemInitialized         = "Event system initialized"
	LogMsgFailedCreateDeadLetterDir      = "failed to create dead-letter directory"
	LogMsgFailedCreateResilientPublisher = "failed to create resilient publisher"
)

// =============================================================================
// Store Configuration
// =============================================================================

const (
	// DBMaxConnIdleTime and DBMaxConnLifetime bound pooled connections
	DBMaxConnIdleTime = 5 * time.Minute
	DBMaxConnLifetime = time.Hour

	// ReloadSource* label where a reload request came from
	ReloadSourceStartup  = "startup"
	ReloadSourceNotify   = "notify"
	ReloadSourceSchedule = "schedule"

	// ReloadQueueSize bounds pending jobs on the worker pool
	ReloadQueueSize = 16
)

const (
	LogMsgOfflineMode        = "Running in offline mode. Changes live in memory only."
	LogMsgConnectedMode      = "Running in connected mode"
	LogMsgSeedingEmptyStore  = "Store is empty, seeding fixtures"
	LogMsgStoreSeeded        = "Store seeded"
	LogMsgChangeNotification = "Change notification received"
	LogMsgResyncScheduled    = "Periodic resync scheduled"

	ErrMsgFailedConnectDB     = "failed to connect to database"
	ErrMsgFailedMigrate       = "failed to run migrations"
	ErrMsgFailedLoadFixtures  = "failed to load seed fixtures"
	ErrMsgFailedCheckStore    = "failed to read store"
	ErrMsgFailedSeedStore     = "failed to seed store"
	ErrMsgFailedInitialReload = "failed to load initial state"
)

// =============================================================================
// Event Handler Configuration
// =============================================================================

const (
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgRealtimeRelaysRegistered   = "Realtime relays registered"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
)
