package worker

import "time"

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// Log messages for worker pool operations
const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgQueueFull       = "Worker queue full, job dropped"
)

// ============================================================================
// Log Messages - Reload Jobs
// ============================================================================

// Log messages for reload job operations
const (
	LogMsgReloadCoalesced = "Reload already pending, request coalesced"
	LogMsgReloadQueued    = "Reload queued"
)

// ============================================================================
// Job Configuration
// ============================================================================

// DefaultJobTimeout bounds a single job run
const DefaultJobTimeout = 30 * time.Second

// DefaultQueueSize is the job queue capacity used by the server
const DefaultQueueSize = 64

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
