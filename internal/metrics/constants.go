package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Namespace prefixes every collector
const Namespace = "stashkeeper"

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// State metric names
const (
	MetricNameMutations          = "mutations_total"
	MetricNameTransfers          = "transfers_total"
	MetricNameItemsMoved         = "transfer_items_moved_total"
	MetricNamePurchases          = "purchases_total"
	MetricNameMoneySpent         = "money_spent_total"
	MetricNameShots              = "shots_total"
	MetricNameReloads            = "magazine_reloads_total"
	MetricNameStateReloads       = "state_reloads_total"
	MetricNameRemoteFailures     = "remote_failures_total"
	MetricNameRemoteWriteSeconds = "remote_write_duration_seconds"
	MetricNameStateVersion       = "state_version"
	MetricNameRealtimeClients    = "realtime_clients"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// State metric help text
const (
	HelpTextMutations          = "State operations by name and outcome"
	HelpTextTransfers          = "Completed item transfers"
	HelpTextItemsMoved         = "Units moved by transfers"
	HelpTextPurchases          = "Completed weapon purchases"
	HelpTextMoneySpent         = "Money spent in the shop"
	HelpTextShots              = "Shots fired"
	HelpTextReloads            = "Magazine reloads"
	HelpTextStateReloads       = "Full state reloads by source and outcome"
	HelpTextRemoteFailures     = "Failed remote store writes by operation"
	HelpTextRemoteWriteSeconds = "Latency of remote store write transactions"
	HelpTextStateVersion       = "Version of the state currently served"
	HelpTextRealtimeClients    = "Connected realtime clients by transport"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelOp        = "op"
	LabelOutcome   = "outcome"
	LabelSource    = "source"
	LabelTransport = "transport"
)

// Outcome label values
const (
	OutcomeApplied  = "applied"
	OutcomeNoOp     = "noop"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
	OutcomeSuccess  = "success"
)

// Transport label values
const (
	TransportSSE       = "sse"
	TransportWebSocket = "websocket"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets spans 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgMetricsRecorded = "Metrics recorded for event"
)
