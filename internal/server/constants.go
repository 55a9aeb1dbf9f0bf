package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgUnauthorized    = "Unauthorized"
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Security alert message templates
const (
	SecurityAlertFailedAuth = "Security alert: repeated failed authentication"
	SecurityAlertHighRate   = "Security alert: blocking high request rate"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgServerStopping   = "Server stopping"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgAuthFailed       = "Authentication failed"
)

// HTTP header names
const (
	HeaderAPIKey         = "X-API-Key"
	HeaderAuthorization  = "Authorization"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// Realtime routes
const (
	PathEvents    = "/api/v1/events"
	PathWebSocket = "/ws"
)

// QueryParamAPIKey carries the key on stream routes, where browsers cannot set headers
const QueryParamAPIKey = "api_key"

// Public path prefixes that bypass authentication
var PublicPaths = []string{
	"/swagger/",
	"/healthz",
	"/readyz",
	"/metrics",
	"/version",
}

// StreamPaths accept the API key as a query parameter
var StreamPaths = []string{
	PathEvents,
	PathWebSocket,
}

// MaxRequestBodyBytes leaves room for a base64 weapon image
const MaxRequestBodyBytes = 4 << 20

// Header redaction marker
const (
	RedactedValue = "[REDACTED]"
)

// Per-IP activity tracking
const (
	DetectorWindow           = 5 * time.Minute
	DetectorMaxTrackedIPs    = 4096
	RequestLimitPerWindow    = 1000
	FailedAuthAlertThreshold = 5
)
