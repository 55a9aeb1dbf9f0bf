package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingQueryParam     = "Missing %s query parameter"
	ErrMsgInvalidPathParamFmt   = "Invalid %s"
	ErrMsgInvalidConfirm        = "confirm must be true or false"
	ErrMsgInvalidImage          = "Invalid image"
	ErrMsgSameInventory         = "Source and target inventory must differ"
)

// User-facing messages for service errors
const (
	ErrMsgGenericServerError    = "Something went wrong"
	ErrMsgUnknownUserError      = "Unknown user. Pick a user first."
	ErrMsgPermissionDeniedError = "You are not allowed to do that"
	ErrMsgNotFoundError         = "Not found"
	ErrMsgStoreUnavailableError = "The shared store did not accept the change. Nothing was saved."
	ErrMsgReloadFailedError     = "Could not reload from the shared store. Still serving the last good state."
)

// Success messages
const (
	MsgNoChange = "Nothing changed. The target may have been removed by someone else."
	MsgReloaded = "State reloaded"
)

// Log messages
const (
	LogMsgDecodeFailedFmt   = "Failed to decode %s request"
	LogMsgRequestDecodedFmt = "%s request decoded"
	LogMsgServiceErrorFmt   = "%s failed"
	LogMsgReadinessFailed   = "Readiness check failed"
	LogMsgEncodeFailed      = "Failed to encode JSON response"
	LogMsgWriteBufferFailed = "Failed to write response buffer"
)

// HeaderUserID names the acting user. A missing header is an anonymous viewer.
const HeaderUserID = "X-User-ID"

// Query parameters
const (
	QueryParamConfirm = "confirm"
)
