package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Input errors
	ErrMsgValidation           = "validation failed"
	ErrMsgInvalidIndex         = "invalid index"
	ErrMsgConfirmationRequired = "confirmation required"

	// Lookup errors
	ErrMsgNotFound    = "not found"
	ErrMsgNoOp        = "operation has no effect"
	ErrMsgUnknownUser = "unknown user"

	// Access errors
	ErrMsgPermissionDenied = "permission denied"

	// Shop and weapon errors
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgEmptyMagazine     = "magazine is empty"
	ErrMsgUnknownCapacity   = "magazine capacity unknown"
	ErrMsgNoStockAvailable  = "no stock available"

	// Store errors
	ErrMsgRemoteFailure = "remote store failure"
	ErrMsgLoadFailed    = "state load failed"
	ErrMsgTxClosed      = "tx is closed"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrValidation           = errors.New(ErrMsgValidation)
	ErrInvalidIndex         = errors.New(ErrMsgInvalidIndex)
	ErrConfirmationRequired = errors.New(ErrMsgConfirmationRequired)

	// ErrNotFound marks a stale id reference. The state service turns it into a no-op.
	ErrNotFound    = errors.New(ErrMsgNotFound)
	ErrNoOp        = errors.New(ErrMsgNoOp)
	ErrUnknownUser = errors.New(ErrMsgUnknownUser)

	ErrPermissionDenied = errors.New(ErrMsgPermissionDenied)

	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrEmptyMagazine     = errors.New(ErrMsgEmptyMagazine)
	ErrUnknownCapacity   = errors.New(ErrMsgUnknownCapacity)
	ErrNoStockAvailable  = errors.New(ErrMsgNoStockAvailable)

	ErrRemoteFailure = errors.New(ErrMsgRemoteFailure)
	ErrLoadFailed    = errors.New(ErrMsgLoadFailed)
)
