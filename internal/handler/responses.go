package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/osse101/Stashkeeper_Go/internal/domain"
	"github.com/osse101/Stashkeeper_Go/internal/logger"
	"github.com/osse101/Stashkeeper_Go/internal/state"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Version uint64      `json:"version"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent
		slog.Error(LogMsgEncodeFailed, "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteBufferFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondResult writes a write-operation result. A stale reference is not an error:
// it comes back as 200 with applied=false.
func respondResult(w http.ResponseWriter, status int, res *state.Result) {
	if res == nil {
		respondError(w, http.StatusInternalServerError, ErrMsgGenericServerError)
		return
	}
	resp := DataResponse{Version: res.Version, Data: res}
	if !res.Applied {
		status = http.StatusOK
		resp.Message = MsgNoChange
	}
	respondJSON(w, status, resp)
}

// respondServiceError logs a service error at the level its kind deserves and writes the mapped response
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	log := logger.FromContext(r.Context())
	status, msg := mapServiceErrorToUserMessage(err)

	switch {
	case status >= http.StatusInternalServerError:
		log.Error(fmt.Sprintf(LogMsgServiceErrorFmt, opName), "error", err, "status", status)
	case status == http.StatusNotFound:
		log.Debug(fmt.Sprintf(LogMsgServiceErrorFmt, opName), "error", err, "status", status)
	default:
		log.Warn(fmt.Sprintf(LogMsgServiceErrorFmt, opName), "error", err, "status", status)
	}

	respondError(w, status, msg)
}

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and messages
// users can act upon. Input and precondition errors carry their own user-facing text.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}

	switch {
	case errors.Is(err, domain.ErrUnknownUser):
		return http.StatusUnauthorized, ErrMsgUnknownUserError
	case errors.Is(err, domain.ErrPermissionDenied):
		return http.StatusForbidden, ErrMsgPermissionDeniedError
	case errors.Is(err, domain.ErrRemoteFailure):
		return http.StatusBadGateway, ErrMsgStoreUnavailableError
	case errors.Is(err, domain.ErrLoadFailed):
		return http.StatusServiceUnavailable, ErrMsgReloadFailedError
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidIndex),
		errors.Is(err, domain.ErrConfirmationRequired):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrInsufficientFunds),
		errors.Is(err, domain.ErrEmptyMagazine),
		errors.Is(err, domain.ErrUnknownCapacity),
		errors.Is(err, domain.ErrNoStockAvailable):
		return http.StatusConflict, err.Error()
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, ErrMsgNotFoundError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
