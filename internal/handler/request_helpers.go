package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/Stashkeeper_Go/internal/logger"
)

// DecodeAndValidateRequest decodes a JSON request body, validates it, and returns appropriate errors.
//
// If this function returns an error, the HTTP response has already been written and the handler should return.
//
// Example usage:
//
//	var req CreateItemRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Create item"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(fmt.Sprintf(LogMsgDecodeFailedFmt, actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf(LogMsgRequestDecodedFmt, actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// actorID returns the acting user. An empty id is an anonymous viewer.
func actorID(r *http.Request) string {
	return r.Header.Get(HeaderUserID)
}

// GetIntPathParam parses an integer URL parameter.
// If ok is false, the HTTP response has already been written and the handler should return.
func GetIntPathParam(r *http.Request, w http.ResponseWriter, paramName string) (int, bool) {
	raw := chi.URLParam(r, paramName)
	value, err := strconv.Atoi(raw)
	if err != nil {
		logger.FromContext(r.Context()).Warn("Invalid path parameter", "param", paramName, "value", raw)
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidPathParamFmt, paramName))
		return 0, false
	}
	return value, true
}

// GetConfirmParam reads the optional confirm query flag. Destructive
// operations are refused by the service unless it is true.
// If ok is false, the HTTP response has already been written and the handler should return.
func GetConfirmParam(r *http.Request, w http.ResponseWriter) (confirm bool, ok bool) {
	raw := GetOptionalQueryParam(r, QueryParamConfirm, "false")
	confirm, err := strconv.ParseBool(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidConfirm)
		return false, false
	}
	return confirm, true
}

// GetOptionalQueryParam retrieves an optional query parameter from the request,
// falling back to defaultValue when it is missing.
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}
