package command

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/Stashkeeper_Go/internal/domain"
)

// payloadError marks a payload that could not be decoded or failed validation
type payloadError struct {
	err    error
	fields map[string]string
}

func (e *payloadError) Error() string {
	return fmt.Sprintf("invalid payload: %v", e.err)
}

func (e *payloadError) Unwrap() error {
	return e.err
}

// codes is checked in order. Permission and user errors come first because
// they may wrap a validation message.
var codes = []struct {
	err  error
	code string
}{
	{domain.ErrUnknownUser, CodeUnknownUser},
	{domain.ErrPermissionDenied, CodePermissionDenied},
	{domain.ErrRemoteFailure, CodeRemoteFailure},
	{domain.ErrLoadFailed, CodeLoadFailed},
	{domain.ErrInvalidIndex, CodeInvalidIndex},
	{domain.ErrConfirmationRequired, CodeConfirmationRequired},
	{domain.ErrInsufficientFunds, CodeInsufficientFunds},
	{domain.ErrEmptyMagazine, CodeEmptyMagazine},
	{domain.ErrUnknownCapacity, CodeUnknownCapacity},
	{domain.ErrNoStockAvailable, CodeNoStockAvailable},
	{domain.ErrValidation, CodeValidation},
	{domain.ErrNotFound, CodeNotFound},
}

// ToError converts a service error into the client-facing error body.
// Domain messages are user facing. Anything unclassified is hidden.
func ToError(err error) *Error {
	var pe *payloadError
	if errors.As(err, &pe) {
		return &Error{Code: CodeInvalidPayload, Message: MsgInvalidPayload, Fields: pe.fields}
	}
	for _, c := range codes {
		if errors.Is(err, c.err) {
			msg := err.Error()
			if c.code == CodeRemoteFailure || c.code == CodeLoadFailed {
				msg = c.err.Error()
			}
			return &Error{Code: c.code, Message: msg}
		}
	}
	return &Error{Code: CodeInternal, Message: MsgInternal}
}

// fieldErrors names each failing payload field by its JSON name
func fieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make(map[string]string, len(verrs))
	for _, e := range verrs {
		field := e.Field()
		switch e.Tag() {
		case "required":
			out[field] = "This field is required"
		case "max":
			out[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			out[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "nefield":
			out[field] = "Must differ from " + e.Param()
		default:
			out[field] = "Invalid value"
		}
	}
	return out
}
