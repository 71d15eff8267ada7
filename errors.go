package agentmail

import (
	"errors"
	"fmt"

	"github.com/agent-mail/client-go/internal/api"
)

// Code identifies a class of Agent Mail failure. Every error returned by
// this package carries exactly one of these codes.
type Code string

const (
	// CodeNotConfigured means required configuration is missing. Raised
	// before any network call is attempted, never retried.
	CodeNotConfigured Code = "NOT_CONFIGURED"

	// CodeNotFound maps a server 404. Not retried.
	CodeNotFound Code = "NOT_FOUND"

	// CodeConflict maps a server 409. Not retried.
	CodeConflict Code = "CONFLICT"

	// CodeInvalidArgument maps any other server 4xx. Not retried.
	CodeInvalidArgument Code = "INVALID_ARGUMENT"

	// CodeUnavailable maps server 5xx responses and connection failures.
	// Retried up to the configured budget.
	CodeUnavailable Code = "UNAVAILABLE"

	// CodeTimeout means an attempt exceeded its deadline. Retried.
	CodeTimeout Code = "TIMEOUT"

	// CodeInternalError covers anything unanticipated, including a
	// logically-empty success response where content was required.
	CodeInternalError Code = "INTERNAL_ERROR"
)

// Error is the one error type surfaced by this package. Data carries
// whatever structured detail accompanied the failure (server error body,
// attempt counts).
type Error struct {
	Code    Code
	Message string
	Data    map[string]any
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is reports whether target is an *Error with the same code, so callers
// can match classes with errors.Is(err, &Error{Code: CodeNotFound}).
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// CodeOf extracts the normalized code from err, or "" when err is not an
// Agent Mail error.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// notConfigured builds a NOT_CONFIGURED error with a setup hint.
func notConfigured(format string, args ...any) *Error {
	return &Error{
		Code:    CodeNotConfigured,
		Message: fmt.Sprintf(format, args...),
	}
}

// wrapError converts transport errors to the public type. Errors that are
// already public pass through unchanged.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var pub *Error
	if errors.As(err, &pub) {
		return pub
	}

	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return &Error{
			Code:    Code(apiErr.Code),
			Message: apiErr.Message,
			Data:    apiErr.Data,
		}
	}

	return &Error{Code: CodeInternalError, Message: err.Error()}
}
