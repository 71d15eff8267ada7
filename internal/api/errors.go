package api

import "fmt"

// Normalized error codes. These are the only codes a transport error can
// carry; the public package re-exposes them one-to-one.
const (
	CodeNotConfigured   = "NOT_CONFIGURED"
	CodeNotFound        = "NOT_FOUND"
	CodeConflict        = "CONFLICT"
	CodeInvalidArgument = "INVALID_ARGUMENT"
	CodeUnavailable     = "UNAVAILABLE"
	CodeTimeout         = "TIMEOUT"
	CodeInternalError   = "INTERNAL_ERROR"
)

// Error is a normalized Agent Mail failure.
type Error struct {
	Code    string
	Message string
	Data    map[string]any
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}
