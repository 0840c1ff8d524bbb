package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a boxplay error code.
type ErrorCode string

const (
	ErrInvalidConfig  ErrorCode = "INVALID_CONFIG"
	ErrInvalidContent ErrorCode = "INVALID_CONTENT"
	ErrNotFound       ErrorCode = "NOT_FOUND"
	ErrCollaborator   ErrorCode = "COLLABORATOR"
	ErrInternal       ErrorCode = "INTERNAL"
)

// BoxplayError represents a structured error with code and details.
type BoxplayError struct {
	Code    ErrorCode
	Message string
	Details map[string]any
	cause   error
}

// Error implements the error interface.
func (e *BoxplayError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *BoxplayError) Unwrap() error {
	return e.cause
}

// NewInvalidConfig creates an error for a configuration file that cannot be used.
func NewInvalidConfig(path string, err error) *BoxplayError {
	msg := fmt.Sprintf("invalid config %s", path)
	if err != nil {
		msg = fmt.Sprintf("%s: %v", msg, err)
	}
	return &BoxplayError{
		Code:    ErrInvalidConfig,
		Message: msg,
		Details: map[string]any{"path": path},
		cause:   err,
	}
}

// NewInvalidContent creates an error for content that cannot build an activity.
func NewInvalidContent(activity, msg string) *BoxplayError {
	return &BoxplayError{
		Code:    ErrInvalidContent,
		Message: fmt.Sprintf("%s: %s", activity, msg),
		Details: map[string]any{"activity": activity},
	}
}

// NewNotFound creates an error for an unknown activity or puzzle.
func NewNotFound(identifier string) *BoxplayError {
	return &BoxplayError{
		Code:    ErrNotFound,
		Message: fmt.Sprintf("not found: %s", identifier),
		Details: map[string]any{"identifier": identifier},
	}
}

// NewCollaborator wraps a failure reported by the media player, progress sink
// or render surface.
func NewCollaborator(name string, err error) *BoxplayError {
	msg := name + " failed"
	if err != nil {
		msg = fmt.Sprintf("%s: %v", msg, err)
	}
	return &BoxplayError{
		Code:    ErrCollaborator,
		Message: msg,
		Details: map[string]any{"collaborator": name},
		cause:   err,
	}
}

// NewInternal creates an error for unexpected internal failures.
func NewInternal(err error) *BoxplayError {
	details := map[string]any{}
	if err != nil {
		details["internal_error"] = err.Error()
	}
	return &BoxplayError{
		Code:    ErrInternal,
		Message: "an internal error occurred",
		Details: details,
		cause:   err,
	}
}

// Is checks if an error (or anything it wraps) is a BoxplayError with the given code.
func Is(err error, code ErrorCode) bool {
	var bErr *BoxplayError
	if stderrors.As(err, &bErr) {
		return bErr.Code == code
	}
	return false
}
