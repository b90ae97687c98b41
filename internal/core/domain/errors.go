// internal/core/domain/errors.go
package domain

import "fmt"

// TransportError indicates the upstream backend could not be reached
// at all (connection refused, timeout, DNS). Prior data is retained by
// the caller; the user may retry.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error during %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// BackendError indicates the upstream backend answered with a
// non-success response.
type BackendError struct {
	Op         string
	StatusCode int
	ErrorCode  int
	Body       string
}

func (e *BackendError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("backend error during %s: status %d: %s", e.Op, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("backend error during %s: errorCode %d", e.Op, e.ErrorCode)
}

// ValidationError indicates user input was rejected before any
// mutation occurred (bad file type or size, missing import columns,
// zero valid rows).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidationError builds a ValidationError with a formatted message.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
