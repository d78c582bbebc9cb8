// Package apperror holds errors that carry the HTTP status they should be answered with.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// StatusCodeError is returned by use cases that want the transport to answer with a specific status.
// The message is for logs only; it is never written to the response body.
type StatusCodeError struct {
	StatusCode int
	Message    string
}

// New creates a StatusCodeError.
func New(statusCode int, message string) *StatusCodeError {
	return &StatusCodeError{StatusCode: statusCode, Message: message}
}

// BadRequest creates a StatusCodeError with status 400.
func BadRequest(message string) *StatusCodeError {
	return New(http.StatusBadRequest, message)
}

func (e *StatusCodeError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Message)
}

// StatusCode returns the status carried by err, if any error in its chain is a StatusCodeError.
func StatusCode(err error) (int, bool) {
	var statusErr *StatusCodeError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode, true
	}
	return 0, false
}
