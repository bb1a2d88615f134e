package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInvalidBaseURL indicates the configured API URL cannot be used
	ErrInvalidBaseURL = errors.New("invalid API base URL")

	// ErrInvalidTaskID indicates a request for a non-positive task ID
	ErrInvalidTaskID = errors.New("invalid task ID")

	// ErrMalformedResponse indicates a 2xx response whose body is not the expected JSON
	ErrMalformedResponse = errors.New("malformed API response")
)

// maxErrorBody caps how much of an error response is kept for logs and messages
const maxErrorBody = 512

// Error is a non-2xx response from the task API
type Error struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
	RequestID  string
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode))
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// IsNotFound reports whether err is a 404 from the task API
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// StatusCode returns the HTTP status carried by err, or 0 for transport errors
func StatusCode(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
