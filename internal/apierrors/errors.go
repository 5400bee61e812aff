// Package apierrors provides shared error types for the mail.tm client.
package apierrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrInvalidResponse is matched by every failed exchange with the API:
	// a status outside 200/201/204, a transport failure, or an undecodable body.
	ErrInvalidResponse = errors.New("invalid response")

	// ErrMissingToken is returned when a protected endpoint is called without
	// a bearer token.
	ErrMissingToken = errors.New("bearer token is required")

	// ErrClientClosed is returned when operations are attempted on a closed client.
	ErrClientClosed = errors.New("client has been closed")

	// ErrNoDomains is returned when an address must be generated but the
	// server lists no domains.
	ErrNoDomains = errors.New("no domains available")
)

// APIError represents a non-success HTTP status from the mail.tm API.
// The response body is never parsed.
type APIError struct {
	StatusCode int
	Method     string
	URL        string
	RequestID  string
}

func (e *APIError) Error() string {
	if e.RequestID != "" {
		return fmt.Sprintf("invalid response: %s %s: status %d (request_id: %s)", e.Method, e.URL, e.StatusCode, e.RequestID)
	}
	if e.Method != "" {
		return fmt.Sprintf("invalid response: %s %s: status %d", e.Method, e.URL, e.StatusCode)
	}
	return fmt.Sprintf("invalid response: status %d", e.StatusCode)
}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	return target == ErrInvalidResponse
}

// NetworkError represents a network-level failure.
type NetworkError struct {
	Err    error
	Method string
	URL    string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Is reports network failures as invalid responses so callers relying on
// the single failure contract keep working.
func (e *NetworkError) Is(target error) bool {
	return target == ErrInvalidResponse
}

// DecodeError indicates a success status whose body could not be decoded
// into the expected record.
type DecodeError struct {
	Err error
	URL string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response from %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *DecodeError) Is(target error) bool {
	return target == ErrInvalidResponse
}

// StatusCode extracts the HTTP status from err, or 0 when err does not
// carry one.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
