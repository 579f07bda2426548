package gfapi

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError represents a failure signaled by the Gameflip API, either through
// the structured error object in a response envelope or through a bare
// non-success HTTP status.
type APIError struct {
	StatusCode    int    `json:"status_code"    yaml:"status_code"`
	StatusMessage string `json:"status_message" yaml:"status_message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("gameflip API error: %s (status: %d)", e.StatusMessage, e.StatusCode)
}

// NewAPIError builds an APIError from a response, preferring the structured
// error fields over the raw HTTP status when both are present. The server's
// structured error is more specific than the transport status line.
func NewAPIError(code int, message string, httpStatus int, httpStatusText string) *APIError {
	apiErr := &APIError{
		StatusCode:    httpStatus,
		StatusMessage: httpStatusText,
	}

	if code != 0 {
		apiErr.StatusCode = code
	}

	if message != "" {
		apiErr.StatusMessage = message
	}

	return apiErr
}

// TransportError represents a network-level failure below the HTTP layer
// (DNS, connection refused, timeout). It is never retried by the client.
type TransportError struct {
	Op  string
	URL string
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("gameflip transport error: %s %s: %v", e.Op, e.URL, e.Err)
}

// Unwrap returns the underlying network error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Static errors that can be wrapped with context.
var (
	// ErrNoMoreItems is the terminal pagination result. Like io.EOF it marks
	// a successful end of traversal, not a failure.
	ErrNoMoreItems = errors.New("no more items")

	ErrConfigRequired         = errors.New("config is required")
	ErrAPIKeyRequired         = errors.New("API key is required")
	ErrAPISecretRequired      = errors.New("API secret is required")
	ErrMalformedSecret        = errors.New("API secret is not valid base32")
	ErrInvalidTOTPAlgorithm   = errors.New("invalid TOTP algorithm")
	ErrInvalidTOTPDigits      = errors.New("invalid TOTP digit count")
	ErrInventoryOwnerRequired = errors.New("inventory owner steam ID is required")
)

// IsNotFound checks if the error is a not found API error.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsUnauthorized checks if the error is an authentication failure.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

// IsRateLimited checks if the error is a server-side throttling response.
func IsRateLimited(err error) bool {
	return hasStatus(err, http.StatusTooManyRequests)
}

// IsTransport checks if the error originated below the HTTP layer.
func IsTransport(err error) bool {
	transportErr := &TransportError{}

	return errors.As(err, &transportErr)
}

func hasStatus(err error, status int) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == status
	}

	return false
}
