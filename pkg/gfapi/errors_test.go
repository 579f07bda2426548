package gfapi_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/baonguyenly/gfapi/pkg/gfapi"
)

func TestNewAPIError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		code        int
		message     string
		httpStatus  int
		httpText    string
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "structured error wins",
			code:        422,
			message:     "listing is on trade hold",
			httpStatus:  400,
			httpText:    "Bad Request",
			wantStatus:  422,
			wantMessage: "listing is on trade hold",
		},
		{
			name:        "falls back to the HTTP status",
			code:        0,
			message:     "",
			httpStatus:  502,
			httpText:    "Bad Gateway",
			wantStatus:  502,
			wantMessage: "Bad Gateway",
		},
		{
			name:        "partial structured error",
			code:        0,
			message:     "rate limited",
			httpStatus:  429,
			httpText:    "Too Many Requests",
			wantStatus:  429,
			wantMessage: "rate limited",
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			err := gfapi.NewAPIError(testCase.code, testCase.message, testCase.httpStatus, testCase.httpText)
			assert.Equal(t, testCase.wantStatus, err.StatusCode)
			assert.Equal(t, testCase.wantMessage, err.StatusMessage)
		})
	}
}

func TestErrorPredicates(t *testing.T) {
	t.Parallel()

	notFound := gfapi.NewAPIError(0, "", http.StatusNotFound, "Not Found")
	wrapped := fmt.Errorf("getting listing: %w", notFound)

	assert.True(t, gfapi.IsNotFound(wrapped))
	assert.False(t, gfapi.IsUnauthorized(wrapped))

	unauthorized := gfapi.NewAPIError(401, "bad code", http.StatusUnauthorized, "Unauthorized")
	assert.True(t, gfapi.IsUnauthorized(unauthorized))

	limited := gfapi.NewAPIError(0, "", http.StatusTooManyRequests, "Too Many Requests")
	assert.True(t, gfapi.IsRateLimited(limited))

	transport := &gfapi.TransportError{Op: "GET", URL: "https://example.com", Err: errors.New("connection refused")}
	assert.True(t, gfapi.IsTransport(fmt.Errorf("searching listings: %w", transport)))
	assert.False(t, gfapi.IsTransport(notFound))
	assert.False(t, gfapi.IsNotFound(transport))
}

func TestTransportError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := &gfapi.TransportError{Op: "GET", URL: "https://example.com/listing", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "GET")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestErrNoMoreItems(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("searching listings: %w", gfapi.ErrNoMoreItems)
	assert.True(t, errors.Is(wrapped, gfapi.ErrNoMoreItems))
}
