package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	nethttp "net/http"

	"github.com/baonguyenly/gfapi/internal/http"
	"github.com/baonguyenly/gfapi/pkg/gfapi"
)

// envelopeError is the structured error object inside a failed envelope.
type envelopeError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// envelope is the primary API response wrapper. NextPage distinguishes
// "absent" from "present but empty", so it stays a pointer.
type envelope struct {
	Status   string          `json:"status"`
	Data     json.RawMessage `json:"data"`
	NextPage *string         `json:"next_page"`
	Error    *envelopeError  `json:"error"`
}

const statusSuccess = "SUCCESS"

// decodeEnvelope parses a response body into an envelope. A body that does
// not parse is treated as an empty envelope, which the caller classifies as a
// failure carrying the HTTP status.
func decodeEnvelope(resp *http.Response) envelope {
	var env envelope

	err := json.Unmarshal(resp.Body, &env)
	if err != nil {
		return envelope{}
	}

	return env
}

// logSuccess emits the normalized payload of a successful call.
func logSuccess(logger gfapi.Logger, what string, data json.RawMessage) {
	if logger == nil {
		return
	}

	logger.Debug("API Success", map[string]interface{}{
		"operation": what,
		"payload":   string(data),
	})
}

// logFailure emits a failure summary just before the error is handed back.
func logFailure(logger gfapi.Logger, what string, apiErr *gfapi.APIError) {
	if logger == nil {
		return
	}

	logger.Debug("API Failure", map[string]interface{}{
		"operation":      what,
		"status_code":    apiErr.StatusCode,
		"status_message": apiErr.StatusMessage,
	})
}

// apiError builds the error for a failed envelope, preferring the structured
// error fields over the HTTP status line.
func apiError(env envelope, resp *http.Response) *gfapi.APIError {
	var code int

	var message string

	if env.Error != nil {
		code = env.Error.Code
		message = env.Error.Message
	}

	return gfapi.NewAPIError(code, message, resp.StatusCode, nethttp.StatusText(resp.StatusCode))
}

// emptyData reports whether the data payload carries nothing.
func emptyData(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)

	switch string(trimmed) {
	case "", "null", "[]", "{}":
		return true
	default:
		return false
	}
}

// decodePage normalizes a list response and advances the query cursor. The
// three outcomes are: items plus a written cursor, gfapi.ErrNoMoreItems when
// the traversal is over, or a *gfapi.APIError. A continuation cursor on an
// otherwise empty page keeps the traversal going.
func decodePage[T any](resp *http.Response, query *gfapi.Query, logger gfapi.Logger, what string) ([]T, error) {
	env := decodeEnvelope(resp)
	if env.Status != statusSuccess {
		apiErr := apiError(env, resp)
		logFailure(logger, what, apiErr)

		return nil, apiErr
	}

	logSuccess(logger, what, env.Data)

	if env.NextPage == nil && emptyData(env.Data) {
		query.SetNextPage("")

		return nil, gfapi.ErrNoMoreItems
	}

	var items []T

	if !emptyData(env.Data) {
		err := json.Unmarshal(env.Data, &items)
		if err != nil {
			return nil, fmt.Errorf("parsing page data: %w", err)
		}
	}

	if env.NextPage != nil {
		query.SetNextPage(*env.NextPage)
	} else {
		query.SetNextPage("")
	}

	return items, nil
}

// decodeObject normalizes a single-object response. An empty success payload
// maps to gfapi.ErrNoMoreItems, the same terminal result a drained list
// produces.
func decodeObject[T any](resp *http.Response, logger gfapi.Logger, what string) (*T, error) {
	env := decodeEnvelope(resp)
	if env.Status != statusSuccess {
		apiErr := apiError(env, resp)
		logFailure(logger, what, apiErr)

		return nil, apiErr
	}

	logSuccess(logger, what, env.Data)

	if emptyData(env.Data) {
		return nil, gfapi.ErrNoMoreItems
	}

	var object T

	err := json.Unmarshal(env.Data, &object)
	if err != nil {
		return nil, fmt.Errorf("parsing response data: %w", err)
	}

	return &object, nil
}

// fetchPage fetches one list page. A cursor URL is used verbatim as the
// request target; an exhausted cursor short-circuits before any network
// traffic.
func fetchPage[T any](ctx context.Context, httpClient *http.Client, logger gfapi.Logger, path string, query *gfapi.Query, what string) ([]T, error) {
	if query == nil {
		query = gfapi.NewQuery()
	}

	if query.Exhausted() {
		return nil, gfapi.ErrNoMoreItems
	}

	var (
		resp *http.Response
		err  error
	)

	if next, ok := query.NextPage(); ok {
		resp, err = httpClient.Get(ctx, next, nil)
	} else {
		resp, err = httpClient.Get(ctx, path, query.ToValues())
	}

	if err != nil {
		return nil, fmt.Errorf("%s: %w", what, err)
	}

	items, err := decodePage[T](resp, query, logger, what)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", what, err)
	}

	return items, nil
}

func fetchObject[T any](ctx context.Context, httpClient *http.Client, logger gfapi.Logger, path, what string) (*T, error) {
	resp, err := httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", what, err)
	}

	object, err := decodeObject[T](resp, logger, what)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", what, err)
	}

	return object, nil
}

func postObject[T any](ctx context.Context, httpClient *http.Client, logger gfapi.Logger, path string, body interface{}, what string) (*T, error) {
	resp, err := httpClient.Post(ctx, path, body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", what, err)
	}

	object, err := decodeObject[T](resp, logger, what)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", what, err)
	}

	return object, nil
}

func putObject[T any](ctx context.Context, httpClient *http.Client, logger gfapi.Logger, path string, body interface{}, what string) (*T, error) {
	resp, err := httpClient.Put(ctx, path, body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", what, err)
	}

	object, err := decodeObject[T](resp, logger, what)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", what, err)
	}

	return object, nil
}

func patchObject[T any](ctx context.Context, httpClient *http.Client, logger gfapi.Logger, path string, body interface{}, what string) (*T, error) {
	resp, err := httpClient.Patch(ctx, path, body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", what, err)
	}

	object, err := decodeObject[T](resp, logger, what)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", what, err)
	}

	return object, nil
}
