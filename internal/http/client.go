// Package http implements the transport layer shared by every Gameflip API
// client. It signs requests, paces them through the shared rate limiter, and
// returns raw responses; classification of the response body happens in the
// caller.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/baonguyenly/gfapi/internal/constants"
	"github.com/baonguyenly/gfapi/pkg/gfapi"
)

// Signer produces Authorization header values. A nil signer sends
// unauthenticated requests, which the Steam inventory transport relies on.
type Signer interface {
	Authorization() (string, error)
}

// Pacer spaces request starts. One pacer is shared across every transport
// owned by a client so that all traffic counts against the same budget.
type Pacer interface {
	Wait(ctx context.Context) error
}

// Request represents an HTTP request. Path may be an absolute URL, in which
// case it is used verbatim; pagination cursors arrive as absolute URLs.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Headers map[string]string
	Body    interface{}
}

// Response represents an HTTP response.
type Response struct {
	StatusCode int
	Status     string
	Headers    http.Header
	Body       []byte
}

// Client is an HTTP client for the Gameflip API.
type Client struct {
	baseURL    string
	signer     Signer
	pacer      Pacer
	httpClient *retryablehttp.Client
	logger     gfapi.Logger
	debug      bool
	userAgent  string
}

// Option is a functional option for configuring the client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger gfapi.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithPacer sets the rate limiter applied before each request start.
func WithPacer(pacer Pacer) Option {
	return func(c *Client) {
		c.pacer = pacer
	}
}

// WithRetryConfig enables transport-level retries. Retries are off unless a
// caller opts in through this option.
func WithRetryConfig(maxRetries int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = maxRetries
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithTimeout bounds a single request attempt.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// NewClient creates a new HTTP client. Failures are surfaced on the first
// attempt; RetryMax stays zero until WithRetryConfig raises it.
func NewClient(baseURL string, signer Signer, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	// Hand back the final response instead of a synthetic "giving up" error;
	// the response normalizer classifies non-success statuses itself.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		signer:     signer,
		httpClient: retryClient,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do executes an HTTP request. The response is returned for any status code;
// errors indicate failures below the HTTP layer.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	if c.pacer != nil {
		err := c.pacer.Wait(ctx)
		if err != nil {
			return nil, fmt.Errorf("pacing %s %s: %w", req.Method, req.Path, err)
		}
	}

	fullURL, err := c.buildURL(req)
	if err != nil {
		return nil, err
	}

	var bodyReader io.Reader

	if req.Body != nil {
		bodyBytes, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}

		bodyReader = bytes.NewReader(bodyBytes)
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	err = c.setHeaders(httpReq, req)
	if err != nil {
		return nil, err
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &gfapi.TransportError{Op: req.Method, URL: fullURL, Err: err}
	}
	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &gfapi.TransportError{Op: req.Method, URL: fullURL, Err: err}
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
			"status": httpResp.StatusCode,
			"bytes":  len(respBody),
		})
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Status:     httpResp.Status,
		Headers:    httpResp.Header,
		Body:       respBody,
	}, nil
}

func (c *Client) buildURL(req *Request) (string, error) {
	raw := req.Path
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = c.baseURL + req.Path
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parsing URL %q: %w", raw, err)
	}

	if len(req.Query) > 0 {
		values := parsed.Query()
		for key, list := range req.Query {
			for _, value := range list {
				values.Add(key, value)
			}
		}

		parsed.RawQuery = values.Encode()
	}

	return parsed.String(), nil
}

func (c *Client) setHeaders(httpReq *retryablehttp.Request, req *Request) error {
	httpReq.Header.Set("Accept", constants.ContentTypeJSON)

	if req.Body != nil {
		contentType := constants.ContentTypeJSON
		if req.Method == http.MethodPatch {
			contentType = constants.ContentTypeJSONPatch
		}

		httpReq.Header.Set("Content-Type", contentType)
	}

	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	if c.signer != nil {
		authorization, err := c.signer.Authorization()
		if err != nil {
			return fmt.Errorf("signing request: %w", err)
		}

		httpReq.Header.Set("Authorization", authorization)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	return nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Patch performs a PATCH request. Bodies are sent as JSON-Patch documents.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}
