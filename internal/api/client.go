// Package api implements the HTTP transport for the Agent Mail server.
//
// Every failure leaving this package is an *Error carrying one of the
// normalized codes; raw transport errors never escape.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Default request behaviour, overridable via Config.
const (
	DefaultTimeout    = 5 * time.Second
	DefaultRetries    = 2
	DefaultRetryDelay = 500 * time.Millisecond
)

// Config holds the transport configuration for a Client.
type Config struct {
	// BaseURL is the Agent Mail server base URL. Required.
	BaseURL string

	// Token is the optional bearer token sent as Authorization header.
	Token string

	// Retries is the number of retries after the first attempt.
	// Negative means DefaultRetries; zero disables retries.
	Retries int

	// Timeout bounds each individual attempt.
	Timeout time.Duration

	// RetryDelay is the base backoff delay, doubled after each attempt.
	RetryDelay time.Duration

	// HTTPClient overrides the underlying HTTP client.
	HTTPClient *http.Client
}

// Client issues requests against the Agent Mail server.
type Client struct {
	baseURL    string
	token      string
	retries    int
	timeout    time.Duration
	retryDelay time.Duration
	httpClient *http.Client
}

// NewClient creates a transport client. The base URL must be non-empty;
// callers are expected to have resolved configuration first.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}

	c := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		token:      cfg.Token,
		retries:    cfg.Retries,
		timeout:    cfg.Timeout,
		retryDelay: cfg.RetryDelay,
		httpClient: cfg.HTTPClient,
	}
	if c.retries < 0 {
		c.retries = DefaultRetries
	}
	if c.timeout <= 0 {
		c.timeout = DefaultTimeout
	}
	if c.retryDelay <= 0 {
		c.retryDelay = DefaultRetryDelay
	}
	if c.httpClient == nil {
		c.httpClient = http.DefaultClient
	}
	return c, nil
}

// Do issues one logical request and decodes the JSON response into result
// (when result is non-nil and the response body is non-empty).
//
// Mutating methods carrying a body get a fresh Idempotency-Key header,
// reused across every retry of this call so the server can dedupe writes.
// Retries apply only to retryable failures: 5xx responses, timeouts,
// connection failures, and unexpected transport errors. 4xx responses fail
// immediately.
func (c *Client) Do(ctx context.Context, method, path string, body any, query url.Values, result any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &Error{
				Code:    CodeInternalError,
				Message: fmt.Sprintf("encode request body: %v", err),
			}
		}
		payload = data
	}

	// One key per logical call, shared by all attempts.
	idempotencyKey := ""
	if (method == http.MethodPost || method == http.MethodPut) && payload != nil {
		idempotencyKey = uuid.NewString()
	}

	var lastErr *Error
	for attempt := 0; attempt <= c.retries; attempt++ {
		done, err := c.attempt(ctx, method, target, payload, idempotencyKey, attempt, result)
		if done {
			return err
		}
		lastErr = err.(*Error)

		if attempt < c.retries {
			if err := sleepContext(ctx, c.retryDelay<<attempt); err != nil {
				return lastErr
			}
		}
	}
	return lastErr
}

// attempt performs a single HTTP round-trip. It returns done=true when the
// outcome is final (success or a non-retryable error) and done=false with a
// retryable *Error otherwise.
func (c *Client) attempt(ctx context.Context, method, target string, payload []byte, idempotencyKey string, attempt int, result any) (bool, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(attemptCtx, method, target, bodyReader)
	if err != nil {
		return true, &Error{
			Code:    CodeInternalError,
			Message: fmt.Sprintf("create request: %v", err),
		}
	}

	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, classifyTransportError(err, c.baseURL, c.timeout, attempt)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, &Error{
			Code:    CodeInternalError,
			Message: fmt.Sprintf("read response body: %v", err),
			Data:    map[string]any{"attempt": attempt + 1},
		}
	}

	if resp.StatusCode < 400 {
		if result != nil && len(raw) > 0 {
			if err := json.Unmarshal(raw, result); err != nil {
				return true, &Error{
					Code:    CodeInternalError,
					Message: fmt.Sprintf("decode response: %v", err),
				}
			}
		}
		return true, nil
	}

	if resp.StatusCode < 500 {
		return true, classifyClientError(resp.StatusCode, raw, req.URL.Path)
	}

	return false, &Error{
		Code:    CodeUnavailable,
		Message: fmt.Sprintf("Agent Mail server error: HTTP %d", resp.StatusCode),
		Data:    map[string]any{"status": resp.StatusCode, "attempt": attempt + 1},
	}
}

// classifyClientError maps a 4xx response to its non-retryable code.
func classifyClientError(status int, raw []byte, path string) *Error {
	data := map[string]any{}
	if err := json.Unmarshal(raw, &data); err != nil {
		data = map[string]any{"detail": string(raw)}
	}

	detail := func(fallback string) string {
		if d, ok := data["detail"].(string); ok && d != "" {
			return d
		}
		return fallback
	}

	switch status {
	case http.StatusNotFound:
		return &Error{
			Code:    CodeNotFound,
			Message: fmt.Sprintf("resource not found: %s", path),
			Data:    data,
		}
	case http.StatusConflict:
		return &Error{
			Code:    CodeConflict,
			Message: detail("conflict"),
			Data:    data,
		}
	default:
		return &Error{
			Code:    CodeInvalidArgument,
			Message: detail(fmt.Sprintf("HTTP %d", status)),
			Data:    data,
		}
	}
}

// classifyTransportError maps a failed round-trip to a retryable code:
// timeouts to TIMEOUT, connection failures to UNAVAILABLE, anything else
// to INTERNAL_ERROR.
func classifyTransportError(err error, baseURL string, timeout time.Duration, attempt int) *Error {
	var netErr net.Error
	if (errors.As(err, &netErr) && netErr.Timeout()) || errors.Is(err, context.DeadlineExceeded) {
		return &Error{
			Code:    CodeTimeout,
			Message: fmt.Sprintf("Agent Mail request timeout after %v", timeout),
			Data:    map[string]any{"attempt": attempt + 1},
		}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return &Error{
			Code:    CodeUnavailable,
			Message: fmt.Sprintf("cannot connect to Agent Mail server at %s", baseURL),
			Data:    map[string]any{"error": err.Error(), "attempt": attempt + 1},
		}
	}

	return &Error{
		Code:    CodeInternalError,
		Message: fmt.Sprintf("unexpected error calling Agent Mail: %v", err),
		Data:    map[string]any{"error": err.Error(), "attempt": attempt + 1},
	}
}

// sleepContext sleeps for d or until ctx is cancelled.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
