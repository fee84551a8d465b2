// Package api is the typed client for the eventcal backend REST API. Every
// backend endpoint is exposed as a request/response operation and every
// failure is normalized into a coded error: a backend {detail} body becomes
// a validation error, an unparseable error body becomes a decode error
// carrying the HTTP status, and a request that got no response at all
// becomes a transport error with connectivity guidance.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/eventcal-io/eventcal/internal/errors"
	"github.com/eventcal-io/eventcal/internal/log"
)

// DefaultBaseURL is used when no base URL is configured.
const DefaultBaseURL = "http://localhost:8000"

const requestTimeout = 30 * time.Second

// Client is the eventcal backend API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *log.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client (mainly for tests).
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a client for the backend at baseURL. An empty baseURL
// falls back to DefaultBaseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		baseURL: baseURL,
		// No cookie jar: requests carry no ambient credentials, only the
		// explicit Authorization header when a token is supplied.
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     log.DefaultLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// errorResponse is the backend's uniform error body shape.
type errorResponse struct {
	Detail string `json:"detail"`
}

// doRequest performs one JSON request. token is optional; when set it is
// sent as a bearer Authorization header.
func (c *Client) doRequest(ctx context.Context, method, path, token string, body any) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cache-Control", "no-cache")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	requestID := uuid.NewString()
	c.logger.Debug("api request", "method", method, "path", path, "request_id", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WithError(err).Debug("api request failed", "request_id", requestID)
		return nil, errors.NewTransportError(err)
	}

	c.logger.Debug("api response", "status", resp.StatusCode, "request_id", requestID)
	return resp, nil
}

// parseResponse decodes resp into target and normalizes non-success
// statuses into coded errors.
func parseResponse(resp *http.Response, target any) error {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)

		var errResp errorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Detail != "" {
			return errors.NewValidationError(errResp.Detail)
		}
		return errors.NewDecodeError(resp.StatusCode)
	}

	if target != nil {
		if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
			return errors.Wrap(errors.ErrCodeAPIDecode, "decode response body", err)
		}
	}
	return nil
}
