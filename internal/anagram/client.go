package anagram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/muurk/anagram-form/internal/logging"
)

const (
	// DefaultBaseURL is the endpoint used when nothing else is configured
	DefaultBaseURL = "http://localhost:8000"

	// GeneratePath is the route that computes anagrams
	GeneratePath = "/generate-anagram"

	// HealthPath is the service health check route
	HealthPath = "/health"

	// RequestIDHeader carries a per-request correlation ID
	RequestIDHeader = "X-Request-ID"

	// maxBodySize caps how much of a response body is read
	maxBodySize = 1 << 20
)

// Client is an HTTP client for the anagram service
type Client struct {
	// BaseURL is the service base URL (e.g., "http://localhost:8000")
	BaseURL string

	// HTTPClient is the underlying HTTP client. Its zero Timeout means
	// requests wait until the network completes or fails.
	HTTPClient *http.Client

	// UserAgent is sent with every request when non-empty
	UserAgent string
}

// NewClient creates a client for the service at baseURL.
// An empty baseURL selects DefaultBaseURL.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{},
	}
}

// SetTimeout sets the HTTP request timeout. Zero disables it.
func (c *Client) SetTimeout(timeout time.Duration) {
	c.HTTPClient.Timeout = timeout
}

// Generate posts the request and returns the decoded anagram list.
// Anagrams are returned in the order the service sent them.
func (c *Client) Generate(ctx context.Context, req Request) (*Response, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	httpReq, err := c.newRequest(ctx, http.MethodPost, GeneratePath, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	reqID := httpReq.Header.Get(RequestIDHeader)
	start := time.Now()
	logging.Debug("Submitting anagram request",
		zap.String("request_id", reqID),
		zap.String("url", httpReq.URL.String()),
		zap.Int("name_length", len(req.UserName)),
		zap.Int("text_length", len(req.InputText)),
	)

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		netErr := NewNetworkError("POST request failed", err)
		logging.Warn("Anagram request failed",
			zap.String("request_id", reqID),
			zap.String("error_type", netErr.Type.String()),
			zap.Error(err),
		)
		return nil, netErr
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, NewNetworkError("failed to read response body", err)
	}

	logging.Debug("Anagram response received",
		zap.String("request_id", reqID),
		zap.Int("status_code", resp.StatusCode),
		zap.Int("length", len(body)),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		httpErr := NewHTTPError(resp.StatusCode, parseDetail(body))
		logging.Warn("Anagram service returned error",
			zap.String("request_id", reqID),
			zap.Int("status_code", resp.StatusCode),
			zap.String("detail", httpErr.Detail),
		)
		return nil, httpErr
	}

	var raw rawResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, NewParseError("failed to parse JSON response", err)
	}
	if raw.Anagrams == nil {
		return nil, NewParseError("response has no anagrams field", nil)
	}

	return &Response{Status: raw.Status, Anagrams: *raw.Anagrams}, nil
}

// Health checks that the service is up and reports status "ok"
func (c *Client) Health(ctx context.Context) error {
	httpReq, err := c.newRequest(ctx, http.MethodGet, HealthPath, nil)
	if err != nil {
		return err
	}

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return NewNetworkError("health check failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return NewNetworkError("failed to read response body", err)
	}

	if resp.StatusCode != http.StatusOK {
		return NewHTTPError(resp.StatusCode, parseDetail(body))
	}

	var health healthResponse
	if err := json.Unmarshal(body, &health); err != nil {
		return NewParseError("failed to parse health response", err)
	}
	if health.Status != "ok" {
		return NewParseError(fmt.Sprintf("unexpected health status %q", health.Status), nil)
	}

	return nil
}

// newRequest builds a request against the base URL with the common headers set
func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return nil, NewNetworkError(fmt.Sprintf("failed to create %s request", method), err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, uuid.New().String())
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	return req, nil
}
