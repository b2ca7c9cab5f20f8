package analysis

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

	"github.com/muurk/pwcheck/internal/logging"
	"github.com/muurk/pwcheck/internal/version"
)

const (
	// CheckPath is the analysis endpoint, relative to the base URL
	CheckPath = "/check_password"

	// HealthPath is the service health endpoint, relative to the base URL
	HealthPath = "/health"

	// DefaultTimeout is the default HTTP request timeout
	DefaultTimeout = 15 * time.Second

	// maxBodySize caps how much of a response body is read
	maxBodySize = 1 << 20
)

// Client talks to the external password-analysis service.
// It issues exactly one request per call; there is no retry or caching.
type Client struct {
	// BaseURL is the service root (e.g., "http://localhost:8000")
	BaseURL string

	// UserAgent is sent with every request
	UserAgent string

	// HTTPClient is the underlying HTTP client
	HTTPClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.HTTPClient = hc
	}
}

// WithTimeout sets the per-request timeout. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.HTTPClient.Timeout = d
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.UserAgent = ua
	}
}

// NewClient creates a client for the service at baseURL.
// baseURL must be an absolute http or https URL; a trailing slash is ignored.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base URL %q: scheme must be http or https", baseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: missing host", baseURL)
	}

	c := &Client{
		BaseURL:    strings.TrimRight(u.String(), "/"),
		UserAgent:  "pwcheck/" + version.Version,
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Endpoint returns the full URL for path.
func (c *Client) Endpoint(path string) string {
	return c.BaseURL + path
}

// Analyze submits password for analysis and returns the validated result.
// Any non-2xx status is an HTTP error; bodies that do not match the result
// schema are rejected rather than passed through.
func (c *Client) Analyze(ctx context.Context, password string) (*Result, error) {
	endpoint := c.Endpoint(CheckPath)

	payload, err := json.Marshal(Request{Password: password})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, &Error{Type: ErrTypeUnknown, Message: "failed to create POST request", Endpoint: endpoint, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.UserAgent)

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		classified := classifyTransportError(err, endpoint)
		logging.LogAnalysis(endpoint, 0, time.Since(start), classified)
		return nil, classified
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		httpErr := NewHTTPError(resp.StatusCode, endpoint)
		logging.LogAnalysis(endpoint, resp.StatusCode, time.Since(start), httpErr)
		return nil, httpErr
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		classified := classifyTransportError(err, endpoint)
		logging.LogAnalysis(endpoint, resp.StatusCode, time.Since(start), classified)
		return nil, classified
	}

	result, err := DecodeResult(body)
	if err != nil {
		if e, ok := err.(*Error); ok {
			e.Endpoint = endpoint
			e.StatusCode = resp.StatusCode
		}
		logging.LogAnalysis(endpoint, resp.StatusCode, time.Since(start), err)
		return nil, err
	}

	logging.LogAnalysis(endpoint, resp.StatusCode, time.Since(start), nil)
	return result, nil
}

// Evaluate is Analyze folded into an Outcome.
func (c *Client) Evaluate(ctx context.Context, password string) Outcome {
	result, err := c.Analyze(ctx, password)
	if err != nil {
		return Failed(err)
	}
	return Succeeded(result)
}

// Health performs a simple health check on the service.
// Returns nil if the service is reachable and answers 2xx.
func (c *Client) Health(ctx context.Context) error {
	endpoint := c.Endpoint(HealthPath)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &Error{Type: ErrTypeUnknown, Message: "failed to create health request", Endpoint: endpoint, Err: err}
	}
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return classifyTransportError(err, endpoint)
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return NewHTTPError(resp.StatusCode, endpoint)
	}
	return nil
}
