package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// Client is the immich-search SDK entry point.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
}

// New creates a Client for the service at baseURL.
func New(baseURL string, opts ...Option) *Client {
	cfg := &clientConfig{timeout: defaultTimeout}
	for _, o := range opts {
		o.apply(cfg)
	}

	hc := cfg.httpClient
	if hc == nil {
		hc = &http.Client{Timeout: cfg.timeout}
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: hc,
		userAgent:  cfg.userAgent,
	}
}

// Parse interprets a natural-language photo query.
func (c *Client) Parse(ctx context.Context, query string) (ParseResult, error) {
	body, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		return ParseResult{}, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/parse", bytes.NewReader(body))
	if err != nil {
		return ParseResult{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ParseResult{}, fmt.Errorf("parse request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return ParseResult{}, responseError(resp)
	}

	var result ParseResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return ParseResult{}, fmt.Errorf("decode response: %w", err)
	}
	return result, nil
}

// Health fetches the aggregated service health. A degraded service still
// returns a status, not an error.
func (c *Client) Health(ctx context.Context) (HealthStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return HealthStatus{}, fmt.Errorf("build request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return HealthStatus{}, fmt.Errorf("health request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusServiceUnavailable {
		return HealthStatus{}, responseError(resp)
	}

	var status HealthStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return HealthStatus{}, fmt.Errorf("decode response: %w", err)
	}
	return status, nil
}

// errorBody is the service's uniform error shape.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// responseError maps an error response to a sentinel.
func responseError(resp *http.Response) error {
	var body errorBody
	_ = json.NewDecoder(resp.Body).Decode(&body)

	sentinel := ErrServiceError
	switch {
	case resp.StatusCode == http.StatusBadGateway:
		sentinel = ErrRecognizerUnavailable
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		sentinel = ErrInvalidRequest
	}

	if body.Message != "" {
		return fmt.Errorf("%w: %s", sentinel, body.Message)
	}
	return fmt.Errorf("%w: http %d", sentinel, resp.StatusCode)
}
