// Package api provides the typed REST client for the Eastlify backend.
//
// The client is stateless with respect to the session: the auth token is an
// explicit argument on authenticated calls, owned by the store. Every
// failure is returned as a domain error carrying the server's message
// verbatim so the UI can surface it unchanged.
package api

import (
	"bytes"
	"context"
	"encoding/json/v2"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Liban-hassan-noor/eastlify-client/internal/errors"
	"github.com/Liban-hassan-noor/eastlify-client/internal/ratelimit"
)

const (
	// Public activity pings: 1 per second per shop, burst of 3.
	defaultActivityRPS   = 1.0
	defaultActivityBurst = 3

	defaultTimeout = 30 * time.Second

	userAgent = "Eastlify/1.0"
)

// Config holds client construction options.
type Config struct {
	// BaseURL is the backend root, e.g. "http://localhost:5050/api".
	BaseURL string
	Timeout time.Duration
	// ActivityRPS / ActivityBurst throttle the public activity endpoint
	// per shop. Zero values use the defaults.
	ActivityRPS   float64
	ActivityBurst int
}

// Client is the Eastlify backend API client.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *ratelimit.KeyedRateLimiter
	logger  *slog.Logger
}

// New creates a new API client.
func New(cfg Config, logger *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	rps := cfg.ActivityRPS
	if rps == 0 {
		rps = defaultActivityRPS
	}
	burst := cfg.ActivityBurst
	if burst == 0 {
		burst = defaultActivityBurst
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		limiter: ratelimit.New(rps, burst),
		logger:  logger,
	}
}

// Close releases resources held by the client.
func (c *Client) Close() {
	c.limiter.Stop()
}

// messageBody is the error payload shape the backend uses for non-2xx
// responses.
type messageBody struct {
	Message string `json:"message"`
}

// doJSON executes a request with an optional JSON body and decodes the
// response into out (which may be nil to discard the body).
func (c *Client) doJSON(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.do(req, token, out)
}

// do executes a prepared request, maps the status code, and decodes the
// response body into out.
func (c *Client) do(req *http.Request, token string, out any) error {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.logger.Debug("api request", "method", req.Method, "path", req.URL.Path)

	resp, err := c.http.Do(req)
	if err != nil {
		// Transport tier: no response at all.
		return errors.Unavailable("could not reach the server").WithCause(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Unavailable("read response").WithCause(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Server-reported tier: keep the backend's message.
		var msg messageBody
		_ = json.Unmarshal(data, &msg)
		return errors.ServerReported(resp.StatusCode, msg.Message)
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.Internal("decode response").WithCause(err)
	}
	return nil
}

// query builds an encoded query string, skipping empty values.
func query(pairs ...string) string {
	values := url.Values{}
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] != "" {
			values.Set(pairs[i], pairs[i+1])
		}
	}
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}
