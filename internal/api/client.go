// Package api implements the thin client for the storefront REST backend.
// Every response arrives in the {success, data, message} envelope; the client
// returns the envelope verbatim, including backend-reported failures, and only
// intervenes on 401 by wiping the stored session.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	apperrors "github.com/serikkalibeknur/project-clothesstore/pkg/errors"
	"github.com/serikkalibeknur/project-clothesstore/pkg/logger"
)

// Envelope is the wrapper every backend response uses.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
}

// Decode unmarshals the envelope data into v.
func (e *Envelope) Decode(v any) error {
	if len(e.Data) == 0 {
		return fmt.Errorf("envelope has no data")
	}
	if err := json.Unmarshal(e.Data, v); err != nil {
		return fmt.Errorf("decode envelope data: %w", err)
	}
	return nil
}

// Err returns the backend failure carried by the envelope, or nil on success.
func (e *Envelope) Err() error {
	if e.Success {
		return nil
	}
	return apperrors.Backend(e.Message)
}

// SessionSource provides the bearer token and handles the forced logout a 401
// triggers.
type SessionSource interface {
	// Token returns the current bearer token, or "" when logged out.
	Token(ctx context.Context) string

	// ClearSession wipes the persisted credentials.
	ClearSession(ctx context.Context) error
}

// Config holds HTTP client configuration.
type Config struct {
	Timeout         time.Duration
	MaxConnsPerHost int
}

// DefaultConfig returns sensible defaults for the HTTP client.
func DefaultConfig() Config {
	return Config{
		Timeout:         30 * time.Second,
		MaxConnsPerHost: 100,
	}
}

// Client issues envelope requests against the backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	sessions   SessionSource
	logger     *slog.Logger
}

// New creates a backend client. baseURL is the API root, e.g.
// "http://localhost:8080/api".
func New(baseURL string, cfg Config, sessions SessionSource, log *slog.Logger) *Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   cfg.MaxConnsPerHost,
		MaxConnsPerHost:       cfg.MaxConnsPerHost,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		sessions: sessions,
		logger:   log,
	}
}

// Call issues a single request and returns the decoded envelope. The bearer
// token is attached when a session exists. A 401 wipes the session and
// returns a session-expired error; every other response decodes to its
// envelope unchanged, backend failures included. An error status whose body
// is not an envelope maps to the error taxonomy by status code. No retries.
func (c *Client) Call(ctx context.Context, method, path string, body any) (*Envelope, error) {
	var reqBody *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create %s %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	if token := c.sessions.Token(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if id := logger.CorrelationIDFromContext(ctx); id != "" {
		req.Header.Set("X-Request-ID", id)
	}

	log := logger.WithContext(ctx, c.logger)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		if clearErr := c.sessions.ClearSession(ctx); clearErr != nil {
			log.ErrorContext(ctx, "failed to clear session after 401",
				slog.String("path", path),
				slog.String("error", clearErr.Error()),
			)
		}
		return nil, apperrors.SessionExpired()
	}

	var env Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		// Some failures arrive without an envelope (proxies, HTML error
		// pages); fall back to the status code.
		if resp.StatusCode >= http.StatusBadRequest {
			return nil, apperrors.FromStatus(resp.StatusCode, "")
		}
		return nil, fmt.Errorf("decode %s %s response: %w", method, path, err)
	}

	log.DebugContext(ctx, "backend call",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Bool("success", env.Success),
	)

	return &env, nil
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, path string) (*Envelope, error) {
	return c.Call(ctx, http.MethodGet, path, nil)
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body any) (*Envelope, error) {
	return c.Call(ctx, http.MethodPost, path, body)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Envelope, error) {
	return c.Call(ctx, http.MethodDelete, path, nil)
}
