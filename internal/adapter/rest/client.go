package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Brayan008/cuack-stores/internal/logging"
)

// TokenSource yields the current session token, or "" when unauthenticated.
type TokenSource interface {
	Token() string
}

// Client talks to the cuack-store gateway. It attaches the bearer token from
// the token source, unwraps {message, data, timestamp} envelopes and maps
// failures to the error classes in errors.go. No retries: every failure is
// surfaced immediately to the caller.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource

	// onUnauthorized runs once per 401 before ErrSessionExpired is returned,
	// so the session can be torn down regardless of which call tripped it.
	onUnauthorized func()
}

func NewClient(baseURL string, timeout time.Duration, tokens TokenSource, onUnauthorized func()) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:        baseURL,
		http:           &http.Client{Timeout: timeout},
		tokens:         tokens,
		onUnauthorized: onUnauthorized,
	}
}

// envelope is the ApiResponseDTO shape the gateway wraps payloads in.
type envelope struct {
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	Timestamp string          `json:"timestamp"`
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if tok := c.tokens.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		logging.FromCtx(ctx).Error("gateway unreachable", "method", method, "path", path, "error", err.Error())
		return ErrConnection
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return ErrConnection
	}

	if resp.StatusCode == http.StatusUnauthorized {
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return ErrSessionExpired
	}

	if resp.StatusCode >= 400 {
		return c.asError(resp.StatusCode, raw)
	}

	if out == nil {
		return nil
	}
	return decodePayload(raw, out)
}

// decodePayload unwraps the {data: ...} envelope when present, otherwise
// decodes the raw body directly.
func decodePayload(raw []byte, out any) error {
	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Data != nil {
		return json.Unmarshal(env.Data, out)
	}
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, out)
}

// asError prefers the structured message carried by the response body.
func (c *Client) asError(status int, raw []byte) error {
	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Message != "" {
		return &APIError{StatusCode: status, Message: env.Message}
	}
	var generic struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &generic); err == nil && generic.Error != "" {
		return &APIError{StatusCode: status, Message: generic.Error}
	}
	if status >= 500 {
		return fmt.Errorf("%w (HTTP %d)", ErrUnknown, status)
	}
	return &APIError{StatusCode: status, Message: http.StatusText(status)}
}
