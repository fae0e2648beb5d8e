package api

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
)

const requestTimeout = 10 * time.Second

// Client talks to the recruitment backend's REST API. All state of record
// lives on the backend; the client only carries the bearer token source
// and a hook fired when the backend rejects it.
type Client struct {
	baseURL    string
	httpClient *http.Client

	// TokenSource supplies the current bearer token, empty when logged out.
	TokenSource func() string

	// OnAuthExpired runs once per rejected request, before the error is
	// returned. Used for global session teardown.
	OnAuthExpired func()
}

// newRequestID tags each request for correlation in backend logs.
func newRequestID() string {
	return uuid.NewString()
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// envelope is the backend's uniform response wrapper.
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// do performs one JSON request. No retries: failures surface to the caller
// and the user retries manually.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", newRequestID())
	if c.TokenSource != nil {
		if token := c.TokenSource(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		if c.OnAuthExpired != nil {
			c.OnAuthExpired()
		}
		return &Error{Status: resp.StatusCode, Message: ErrUnauthorized.Error()}
	}

	var env envelope
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			if resp.StatusCode >= 400 {
				return &Error{Status: resp.StatusCode, Message: normalizeMessage(strings.TrimSpace(string(raw)))}
			}
			// Bare array payloads don't fit the envelope shape.
			if out != nil {
				if err := json.Unmarshal(raw, out); err != nil {
					return fmt.Errorf("failed to decode response: %w", err)
				}
			}
			return nil
		}
	}

	if resp.StatusCode >= 400 {
		return &Error{Status: resp.StatusCode, Code: env.Code, Message: normalizeMessage(env.Message)}
	}
	if env.Code != 0 && env.Code != http.StatusOK && env.Code != http.StatusCreated {
		return &Error{Status: resp.StatusCode, Code: env.Code, Message: normalizeMessage(env.Message)}
	}

	if out == nil {
		return nil
	}

	// Some endpoints return the payload bare rather than wrapped; fall back
	// to the whole body when there is no data field.
	payload := env.Data
	if payload == nil {
		payload = raw
	}
	if len(payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}
	return nil
}
