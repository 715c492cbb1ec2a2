// Package api is the outbound REST client. It injects the stored session
// token, tags requests for tracing, and normalizes error shapes so callers
// can branch on rejection class instead of raw status codes.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gerdlab/refluxtrack/internal/constants"
	"github.com/gerdlab/refluxtrack/internal/logger"
	"github.com/gerdlab/refluxtrack/internal/store"
)

// ErrUnauthorized is wrapped by any 401 response. The stored token is deleted
// before the error is returned, so token presence stays the single source of
// the logged-in signal.
var ErrUnauthorized = errors.New("session is invalid or expired")

// APIError is a normalized non-2xx response.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("server returned status %d", e.StatusCode)
}

func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return nil
}

// errorBody is the DRF-style error envelope.
type errorBody struct {
	Detail string `json:"detail"`
}

// Client performs authenticated calls against the refluxtrack backend.
type Client struct {
	baseURL string
	http    *http.Client
	store   store.Store
}

// New creates a Client. baseURL must not have a trailing slash.
func New(baseURL string, timeout time.Duration, st store.Store) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		store:   st,
	}
}

// do sends one JSON request and decodes the response into out (when non-nil).
// Transport failures and server rejections are wrapped distinctly so logs can
// tell connectivity problems from rejected requests.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: marshalling request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("api: building request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if deviceID, err := c.store.Get(constants.KeyDeviceID); err == nil && deviceID != "" {
		req.Header.Set("X-Device-ID", deviceID)
	}
	if token, err := c.store.Get(constants.KeyAuthToken); err == nil && token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("api: sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.rejection(resp)
	}

	if out != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("api: decoding response: %w", err)
		}
	}

	return nil
}

// rejection turns a non-2xx response into an *APIError, surfacing the
// server-provided detail message when one is present.
func (c *Client) rejection(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err == nil && len(data) > 0 {
		var eb errorBody
		if json.Unmarshal(data, &eb) == nil {
			apiErr.Detail = eb.Detail
		}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		if err := c.store.Delete(constants.KeyAuthToken); err != nil && err != store.ErrNotFound {
			logger.Warn("Failed to clear token after 401", "error", err)
		}
	}

	return apiErr
}

// IsNetworkError reports whether err is a transport failure (no response
// received) rather than a server rejection.
func IsNetworkError(err error) bool {
	var apiErr *APIError
	return err != nil && !errors.As(err, &apiErr)
}
