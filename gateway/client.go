// Package gateway is the only component that talks to the remote
// coordination API. It owns the session token and turns every failure
// into an *APIError.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/linesmerrill/emergency-dashboard/databases"
)

// DefaultTimeout bounds a single API round trip when no other timeout is configured
const DefaultTimeout = 30 * time.Second

// Client calls the coordination API on behalf of the signed in patient
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	store      databases.TokenStore

	mu    sync.RWMutex
	token string
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout bounds every request. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// NewClient builds a client for the API rooted at baseURL (for example
// http://127.0.0.1:8000/api). The token is kept in store.
func NewClient(baseURL string, store databases.TokenStore, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
		timeout:    DefaultTimeout,
		store:      store,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// LoadToken reads a previously persisted token into memory
func (c *Client) LoadToken(ctx context.Context) error {
	token, err := c.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load session token: %w", err)
	}
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
	return nil
}

// HasToken reports whether requests are currently authenticated
func (c *Client) HasToken() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token != ""
}

// CurrentUserID returns the user_id claim when the held token is a JWT.
// Opaque tokens give an empty string.
func (c *Client) CurrentUserID() string {
	c.mu.RLock()
	token := c.token
	c.mu.RUnlock()
	if token == "" {
		return ""
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ""
	}
	id, ok := claims["user_id"]
	if !ok || id == nil {
		return ""
	}
	return fmt.Sprint(id)
}

// setToken holds token in memory and persists it. An empty token clears
// both. The in-memory value changes even when persisting fails.
func (c *Client) setToken(ctx context.Context, token string) error {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()

	if token == "" {
		return c.store.Clear(ctx)
	}
	return c.store.Save(ctx, token)
}

func (c *Client) authorization() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.token == "" {
		return ""
	}
	return "Token " + c.token
}

// Request sends a JSON request to endpoint (relative to the base URL) and
// decodes a JSON response into out when out is not nil. Any failure,
// transport or HTTP, comes back as an *APIError.
func (c *Client) Request(ctx context.Context, method, endpoint string, body, out interface{}) error {
	return c.do(ctx, method, endpoint, c.authorization(), body, out)
}

// do sends the request with auth as its Authorization header, or none when
// auth is empty.
func (c *Client) do(ctx context.Context, method, endpoint, auth string, body, out interface{}) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return c.fail(endpoint, &APIError{Message: err.Error(), Err: err})
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return c.fail(endpoint, &APIError{Message: err.Error(), Err: err})
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.fail(endpoint, &APIError{Message: err.Error(), Err: err})
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.fail(endpoint, &APIError{StatusCode: resp.StatusCode, Message: err.Error(), Err: err})
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.fail(endpoint, &APIError{StatusCode: resp.StatusCode, Message: errorMessage(resp.StatusCode, data)})
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return c.fail(endpoint, &APIError{StatusCode: resp.StatusCode, Message: "invalid response: " + err.Error(), Err: err})
	}
	return nil
}

func (c *Client) fail(endpoint string, err *APIError) error {
	zap.S().Errorw("API error",
		"endpoint", endpoint,
		"status", err.StatusCode,
		"error", err.Message,
	)
	return err
}

func (c *Client) get(ctx context.Context, endpoint string, out interface{}) error {
	return c.Request(ctx, http.MethodGet, endpoint, nil, out)
}

func (c *Client) post(ctx context.Context, endpoint string, body, out interface{}) error {
	return c.Request(ctx, http.MethodPost, endpoint, body, out)
}

// postAnonymous posts without the held token. A revoked token on a
// credentials endpoint gets a 401 before the credentials are checked.
func (c *Client) postAnonymous(ctx context.Context, endpoint string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, endpoint, "", body, out)
}

// getList fetches endpoint and normalises its envelope
func getList[T any](ctx context.Context, c *Client, endpoint string, keys ...string) ([]T, error) {
	var raw json.RawMessage
	if err := c.get(ctx, endpoint, &raw); err != nil {
		return nil, err
	}
	return unwrap[T](c, endpoint, raw, keys...)
}

func unwrap[T any](c *Client, endpoint string, raw json.RawMessage, keys ...string) ([]T, error) {
	list, err := UnwrapList[T](raw, keys...)
	if err != nil {
		return nil, c.fail(endpoint, &APIError{Message: "invalid response: " + err.Error(), Err: err})
	}
	return list, nil
}

func itemPath(prefix, id, suffix string) string {
	return prefix + url.PathEscape(id) + "/" + suffix
}
