// Package fakestore is a small client for the public Fake Store REST API.
// It covers exactly the five endpoints the storefront consumes: the product
// collection, single products, login, user profiles, and per-user carts.
package fakestore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBaseURL is the public Fake Store API endpoint.
const DefaultBaseURL = "https://fakestoreapi.com"

const defaultTimeout = 15 * time.Second

var (
	// ErrInvalidCredentials is returned by Login for any non-success
	// response. The server's own error text is deliberately discarded so
	// that bad credentials and server failures are indistinguishable.
	ErrInvalidCredentials = errors.New("fakestore: invalid credentials")

	// ErrEmptyPayload is returned when a request succeeds at the HTTP
	// level but the body carries nothing usable (empty or JSON null).
	// The API answers unknown product ids this way instead of with a 404.
	ErrEmptyPayload = errors.New("fakestore: empty payload")
)

// StatusError reports a non-2xx response.
type StatusError struct {
	Code int
	Path string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fakestore: %s returned status %d", e.Path, e.Code)
}

// Client talks to the Fake Store API. All methods take a context; callers
// cancel it to abandon a fetch whose result is no longer wanted.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger attaches a logger for request tracing.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New creates a client for the given base URL. An empty base URL selects
// the public endpoint.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Products fetches the complete catalog, order preserved as returned.
func (c *Client) Products(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := c.getJSON(ctx, "/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Product fetches a single product by id. Unknown ids surface as
// ErrEmptyPayload since the API returns 200 with an empty body.
func (c *Client) Product(ctx context.Context, id int) (Product, error) {
	var p Product
	if err := c.getJSON(ctx, fmt.Sprintf("/products/%d", id), &p); err != nil {
		return Product{}, err
	}
	return p, nil
}

// User fetches a single user profile by id.
func (c *Client) User(ctx context.Context, id int) (User, error) {
	var u User
	if err := c.getJSON(ctx, fmt.Sprintf("/users/%d", id), &u); err != nil {
		return User{}, err
	}
	return u, nil
}

// CartsByUser fetches every cart belonging to the given user.
func (c *Client) CartsByUser(ctx context.Context, id int) ([]Cart, error) {
	var carts []Cart
	if err := c.getJSON(ctx, fmt.Sprintf("/carts/user/%d", id), &carts); err != nil {
		return nil, err
	}
	return carts, nil
}

// Login exchanges credentials for an opaque session token. Any non-2xx
// status maps to ErrInvalidCredentials regardless of the underlying cause.
func (c *Client) Login(ctx context.Context, creds Credentials) (string, error) {
	payload, err := json.Marshal(creds)
	if err != nil {
		return "", fmt.Errorf("fakestore: encode credentials: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/login", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("fakestore: build login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	requestID := uuid.NewString()
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("login request failed",
			zap.String("request_id", requestID),
			zap.Error(err))
		return "", fmt.Errorf("fakestore: login: %w", err)
	}
	defer resp.Body.Close()

	c.logger.Debug("login request complete",
		zap.String("request_id", requestID),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", ErrInvalidCredentials
	}

	var out struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("fakestore: decode login response: %w", err)
	}
	if out.Token == "" {
		return "", ErrInvalidCredentials
	}
	return out.Token, nil
}

// getJSON performs a GET and decodes the body into out.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("fakestore: build request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	requestID := uuid.NewString()
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("request failed",
			zap.String("request_id", requestID),
			zap.String("path", path),
			zap.Error(err))
		return fmt.Errorf("fakestore: GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("request complete",
		zap.String("request_id", requestID),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode, Path: path}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("fakestore: read %s: %w", path, err)
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ErrEmptyPayload
	}

	if err := json.Unmarshal(trimmed, out); err != nil {
		return fmt.Errorf("fakestore: decode %s: %w", path, err)
	}
	return nil
}
