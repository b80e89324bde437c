// Package gateway is the HTTP client of the upstream food API.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/guttosm/food-details-service/internal/circuitbreaker"
	"github.com/guttosm/food-details-service/internal/domain/model"
	"github.com/guttosm/food-details-service/internal/logger"
	"github.com/guttosm/food-details-service/internal/metrics"
)

// Operation names used in errors, logs and metrics.
const (
	OpGetFood        = "get_food"
	OpListFavorites  = "list_favorites"
	OpAddFavorite    = "add_favorite"
	OpRemoveFavorite = "remove_favorite"
	OpCreateOrder    = "create_order"
)

// maxBodyBytes caps how much of an upstream response is read.
const maxBodyBytes = 4 << 20

// Gateway is the set of upstream calls the food details screen makes.
type Gateway interface {
	GetFood(ctx context.Context, id int64) (model.Food, error)
	ListFavorites(ctx context.Context) ([]model.Food, error)
	AddFavorite(ctx context.Context, favorite model.Favorite) error
	RemoveFavorite(ctx context.Context, id int64) error
	CreateOrder(ctx context.Context, order model.Order) error
}

// Client implements Gateway over HTTP/JSON.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	breaker    *circuitbreaker.CircuitBreaker
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the per-request timeout. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithCircuitBreaker sets the breaker configuration. Name, IsFailure and
// OnStateChange are filled in when empty.
func WithCircuitBreaker(cfg circuitbreaker.Config) Option {
	return func(c *Client) {
		if cfg.Name == "" {
			cfg.Name = "food_api"
		}
		if cfg.IsFailure == nil {
			cfg.IsFailure = isBreakerFailure
		}
		if cfg.OnStateChange == nil {
			cfg.OnStateChange = func(name string, _, to circuitbreaker.State) {
				metrics.SetCircuitBreakerState(name, int(to))
			}
		}
		c.breaker = circuitbreaker.New(cfg)
	}
}

// NewClient creates a Client for the API rooted at baseURL (no trailing slash).
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		timeout:    5 * time.Second,
	}
	WithCircuitBreaker(circuitbreaker.DefaultConfig())(c)
	for _, opt := range opts {
		opt(c)
	}
	metrics.SetCircuitBreakerState(c.breaker.Name(), int(c.breaker.State()))
	return c
}

// CircuitBreaker exposes the breaker for health reporting.
func (c *Client) CircuitBreaker() *circuitbreaker.CircuitBreaker {
	return c.breaker
}

// GetFood fetches a food and its extras.
func (c *Client) GetFood(ctx context.Context, id int64) (model.Food, error) {
	var food model.Food
	err := c.do(ctx, OpGetFood, http.MethodGet, "/foods/"+strconv.FormatInt(id, 10), nil, &food)
	return food, err
}

// ListFavorites fetches the favorites collection.
func (c *Client) ListFavorites(ctx context.Context) ([]model.Food, error) {
	var favorites []model.Food
	err := c.do(ctx, OpListFavorites, http.MethodGet, "/favorites", nil, &favorites)
	return favorites, err
}

// AddFavorite stores a favorite snapshot.
func (c *Client) AddFavorite(ctx context.Context, favorite model.Favorite) error {
	return c.do(ctx, OpAddFavorite, http.MethodPost, "/favorites", favorite, nil)
}

// RemoveFavorite deletes the favorite of a food.
func (c *Client) RemoveFavorite(ctx context.Context, id int64) error {
	return c.do(ctx, OpRemoveFavorite, http.MethodDelete, "/favorites/"+strconv.FormatInt(id, 10), nil, nil)
}

// CreateOrder submits an order.
func (c *Client) CreateOrder(ctx context.Context, order model.Order) error {
	return c.do(ctx, OpCreateOrder, http.MethodPost, "/orders", order, nil)
}

func (c *Client) do(ctx context.Context, op, method, path string, in, out interface{}) error {
	start := time.Now()

	err := c.breaker.Execute(ctx, func(ctx context.Context) error {
		return c.roundTrip(ctx, op, method, path, in, out)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		err = &Error{Op: op, Kind: KindNetwork, Err: err}
	}

	outcome := "success"
	if err != nil {
		outcome = KindOf(err).String()
		log := logger.Logger()
		log.Warn().
			Err(err).
			Str("operation", op).
			Str("method", method).
			Str("path", path).
			Msg("Gateway request failed")
	}
	metrics.RecordGatewayRequest(op, time.Since(start), outcome)
	return err
}

func (c *Client) roundTrip(ctx context.Context, op, method, path string, in, out interface{}) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("gateway %s: encode request: %w", op, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("gateway %s: build request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{Op: op, Kind: KindNetwork, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return &Error{Op: op, Kind: KindNetwork, StatusCode: resp.StatusCode, Err: err}
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return &Error{Op: op, Kind: KindNotFound, StatusCode: resp.StatusCode}
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return &Error{Op: op, Kind: KindServer, StatusCode: resp.StatusCode, Err: upstreamMessage(data)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &Error{Op: op, Kind: KindDecode, StatusCode: resp.StatusCode, Err: err}
	}
	return nil
}

func upstreamMessage(body []byte) error {
	if len(body) == 0 {
		return nil
	}
	const limit = 256
	if len(body) > limit {
		body = body[:limit]
	}
	return errors.New(string(bytes.TrimSpace(body)))
}
