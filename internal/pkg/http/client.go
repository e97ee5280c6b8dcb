package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	nethttp "net/http"
	"strings"
	"time"

	"github.com/piresc/roundup/internal/pkg/circuitbreaker"
	"github.com/piresc/roundup/internal/pkg/logger"
	nrpkg "github.com/piresc/roundup/internal/pkg/newrelic"
	"github.com/piresc/roundup/internal/pkg/retry"
)

const (
	// DefaultTimeout for HTTP requests
	DefaultTimeout = 30 * time.Second
	// APIKeyHeader is the header name for API key
	APIKeyHeader = "X-API-Key"
	// IdempotencyHeader carries the caller's idempotency key
	IdempotencyHeader = "Idempotency-Key"
)

// StatusError is a non-2xx response from the remote service
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error: %d %s", e.StatusCode, e.Body)
}

// Auth decorates outgoing requests with credentials
type Auth func(req *nethttp.Request)

// BasicAuth authenticates with a key id and secret
func BasicAuth(user, password string) Auth {
	return func(req *nethttp.Request) {
		req.SetBasicAuth(user, password)
	}
}

// APIKeyAuth sends the key in the X-API-Key header
func APIKeyAuth(key string) Auth {
	return func(req *nethttp.Request) {
		if key != "" {
			req.Header.Set(APIKeyHeader, key)
		}
	}
}

// ClientConfig configures a JSON client for one external provider
type ClientConfig struct {
	Name       string
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
	Auth       Auth
}

// Client is a JSON HTTP client with retries, a circuit breaker and tracing
type Client struct {
	name    string
	baseURL string
	client  *nethttp.Client
	auth    Auth
	retrier *retry.Retrier
	breaker *circuitbreaker.Breaker
}

// NewClient creates a client; 5xx and transport errors are retried, 4xx are not
func NewClient(config ClientConfig) *Client {
	timeout := config.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	retryConfig := retry.DefaultConfig()
	retryConfig.MaxRetries = config.MaxRetries

	breakerConfig := circuitbreaker.DefaultConfig(config.Name)
	breakerConfig.IsFailure = func(err error) bool {
		var statusErr *StatusError
		return !errors.As(err, &statusErr) || statusErr.StatusCode >= 500
	}

	return &Client{
		name:    config.Name,
		baseURL: strings.TrimRight(config.BaseURL, "/"),
		client:  &nethttp.Client{Timeout: timeout},
		auth:    config.Auth,
		retrier: retry.New(retryConfig, logger.GetGlobalLogger()),
		breaker: circuitbreaker.New(breakerConfig),
	}
}

// PostJSON sends body as JSON and decodes the response into result
func (c *Client) PostJSON(ctx context.Context, endpoint string, body, result interface{}, headers map[string]string) error {
	return c.DoJSON(ctx, nethttp.MethodPost, endpoint, body, result, headers)
}

// GetJSON decodes the response of a GET into result
func (c *Client) GetJSON(ctx context.Context, endpoint string, result interface{}) error {
	return c.DoJSON(ctx, nethttp.MethodGet, endpoint, nil, result, nil)
}

// DoJSON performs the request through the breaker and retrier
func (c *Client) DoJSON(ctx context.Context, method, endpoint string, body, result interface{}, headers map[string]string) error {
	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		payload = data
	}

	return c.breaker.Execute(func() error {
		return c.retrier.Execute(ctx, func(ctx context.Context) error {
			respBody, err := c.do(ctx, method, endpoint, payload, headers)
			if err != nil {
				var statusErr *StatusError
				if errors.As(err, &statusErr) && statusErr.StatusCode < 500 {
					return &retry.Permanent{Err: err}
				}
				return err
			}
			if result == nil || len(respBody) == 0 {
				return nil
			}
			if err := json.Unmarshal(respBody, result); err != nil {
				return &retry.Permanent{Err: fmt.Errorf("failed to decode response: %w", err)}
			}
			return nil
		})
	})
}

func (c *Client) do(ctx context.Context, method, endpoint string, payload []byte, headers map[string]string) ([]byte, error) {
	url := c.baseURL + endpoint

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := nethttp.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if c.auth != nil {
		c.auth(req)
	}

	resp, err := nrpkg.InstrumentHTTPRequest(ctx, req, func() (*nethttp.Response, error) {
		return c.client.Do(req)
	})
	if err != nil {
		logger.WarnCtx(ctx, "HTTP request failed",
			logger.String("service", c.name),
			logger.String("method", method),
			logger.String("url", url),
			logger.Err(err))
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	logger.DebugCtx(ctx, "HTTP request completed",
		logger.String("service", c.name),
		logger.String("method", method),
		logger.String("url", url),
		logger.Int("status_code", resp.StatusCode))

	if resp.StatusCode >= 400 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(respBody))}
	}
	return respBody, nil
}
