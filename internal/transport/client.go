package transport

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/muurk/daikinbridge/internal/aircon"
	"github.com/muurk/daikinbridge/internal/logging"
)

const (
	// DefaultHost is used when no adapter address is configured
	DefaultHost = "http://localhost"

	// DefaultTimeout is the default HTTP request timeout
	DefaultTimeout = 10 * time.Second

	// DefaultMaxRetries is the default number of retry attempts for failed requests
	DefaultMaxRetries = 2

	// DefaultRetryDelay is the default delay between retry attempts
	DefaultRetryDelay = 500 * time.Millisecond

	// DefaultMaxRetryDelay is the maximum delay for exponential backoff
	DefaultMaxRetryDelay = 5 * time.Second
)

// Client performs plain GET requests against a Daikin wireless adapter.
// It is the only component that talks to the network; the body is returned
// as-is and never interpreted here.
type Client struct {
	// BaseURL is the base URL for the adapter (e.g., "http://192.168.1.20")
	BaseURL string

	// HTTPClient is the underlying HTTP client
	HTTPClient *http.Client

	// MaxRetries is the maximum number of retry attempts for failed requests
	MaxRetries int

	// RetryDelay is the initial delay between retry attempts
	RetryDelay time.Duration

	// MaxRetryDelay is the maximum delay for exponential backoff
	MaxRetryDelay time.Duration

	// UseExponentialBackoff enables exponential backoff for retries
	UseExponentialBackoff bool

	// Logger receives request/response debug records
	Logger *zap.Logger
}

// NewClient creates a client for the adapter at host.
// host may be a bare address ("192.168.1.20", "aircon.lan:8080") or a URL.
func NewClient(host string) *Client {
	return &Client{
		BaseURL:               NormalizeBaseURL(host),
		HTTPClient:            &http.Client{Timeout: DefaultTimeout},
		MaxRetries:            DefaultMaxRetries,
		RetryDelay:            DefaultRetryDelay,
		MaxRetryDelay:         DefaultMaxRetryDelay,
		UseExponentialBackoff: true,
		Logger:                zap.NewNop(),
	}
}

// NormalizeBaseURL turns a host setting into a base URL without a trailing slash
func NormalizeBaseURL(host string) string {
	host = strings.TrimSpace(host)
	if host == "" {
		return DefaultHost
	}
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "http://" + host
	}
	return strings.TrimRight(host, "/")
}

// SetTimeout sets the HTTP request timeout
func (c *Client) SetTimeout(timeout time.Duration) {
	c.HTTPClient.Timeout = timeout
}

// SetRetry configures retry behavior
func (c *Client) SetRetry(maxRetries int, retryDelay time.Duration) {
	c.MaxRetries = maxRetries
	c.RetryDelay = retryDelay
}

// SetLogger sets the logger for request/response records
func (c *Client) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	c.Logger = l
}

// Get requests path from the adapter and returns the raw body.
// Retryable failures are retried with backoff until MaxRetries is exhausted
// or ctx is done.
func (c *Client) Get(ctx context.Context, path string) (string, error) {
	var lastErr error
	currentDelay := c.RetryDelay

	for attempt := 0; attempt <= c.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", ClassifyNetworkError(ctx.Err(), path)
			case <-time.After(currentDelay):
			}

			if c.UseExponentialBackoff {
				currentDelay *= 2
				if currentDelay > c.MaxRetryDelay {
					currentDelay = c.MaxRetryDelay
				}
			}
		}

		body, err := c.getAttempt(ctx, path, attempt)
		if err == nil {
			return body, nil
		}

		lastErr = err

		if !IsRetryable(err) {
			return "", err
		}

		c.logger().Debug("Retrying device request",
			zap.String("path", path),
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
	}

	return "", lastErr
}

// getAttempt performs a single GET
func (c *Client) getAttempt(ctx context.Context, path string, attempt int) (string, error) {
	logging.LogDeviceRequest(c.logger(), c.BaseURL, path, attempt)
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return "", &Error{Type: ErrTypeNetwork, Message: "failed to create GET request", Path: path, Err: err}
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", ClassifyNetworkError(err, path)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", NewHTTPError(path, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", ClassifyNetworkError(err, path)
	}

	logging.LogDeviceResponse(c.logger(), path, resp.StatusCode, string(body), time.Since(start))

	return string(body), nil
}

// Ping checks that the adapter answers its basic info endpoint
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.getAttempt(ctx, aircon.PathBasicInfo, 0)
	return err
}

func (c *Client) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}
