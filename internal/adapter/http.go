package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/eva-gallery/eva-nft/internal/logger"
)

// HTTPClient defines an interface for HTTP client operations to enable mocking
//
//go:generate mockgen -source=http.go -destination=../mocks/http.go -package=mocks -mock_names=HTTPClient=MockHTTPClient
type HTTPClient interface {
	// GetJSON performs a GET request and unmarshals the response into result
	GetJSON(ctx context.Context, url string, result interface{}) error

	// GetText performs a GET request and returns the response body as a string
	GetText(ctx context.Context, url string) (string, error)

	// Put performs a single PUT request and returns the response body.
	// It is never retried: a lost response may hide a request the server already applied.
	// Only ctx bounds it; the per-request timeout of GETs does not apply.
	Put(ctx context.Context, url string, contentType string, body []byte) ([]byte, error)
}

// RetryConfig configures the exponential backoff of retried requests
type RetryConfig struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
}

// DefaultRetryConfig returns the retry settings used in production
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		InitialInterval: 500 * time.Millisecond,
		MaxInterval:     5 * time.Second,
		MaxElapsedTime:  20 * time.Second,
	}
}

// RealHTTPClient implements HTTPClient using the standard http package
type RealHTTPClient struct {
	client         *http.Client
	requestTimeout time.Duration
	retry          RetryConfig
}

// NewHTTPClient creates a new real HTTP client.
// requestTimeout bounds every single GET attempt; zero leaves attempts bounded by ctx only.
func NewHTTPClient(requestTimeout time.Duration, retry RetryConfig) HTTPClient {
	return &RealHTTPClient{
		client:         &http.Client{},
		requestTimeout: requestTimeout,
		retry:          retry,
	}
}

// StatusError is returned when the server answers with a non-2xx status
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d: %s", e.StatusCode, e.Body)
}

// do executes a single request and returns the body of a 2xx response
func (c *RealHTTPClient) do(req *http.Request) ([]byte, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to perform request: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Warn("failed to close response body", zap.Error(err), zap.String("url", req.URL.String()))
		}
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return respBody, nil
}

// getWithRetry executes a GET request with exponential backoff.
// Network errors, rate limiting and server errors are retried; other statuses are permanent.
func (c *RealHTTPClient) getWithRetry(ctx context.Context, url string) ([]byte, error) {
	var respBody []byte

	operation := func() error {
		attemptCtx := ctx
		if c.requestTimeout > 0 {
			var cancel context.CancelFunc
			attemptCtx, cancel = context.WithTimeout(ctx, c.requestTimeout)
			defer cancel()
		}

		req, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to create request: %w", err))
		}

		body, err := c.do(req)
		if err != nil {
			if statusErr, ok := err.(*StatusError); ok {
				if statusErr.StatusCode == http.StatusTooManyRequests || statusErr.StatusCode >= http.StatusInternalServerError {
					logger.Warn("request failed, retrying with backoff",
						zap.String("url", url),
						zap.Int("status", statusErr.StatusCode))
					return err
				}
				return backoff.Permanent(err)
			}
			return err
		}

		respBody = body
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.retry.InitialInterval
	b.MaxInterval = c.retry.MaxInterval
	b.MaxElapsedTime = c.retry.MaxElapsedTime
	b.Multiplier = 2.0
	b.RandomizationFactor = 0.5

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return nil, fmt.Errorf("request failed after retries: %w", err)
	}

	return respBody, nil
}

// GetJSON performs a GET request and unmarshals the response into result
func (c *RealHTTPClient) GetJSON(ctx context.Context, url string, result interface{}) error {
	respBody, err := c.getWithRetry(ctx, url)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(respBody, result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// GetText performs a GET request and returns the response body as a string
func (c *RealHTTPClient) GetText(ctx context.Context, url string) (string, error) {
	respBody, err := c.getWithRetry(ctx, url)
	if err != nil {
		return "", err
	}
	return string(respBody), nil
}

// Put performs a single PUT request and returns the response body
func (c *RealHTTPClient) Put(ctx context.Context, url string, contentType string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	return c.do(req)
}
