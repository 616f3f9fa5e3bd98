package apiclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"swifttrack-dashboard/internal/logger"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const (
	HeaderContentType        = "Content-Type"
	HeaderSkipBrowserWarning = "ngrok-skip-browser-warning"

	contentTypeJSON = "application/json"
)

// Client calls the SwiftTrack REST API. Every call is a single attempt:
// no retries and no client-side timeout.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *zap.Logger
	metrics    *MetricsTracker
}

type Option func(*Client)

// WithHTTPClient replaces the default transport, mostly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		log:        logger.Named("apiclient"),
		metrics:    NewMetricsTracker(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) Metrics() CallMetrics {
	return c.metrics.Snapshot()
}

// Call sends one request to endpoint and decodes the JSON response into out
// (skipped when out is nil). body, when non-nil, is encoded as JSON.
func (c *Client) Call(ctx context.Context, method, endpoint string, body, out any) (err error) {
	start := time.Now()
	defer func() {
		c.metrics.record(time.Since(start), err)
	}()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request for %s: %w", endpoint, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return fmt.Errorf("build request for %s: %w", endpoint, err)
	}
	req.Header.Set(HeaderContentType, contentTypeJSON)
	req.Header.Set(HeaderSkipBrowserWarning, "true")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("API call failed",
			zap.String("method", method),
			zap.String("endpoint", endpoint),
			zap.Error(err),
		)
		return &TransportError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Error("API call returned error status",
			zap.String("method", method),
			zap.String("endpoint", endpoint),
			zap.Int("status_code", resp.StatusCode),
			zap.Duration("latency", time.Since(start)),
		)
		return &HTTPError{Endpoint: endpoint, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			c.log.Error("API response could not be decoded",
				zap.String("endpoint", endpoint),
				zap.Error(err),
			)
			return &DecodeError{Endpoint: endpoint, Err: err}
		}
	}

	c.log.Debug("API call completed",
		zap.String("method", method),
		zap.String("endpoint", endpoint),
		zap.Int("status_code", resp.StatusCode),
		zap.Duration("latency", time.Since(start)),
	)

	return nil
}
