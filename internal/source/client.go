package source

import (
	"context"
	"fmt"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"stablecoin-view/internal/observability"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Default client configuration values.
const (
	DefaultTimeout    = 10 * time.Second
	DefaultMaxRetries = 2
	DefaultRetryDelay = 500 * time.Millisecond
)

// Provider exposes the three upstream feeds the collector consumes.
type Provider interface {
	MarketQuotes(ctx context.Context) ([]MarketQuote, error)
	SupplyReports(ctx context.Context) ([]SupplyReport, error)
	Metadata(ctx context.Context) ([]AssetMetadata, error)
}

// Client is an HTTP implementation of Provider.
type Client struct {
	http       *fasthttp.Client
	baseURL    string
	timeout    time.Duration
	limiter    *rate.Limiter
	maxRetries int
	retryDelay time.Duration
	logger     *zap.Logger
}

// ClientOption configures Client.
type ClientOption func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithRateLimit caps outgoing requests per second with the given burst.
func WithRateLimit(rps float64, burst int) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithMaxRetries sets the number of retries after a failed request.
func WithMaxRetries(n int) ClientOption {
	return func(c *Client) {
		c.maxRetries = n
	}
}

// NewClient creates a provider client for the given base URL.
func NewClient(baseURL string, logger *zap.Logger, opts ...ClientOption) *Client {
	c := &Client{
		http:       &fasthttp.Client{},
		baseURL:    strings.TrimRight(baseURL, "/"),
		timeout:    DefaultTimeout,
		limiter:    rate.NewLimiter(rate.Inf, 0),
		maxRetries: DefaultMaxRetries,
		retryDelay: DefaultRetryDelay,
		logger:     logger.Named("provider"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// MarketQuotes fetches current market data for all tracked assets.
func (c *Client) MarketQuotes(ctx context.Context) ([]MarketQuote, error) {
	var quotes []MarketQuote
	if err := c.getJSON(ctx, "/v1/market", &quotes); err != nil {
		return nil, err
	}
	return quotes, nil
}

// SupplyReports fetches per-network supply data. Providers still on the
// legacy explorer shape are adapted transparently.
func (c *Client) SupplyReports(ctx context.Context) ([]SupplyReport, error) {
	body, err := c.get(ctx, "/v1/supply")
	if err != nil {
		return nil, err
	}

	var reports []SupplyReport
	if err := json.Unmarshal(body, &reports); err == nil && currentShape(reports) {
		return reports, nil
	}

	var legacy []LegacySupplyReport
	if err := json.Unmarshal(body, &legacy); err != nil {
		return nil, fmt.Errorf("unmarshal supply response: %w", err)
	}
	c.logger.Debug("adapting legacy supply shape", zap.Int("reports", len(legacy)))

	adapted := make([]SupplyReport, 0, len(legacy))
	for _, l := range legacy {
		adapted = append(adapted, AdaptLegacySupply(l))
	}
	return adapted, nil
}

// currentShape reports whether a decoded supply response actually carried
// the current fields; the legacy shape also decodes into []SupplyReport but
// leaves everything besides Symbol empty.
func currentShape(reports []SupplyReport) bool {
	for _, r := range reports {
		if r.CirculatingSupply != nil || r.TotalSupply != nil || len(r.NetworkBreakdown) > 0 {
			return true
		}
	}
	return len(reports) == 0
}

// Metadata fetches descriptive asset metadata.
func (c *Client) Metadata(ctx context.Context) ([]AssetMetadata, error) {
	var meta []AssetMetadata
	if err := c.getJSON(ctx, "/v1/metadata", &meta); err != nil {
		return nil, err
	}
	return meta, nil
}

// getJSON performs a GET and decodes the response body into out.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	body, err := c.get(ctx, path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("unmarshal %s response: %w", path, err)
	}
	return nil
}

// get performs a rate-limited GET with bounded retries and returns the
// response body.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	requestURL := c.baseURL + path

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.retryDelay):
			}
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		body, err := c.do(ctx, requestURL)
		if err == nil {
			observability.DefaultMetrics.ProviderRequests.WithLabelValues(path).Inc()
			return body, nil
		}
		lastErr = err
		observability.DefaultMetrics.ProviderErrors.WithLabelValues(path).Inc()
		c.logger.Warn("provider request failed",
			zap.String("url", requestURL),
			zap.Int("attempt", attempt+1),
			zap.Error(err))
	}

	return nil, fmt.Errorf("request to %s failed after %d attempts: %w", requestURL, c.maxRetries+1, lastErr)
}

// do executes a single HTTP round trip.
func (c *Client) do(ctx context.Context, requestURL string) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	req.SetRequestURI(requestURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	if deadline, ok := ctx.Deadline(); ok {
		if err := c.http.DoDeadline(req, resp, deadline); err != nil {
			return nil, err
		}
	} else {
		if err := c.http.DoTimeout(req, resp, c.timeout); err != nil {
			return nil, err
		}
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode())
	}

	// The response body is pooled with the fasthttp response; copy it out.
	body := make([]byte, len(resp.Body()))
	copy(body, resp.Body())
	return body, nil
}

var _ Provider = (*Client)(nil)
