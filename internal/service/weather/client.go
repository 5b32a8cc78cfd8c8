package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	applog "github.com/janisto/lazydrobe/internal/platform/logging"
	"github.com/janisto/lazydrobe/internal/platform/timeutil"
)

const (
	defaultBaseURL = "https://weather.visualcrossing.com/VisualCrossingWebServices/rest/services/timeline"
	userAgent      = "lazydrobe"
	maxErrorBody   = 512
)

// Client implements Service using the Visual Crossing timeline API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at another timeline endpoint (useful for testing).
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithAPIKey sets the key sent as the "key" query parameter.
func WithAPIKey(key string) Option {
	return func(c *Client) {
		c.apiKey = key
	}
}

// NewClient creates a forecast client.
func NewClient(httpClient *http.Client, opts ...Option) *Client {
	c := &Client{
		httpClient: httpClient,
		baseURL:    defaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Visual Crossing response, reduced to the fields the widget shows.
type vcForecast struct {
	Days []vcDay `json:"days"`
}

type vcDay struct {
	Datetime string  `json:"datetime"`
	Icon     string  `json:"icon"`
	TempMin  float64 `json:"tempmin"`
	TempMax  float64 `json:"tempmax"`
}

// Forecast requests the next five days for location. Days come back in API order.
func (c *Client) Forecast(ctx context.Context, location string) ([]Day, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, ErrEmptyLocation
	}
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	query := url.Values{}
	query.Set("key", c.apiKey)
	query.Set("unitGroup", "us")
	query.Set("iconSet", "icons2")
	u := c.baseURL + "/" + url.PathEscape(location) + "/next5days?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching forecast: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	applog.LogDebug(ctx, "forecast api response",
		zap.String("location", location),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode != http.StatusOK {
		return nil, c.upstreamError(ctx, resp)
	}

	var body vcForecast
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding forecast response: %w", err)
	}
	if body.Days == nil {
		return nil, ErrNoForecast
	}

	days := make([]Day, 0, len(body.Days))
	for _, d := range body.Days {
		date, err := time.Parse(timeutil.DateOnly, d.Datetime)
		if err != nil {
			return nil, fmt.Errorf("decoding forecast day %q: %w", d.Datetime, err)
		}
		days = append(days, Day{Date: date, MinTemp: d.TempMin, MaxTemp: d.TempMax, Icon: d.Icon})
	}
	return days, nil
}

func (c *Client) upstreamError(ctx context.Context, resp *http.Response) *UpstreamError {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	ue := &UpstreamError{
		Status:     resp.StatusCode,
		RetryAfter: strings.TrimSpace(resp.Header.Get("Retry-After")),
		Message:    strings.TrimSpace(string(raw)),
	}
	switch resp.StatusCode {
	case http.StatusBadRequest, http.StatusNotFound:
		// Visual Crossing answers 400 for locations it cannot resolve.
		ue.Kind, ue.cause = UpstreamErrorKindNotFound, ErrNotFound
	case http.StatusUnauthorized:
		ue.Kind, ue.cause = UpstreamErrorKindUnauthorized, ErrUnauthorized
		applog.LogWarn(ctx, "forecast api key rejected", zap.Int("status", resp.StatusCode))
	case http.StatusTooManyRequests:
		ue.Kind, ue.cause = UpstreamErrorKindRateLimited, ErrRateLimited
		applog.LogWarn(ctx, "forecast api rate limit exceeded",
			zap.Int("status", resp.StatusCode),
			zap.String("Retry-After", ue.RetryAfter),
		)
	default:
		ue.Kind, ue.cause = UpstreamErrorKindUpstream, ErrUpstream
	}
	return ue
}

// Compile-time interface check
var _ Service = (*Client)(nil)
