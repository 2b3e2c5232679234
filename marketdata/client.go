package marketdata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultBaseURL is the production endpoint of the quote provider.
	DefaultBaseURL = "https://www.alphavantage.co"

	fetchAttempts  = 3
	retryDelay     = 2 * time.Second
	requestTimeout = 10 * time.Second

	timestampLayout = "2006-01-02 15:04:05"
)

var (
	// ErrMissingAPIKey is returned when the client is created without an API key.
	ErrMissingAPIKey = errors.New("market data API key is not set")
)

// apiError is a non-retryable upstream failure: the request reached the
// provider and was answered with a non-2xx status.
type apiError struct {
	status int
	body   string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("market data API error: status %d: %s", e.status, e.body)
}

// intradayResponse mirrors the provider's intraday quote payload.
type intradayResponse struct {
	TimeSeries map[string]Bar `json:"Time Series (1min)"`
}

// Client fetches intraday bars from an Alpha Vantage compatible endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	log        *zap.Logger
}

// NewClient creates a quote client. An empty baseURL selects the production endpoint.
func NewClient(baseURL, apiKey string, log *zap.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
		log:        log,
	}, nil
}

// FetchIntraday returns the latest 1-minute bars for the ticker, newest first.
// Transport failures are retried, provider errors are returned immediately.
func (c *Client) FetchIntraday(ctx context.Context, ticker string) ([]Bar, error) {
	query := url.Values{}
	query.Set("function", "TIME_SERIES_INTRADAY")
	query.Set("symbol", ticker)
	query.Set("interval", "1min")
	query.Set("apikey", c.apiKey)
	endpoint := fmt.Sprintf("%s/query?%s", c.baseURL, query.Encode())

	var lastErr error
	for attempt := 1; attempt <= fetchAttempts; attempt++ {
		bars, err := c.fetch(ctx, endpoint)
		if err == nil {
			return bars, nil
		}

		var apiErr *apiError
		if errors.As(err, &apiErr) {
			return nil, err
		}

		lastErr = err
		c.log.Warn("market data fetch failed",
			zap.String("ticker", ticker),
			zap.Int("attempt", attempt),
			zap.Error(err),
		)

		if attempt < fetchAttempts {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(retryDelay):
			}
		}
	}
	return nil, lastErr
}

func (c *Client) fetch(ctx context.Context, endpoint string) ([]Bar, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, &apiError{status: resp.StatusCode, body: string(body)}
	}

	var payload intradayResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode market data: %w", err)
	}

	bars := make([]Bar, 0, len(payload.TimeSeries))
	for timestamp, bar := range payload.TimeSeries {
		ts, err := time.Parse(timestampLayout, timestamp)
		if err != nil {
			// Skip entries with malformed timestamps
			continue
		}
		bar.Timestamp = ts.UTC()
		bars = append(bars, bar)
	}

	sort.Slice(bars, func(i, j int) bool {
		return bars[i].Timestamp.After(bars[j].Timestamp)
	})
	return bars, nil
}
