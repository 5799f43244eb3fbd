// Package trends retrieves search-interest time series for a term, used to
// judge product seasonality.
package trends

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"
)

// Point is one sample of an interest-over-time series.
type Point struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// Client retrieves interest-over-time series.
type Client interface {
	// InterestOverTime returns the last 12 months of search interest for
	// term in the US market. An unknown term returns an empty series, not
	// an error.
	InterestOverTime(ctx context.Context, term string) ([]Point, error)
}

// Option configures the client.
type Option func(*client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *client) {
		c.httpClient = hc
	}
}

// WithBaseURL sets the interest API base URL.
func WithBaseURL(base string) Option {
	return func(c *client) {
		c.baseURL = base
	}
}

// WithGeo sets the market to query. Defaults to US.
func WithGeo(geo string) Option {
	return func(c *client) {
		c.geo = geo
	}
}

// WithRateLimit sets the outbound requests-per-second limit.
func WithRateLimit(rps float64) Option {
	return func(c *client) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

type client struct {
	httpClient *http.Client
	baseURL    string
	geo        string
	limiter    *rate.Limiter

	mu    sync.Mutex
	cache map[string][]Point
}

const cacheLimit = 128

// NewClient creates an interest client against the given API base URL.
func NewClient(baseURL string, opts ...Option) Client {
	c := &client{
		httpClient: &http.Client{Timeout: 25 * time.Second},
		baseURL:    baseURL,
		geo:        "US",
		limiter:    rate.NewLimiter(rate.Limit(1), 1),
		cache:      make(map[string][]Point, cacheLimit),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type interestResponse struct {
	Points []Point `json:"points"`
}

func (c *client) InterestOverTime(ctx context.Context, term string) ([]Point, error) {
	c.mu.Lock()
	cached, ok := c.cache[term]
	c.mu.Unlock()
	if ok {
		return cached, nil
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, eris.Wrap(err, "trends: rate limit wait")
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/interest", nil)
	if err != nil {
		return nil, eris.Wrap(err, "trends: build request")
	}
	q := req.URL.Query()
	q.Set("term", term)
	q.Set("timeframe", "today 12-m")
	q.Set("geo", c.geo)
	req.URL.RawQuery = q.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, eris.Wrapf(err, "trends: fetch interest for %q", term)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, eris.New(fmt.Sprintf("trends: interest for %q returned status %d", term, resp.StatusCode))
	}

	var parsed interestResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, eris.Wrapf(err, "trends: decode interest for %q", term)
	}

	c.mu.Lock()
	if len(c.cache) >= cacheLimit {
		c.cache = make(map[string][]Point, cacheLimit)
	}
	c.cache[term] = parsed.Points
	c.mu.Unlock()

	return parsed.Points, nil
}
