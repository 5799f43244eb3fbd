// Package reddit searches subreddit posts through Reddit's public JSON API.
package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://www.reddit.com"

// Post is one search result from a subreddit.
type Post struct {
	Subreddit   string `json:"subreddit"`
	Title       string `json:"title"`
	Score       int    `json:"score"`
	NumComments int    `json:"num_comments"`
}

// Client searches subreddits.
type Client interface {
	// Search returns up to limit posts matching query in the given
	// subreddit, most relevant first.
	Search(ctx context.Context, subreddit, query string, limit int) ([]Post, error)
}

// Option configures the client.
type Option func(*client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *client) {
		c.httpClient = hc
	}
}

// WithBaseURL overrides the API base URL.
func WithBaseURL(base string) Option {
	return func(c *client) {
		c.baseURL = base
	}
}

// WithUserAgent sets the User-Agent header. Reddit throttles requests
// without a descriptive one.
func WithUserAgent(ua string) Option {
	return func(c *client) {
		c.userAgent = ua
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
	userAgent  string
	limiter    *rate.Limiter
}

// NewClient creates a Reddit search client throttled to five requests per
// second.
func NewClient(opts ...Option) Client {
	c := &client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    defaultBaseURL,
		userAgent:  "offerscore/1.0",
		limiter:    rate.NewLimiter(rate.Limit(5), 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type searchResponse struct {
	Data struct {
		Children []struct {
			Data Post `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

func (c *client) Search(ctx context.Context, subreddit, query string, limit int) ([]Post, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, eris.Wrap(err, "reddit: rate limit wait")
		}
	}

	endpoint := fmt.Sprintf("%s/r/%s/search.json", c.baseURL, url.PathEscape(subreddit))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, eris.Wrap(err, "reddit: build request")
	}
	q := req.URL.Query()
	q.Set("q", query)
	q.Set("restrict_sr", "1")
	q.Set("limit", strconv.Itoa(limit))
	req.URL.RawQuery = q.Encode()
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, eris.Wrapf(err, "reddit: search r/%s", subreddit)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, eris.New(fmt.Sprintf("reddit: search r/%s returned status %d", subreddit, resp.StatusCode))
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, eris.Wrapf(err, "reddit: decode r/%s response", subreddit)
	}

	posts := make([]Post, 0, len(parsed.Data.Children))
	for _, child := range parsed.Data.Children {
		post := child.Data
		if post.Subreddit == "" {
			post.Subreddit = subreddit
		}
		posts = append(posts, post)
	}
	return posts, nil
}
