// Package pagefetch fetches sales pages and extracts the content signals the
// scoring pipeline consumes: visible text, title, meta description, headers,
// paragraphs, and a handful of structural flags.
package pagefetch

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"
)

// Client fetches and parses sales pages.
type Client interface {
	// Fetch retrieves the page at url and extracts its content signals.
	// A non-2xx status or unreachable host returns an error.
	Fetch(ctx context.Context, url string) (*Page, error)
}

// Page holds the extracted content of a fetched sales page.
type Page struct {
	URL             string   `json:"url"`
	Title           string   `json:"title"`
	MetaDescription string   `json:"meta_description"`
	H1              string   `json:"h1"`
	Headers         []string `json:"headers"`    // h1 and h2 text
	Paragraphs      []string `json:"paragraphs"` // p text
	Text            string   `json:"text"`       // full visible text

	HasViewportMeta      bool `json:"has_viewport_meta"`
	AnchorCount          int  `json:"anchor_count"`
	HasColorStyledAnchor bool `json:"has_color_styled_anchor"`
	HasVideo             bool `json:"has_video"` // iframe or video element
}

// Option configures the fetcher.
type Option func(*fetcher)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(f *fetcher) {
		f.httpClient = hc
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *fetcher) {
		f.httpClient.Timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(f *fetcher) {
		f.userAgent = ua
	}
}

// WithRateLimit sets the outbound requests-per-second limit.
func WithRateLimit(rps float64) Option {
	return func(f *fetcher) {
		f.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// WithCacheSize bounds the in-memory page cache (0 disables caching).
func WithCacheSize(n int) Option {
	return func(f *fetcher) {
		f.cacheSize = n
	}
}

type fetcher struct {
	httpClient *http.Client
	userAgent  string
	limiter    *rate.Limiter
	cacheSize  int

	mu    sync.Mutex
	cache map[string]*Page
}

// NewClient creates a page fetcher with a 5 second default timeout.
func NewClient(opts ...Option) Client {
	f := &fetcher{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		cacheSize:  16,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.cacheSize > 0 {
		f.cache = make(map[string]*Page, f.cacheSize)
	}
	return f
}

func (f *fetcher) Fetch(ctx context.Context, url string) (*Page, error) {
	if f.cache != nil {
		f.mu.Lock()
		cached, ok := f.cache[url]
		f.mu.Unlock()
		if ok {
			return cached, nil
		}
	}

	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return nil, eris.Wrap(err, "pagefetch: rate limit wait")
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, eris.Wrap(err, "pagefetch: build request")
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "pagefetch: request")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, eris.New(fmt.Sprintf("pagefetch: unexpected status %d for %s", resp.StatusCode, url))
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "pagefetch: parse html")
	}

	page := Extract(doc)
	page.URL = url

	if f.cache != nil {
		f.mu.Lock()
		if len(f.cache) >= f.cacheSize {
			// Cheap eviction: drop everything once full.
			f.cache = make(map[string]*Page, f.cacheSize)
		}
		f.cache[url] = page
		f.mu.Unlock()
	}

	return page, nil
}

// Extract pulls the content signals out of a parsed document.
func Extract(doc *goquery.Document) *Page {
	page := &Page{}

	page.Title = strings.TrimSpace(doc.Find("title").First().Text())
	if meta := doc.Find(`meta[name="description"]`).First(); meta.Length() > 0 {
		page.MetaDescription, _ = meta.Attr("content")
	}
	page.H1 = strings.TrimSpace(doc.Find("h1").First().Text())

	doc.Find("h1, h2").Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			page.Headers = append(page.Headers, text)
		}
	})
	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			page.Paragraphs = append(page.Paragraphs, text)
		}
	})

	page.HasViewportMeta = doc.Find(`meta[name="viewport"]`).Length() > 0
	page.HasVideo = doc.Find("iframe, video").Length() > 0

	doc.Find("a").Each(func(_ int, s *goquery.Selection) {
		page.AnchorCount++
		if style, ok := s.Attr("style"); ok && strings.Contains(strings.ToLower(style), "color") {
			page.HasColorStyledAnchor = true
		}
	})

	// Strip non-content elements before collecting visible text.
	body := doc.Find("body")
	if body.Length() == 0 {
		body = doc.Selection
	}
	clone := body.Clone()
	clone.Find("script, style, noscript").Remove()
	page.Text = strings.Join(strings.Fields(clone.Text()), " ")

	return page
}
