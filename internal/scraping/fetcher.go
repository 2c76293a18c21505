// internal/scraping/fetcher.go
package scraping

import (
	"context"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/ps-vitor/homefolio/internal/domain"
)

// Fetcher retrieves and extracts a single listing page.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (domain.Listing, error)
}

// HTTPFetcher issues one GET per call and parses the body with goquery.
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
	rules     []Rule
}

type Option func(*HTTPFetcher)

// WithClient replaces the default http.Client.
func WithClient(c *http.Client) Option {
	return func(f *HTTPFetcher) { f.client = c }
}

// WithTimeout bounds the whole request. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *HTTPFetcher) { f.client = &http.Client{Timeout: d} }
}

func WithUserAgent(ua string) Option {
	return func(f *HTTPFetcher) { f.userAgent = ua }
}

// WithRules overrides DefaultRules. An empty set keeps the defaults.
func WithRules(rules []Rule) Option {
	return func(f *HTTPFetcher) {
		if len(rules) > 0 {
			f.rules = rules
		}
	}
}

func NewHTTPFetcher(opts ...Option) *HTTPFetcher {
	f := &HTTPFetcher{
		client: http.DefaultClient,
		rules:  DefaultRules(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (domain.Listing, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.Listing{}, &Error{Kind: KindNetwork, URL: url, Err: err}
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	res, err := f.client.Do(req)
	if err != nil {
		return domain.Listing{}, &Error{Kind: KindNetwork, URL: url, Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return domain.Listing{}, &Error{Kind: KindHTTPStatus, URL: url, StatusCode: res.StatusCode}
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return domain.Listing{}, &Error{Kind: KindParse, URL: url, Err: err}
	}

	listing, err := Extract(doc.Selection, f.rules)
	if err != nil {
		return domain.Listing{}, withURL(err, url)
	}
	return listing, nil
}
