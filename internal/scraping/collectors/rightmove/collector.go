// internal/scraping/collectors/rightmove/collector.go
package rightmove

import (
	"context"
	"errors"
	"time"

	"github.com/gocolly/colly"

	"github.com/ps-vitor/homefolio/internal/domain"
	"github.com/ps-vitor/homefolio/internal/scraping"
)

const defaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/104.0.5112.102 Safari/537.36"

var errNoDocument = errors.New("response is not an html document")

// Collector fetches a single listing page through colly.
type Collector struct {
	collector *colly.Collector
	rules     []scraping.Rule
}

// NewCollector builds a collector. Revisits are allowed so repeated fetches
// of the same URL behave like independent calls.
func NewCollector(userAgent string, timeout time.Duration, rules []scraping.Rule) *Collector {
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	if len(rules) == 0 {
		rules = scraping.DefaultRules()
	}

	c := colly.NewCollector(
		colly.UserAgent(userAgent),
		colly.AllowURLRevisit(),
	)
	if timeout > 0 {
		c.SetRequestTimeout(timeout)
	}

	return &Collector{collector: c, rules: rules}
}

// Fetch visits url once and extracts the listing from the returned page.
func (p *Collector) Fetch(ctx context.Context, url string) (domain.Listing, error) {
	if err := ctx.Err(); err != nil {
		return domain.Listing{}, &scraping.Error{Kind: scraping.KindNetwork, URL: url, Err: err}
	}

	var (
		listing domain.Listing
		err     error
		parsed  bool
	)

	c := p.collector.Clone()

	c.OnHTML("html", func(e *colly.HTMLElement) {
		if parsed {
			return
		}
		parsed = true
		listing, err = scraping.Extract(e.DOM, p.rules)
	})

	c.OnError(func(r *colly.Response, e error) {
		if r != nil && r.StatusCode != 0 {
			err = &scraping.Error{Kind: scraping.KindHTTPStatus, URL: url, StatusCode: r.StatusCode}
			return
		}
		err = &scraping.Error{Kind: scraping.KindNetwork, URL: url, Err: e}
	})

	if visitErr := c.Visit(url); visitErr != nil && err == nil {
		err = &scraping.Error{Kind: scraping.KindNetwork, URL: url, Err: visitErr}
	}

	c.Wait()

	if err != nil {
		var se *scraping.Error
		if errors.As(err, &se) && se.URL == "" {
			se.URL = url
		}
		return domain.Listing{}, err
	}
	if !parsed {
		return domain.Listing{}, &scraping.Error{Kind: scraping.KindParse, URL: url, Err: errNoDocument}
	}

	return listing, nil
}
