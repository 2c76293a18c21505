// internal/services/fetcher.go
package services

import (
	"fmt"

	"github.com/ps-vitor/homefolio/internal/config"
	"github.com/ps-vitor/homefolio/internal/scraping"
	"github.com/ps-vitor/homefolio/internal/scraping/collectors/rightmove"
)

// NewFetcher picks the scraping engine named in the config.
func NewFetcher(cfg config.ScrapingConfig) (scraping.Fetcher, error) {
	switch cfg.Engine {
	case config.EngineHTTP, "":
		return scraping.NewHTTPFetcher(
			scraping.WithTimeout(cfg.Timeout),
			scraping.WithUserAgent(cfg.UserAgent),
			scraping.WithRules(cfg.Rules),
		), nil
	case config.EngineColly:
		return rightmove.NewCollector(cfg.UserAgent, cfg.Timeout, cfg.Rules), nil
	default:
		return nil, fmt.Errorf("unknown scraping engine %q", cfg.Engine)
	}
}
