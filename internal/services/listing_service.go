// internal/services/listing_service.go
package services

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ps-vitor/homefolio/internal/domain"
	"github.com/ps-vitor/homefolio/internal/scraping"
	"github.com/ps-vitor/homefolio/pkg/logger"
)

// NoticeMessage is printed once whenever GetListing falls back.
const NoticeMessage = "Oops, are you sure about that URL?"

type ListingService struct {
	fetcher scraping.Fetcher
	notice  io.Writer
	log     *logger.Logger
}

func NewListingService(fetcher scraping.Fetcher, log *logger.Logger) *ListingService {
	if log == nil {
		log = logger.Nop()
	}
	return &ListingService{fetcher: fetcher, notice: os.Stdout, log: log}
}

// SetNoticeWriter redirects the fallback notice, which goes to stdout by default.
func (s *ListingService) SetNoticeWriter(w io.Writer) {
	s.notice = w
}

// Fetch returns the scraped listing or a *scraping.Error describing the failure.
func (s *ListingService) Fetch(ctx context.Context, url string) (domain.Listing, error) {
	listing, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return domain.Listing{}, err
	}
	s.log.Debug("scraped listing ", url)
	return listing, nil
}

// GetListing never fails: any error is reported once on the notice writer
// and replaced by domain.FallbackListing.
func (s *ListingService) GetListing(ctx context.Context, url string) domain.Listing {
	listing, err := s.Fetch(ctx, url)
	if err != nil {
		s.log.With("kind", scraping.KindOf(err).String()).Err(err, "falling back")
		fmt.Fprintln(s.notice, NoticeMessage)
		return domain.FallbackListing()
	}
	return listing
}
