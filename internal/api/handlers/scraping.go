// internal/api/handlers/scraping.go

package handlers

import (
	"errors"
	"net/http"

	"github.com/ps-vitor/homefolio/internal/scraping"
	"github.com/ps-vitor/homefolio/internal/services"
)

type ListingHandler struct {
	listingService *services.ListingService
}

func NewListingHandler(svc *services.ListingService) *ListingHandler {
	return &ListingHandler{listingService: svc}
}

// HandleListing always answers 200: a failed scrape yields the fallback listing.
func (h *ListingHandler) HandleListing(w http.ResponseWriter, r *http.Request) {
	url := r.URL.Query().Get("url")
	if url == "" {
		writeError(w, http.StatusBadRequest, "missing url parameter")
		return
	}

	writeJSON(w, http.StatusOK, h.listingService.GetListing(r.Context(), url))
}

// HandleListingStrict reports scrape failures with their kind instead of falling back.
func (h *ListingHandler) HandleListingStrict(w http.ResponseWriter, r *http.Request) {
	url := r.URL.Query().Get("url")
	if url == "" {
		writeError(w, http.StatusBadRequest, "missing url parameter")
		return
	}

	listing, err := h.listingService.Fetch(r.Context(), url)
	if err != nil {
		status := http.StatusBadGateway
		var se *scraping.Error
		if errors.As(err, &se) && (se.Kind == scraping.KindParse || se.Kind == scraping.KindMissingField) {
			status = http.StatusUnprocessableEntity
		}
		writeJSON(w, status, map[string]string{
			"kind":  scraping.KindOf(err).String(),
			"error": err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, listing)
}
