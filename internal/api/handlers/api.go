package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

type APIHandler struct {
	listings *ListingHandler
	charts   *ChartsHandler
}

func NewAPIHandler(listings *ListingHandler, charts *ChartsHandler) *APIHandler {
	return &APIHandler{listings: listings, charts: charts}
}

func (h *APIHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.handleHealth).Methods(http.MethodGet)

	// registered on the root router so a wrong method answers 405, not 404
	r.HandleFunc("/api/listing", h.listings.HandleListing).Methods(http.MethodGet)
	r.HandleFunc("/api/listing/strict", h.listings.HandleListingStrict).Methods(http.MethodGet)
	r.HandleFunc("/api/charts/outcomes", h.charts.HandleOutcomes).Methods(http.MethodPost)
	r.HandleFunc("/api/charts/outcomes.svg", h.charts.HandleOutcomesSVG).Methods(http.MethodPost)
	r.HandleFunc("/api/charts/wealth", h.charts.HandleWealth).Methods(http.MethodPost)
}

func (h *APIHandler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeHTML(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
