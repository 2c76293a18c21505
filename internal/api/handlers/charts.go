// internal/api/handlers/charts.go

package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/ps-vitor/homefolio/internal/charts"
)

const maxTableBytes = 1 << 20

type ChartsHandler struct {
	renderer *charts.Renderer
}

func NewChartsHandler(renderer *charts.Renderer) *ChartsHandler {
	return &ChartsHandler{renderer: renderer}
}

func (h *ChartsHandler) HandleOutcomes(w http.ResponseWriter, r *http.Request) {
	table, ok := decodeTable(w, r)
	if !ok {
		return
	}

	line, err := h.renderer.Outcomes(table)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var buf bytes.Buffer
	if err := h.renderer.Page(&buf, line); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeHTML(w, buf.Bytes())
}

func (h *ChartsHandler) HandleWealth(w http.ResponseWriter, r *http.Request) {
	table, ok := decodeTable(w, r)
	if !ok {
		return
	}

	line, err := h.renderer.Wealth(table)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var buf bytes.Buffer
	if err := h.renderer.Page(&buf, line); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeHTML(w, buf.Bytes())
}

// HandleOutcomesSVG needs an explicit ?years=N.
func (h *ChartsHandler) HandleOutcomesSVG(w http.ResponseWriter, r *http.Request) {
	years, err := strconv.Atoi(r.URL.Query().Get("years"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "years parameter is required and must be an integer")
		return
	}

	table, ok := decodeTable(w, r)
	if !ok {
		return
	}

	markup, err := h.renderer.OutcomesSVG(table, years)
	if err != nil {
		status := http.StatusInternalServerError
		if isInputError(err) {
			status = http.StatusBadRequest
		}
		writeError(w, status, err.Error())
		return
	}
	writeHTML(w, []byte(markup))
}

func decodeTable(w http.ResponseWriter, r *http.Request) (charts.Table, bool) {
	var table charts.Table
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxTableBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&table); err != nil {
		writeError(w, http.StatusBadRequest, "invalid table: "+err.Error())
		return charts.Table{}, false
	}
	return table, true
}

func isInputError(err error) bool {
	for _, target := range []error{
		charts.ErrNoSeries, charts.ErrEmptyTable, charts.ErrLengthMismatch,
		charts.ErrMissingColumn, charts.ErrInvalidYears, charts.ErrTooFewPoints,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
