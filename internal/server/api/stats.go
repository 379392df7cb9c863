package api

import (
	"net/http"
	"strconv"

	"github.com/ayusman/mudra/internal/store"
)

// StatsHandler serves recognition statistics from the sign event log.
type StatsHandler struct {
	store *store.Store
}

// NewStatsHandler creates a new StatsHandler with the given store.
func NewStatsHandler(s *store.Store) *StatsHandler {
	return &StatsHandler{store: s}
}

type eventResponse struct {
	Symbol      string `json:"symbol"`
	ConfirmedAt string `json:"confirmed_at"`
}

type statsResponse struct {
	Counts map[string]int  `json:"counts"`
	Recent []eventResponse `json:"recent"`
}

// ServeHTTP handles GET /api/stats.
func (h *StatsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	counts, err := h.store.Events().CountBySymbol()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to count events")
		return
	}

	events, err := h.store.Events().Recent(limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list events")
		return
	}

	response := statsResponse{
		Counts: counts,
		Recent: make([]eventResponse, 0, len(events)),
	}
	for _, e := range events {
		response.Recent = append(response.Recent, eventResponse{
			Symbol:      e.Symbol,
			ConfirmedAt: e.ConfirmedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}

	writeJSON(w, http.StatusOK, response)
}
