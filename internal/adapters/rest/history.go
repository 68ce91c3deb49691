package rest

import (
	"net/http"
	"strconv"
	"time"
)

const defaultHistoryLimit = 20

type historyEntry struct {
	ID             string    `json:"id"`
	Query          string    `json:"query"`
	Artist         string    `json:"artist,omitempty"`
	Title          string    `json:"title,omitempty"`
	Source         string    `json:"source"`
	Interpretation string    `json:"interpretation"`
	Backend        string    `json:"backend"`
	CreatedAt      time.Time `json:"created_at"`
}

// GetHistory handles GET /api/history?limit=N, newest first.
func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	records, err := h.svc.History(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	entries := make([]historyEntry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, historyEntry{
			ID:             rec.ID,
			Query:          rec.Query,
			Artist:         rec.Artist,
			Title:          rec.Title,
			Source:         string(rec.Source),
			Interpretation: rec.Interpretation,
			Backend:        string(rec.Backend),
			CreatedAt:      rec.CreatedAt,
		})
	}

	writeJSON(w, http.StatusOK, entries)
}
