package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/OCNGill/what-do-those-song-lyrics-mean-gui/internal/core/domain"
	"github.com/OCNGill/what-do-those-song-lyrics-mean-gui/internal/core/services"
)

type interpretRequest struct {
	Lyrics string `json:"lyrics"`
	Source string `json:"source,omitempty"`
	Query  string `json:"query,omitempty"`
	Artist string `json:"artist,omitempty"`
	Title  string `json:"title,omitempty"`
	Local  bool   `json:"local"`
}

type interpretResponse struct {
	Interpretation string `json:"interpretation"`
	Backend        string `json:"backend"`
	Model          string `json:"model"`
}

// Interpret handles POST /api/interpret: one lyric text, one backend call.
// Lyrics arriving without a source tag were pasted by the user.
func (h *Handler) Interpret(w http.ResponseWriter, r *http.Request) {
	var req interpretRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	source := domain.LyricSourceTag(req.Source)
	if source == "" {
		source = domain.SourceManual
	}

	result, err := h.svc.Interpret(r.Context(), domain.InterpretationRequest{
		Lyrics:   req.Lyrics,
		Source:   source,
		Query:    req.Query,
		Artist:   req.Artist,
		Title:    req.Title,
		UseLocal: req.Local,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmptyLyrics) {
			writeError(w, http.StatusBadRequest, "lyrics are required")
			return
		}
		var backendErr *services.BackendError
		if errors.As(err, &backendErr) {
			writeErrorWithCode(w, http.StatusBadGateway, backendErr.Error(), "BACKEND_"+strings.ToUpper(string(backendErr.Backend)))
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, interpretResponse{
		Interpretation: result.Text,
		Backend:        string(result.Backend),
		Model:          result.Model,
	})
}
