package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/OCNGill/what-do-those-song-lyrics-mean-gui/internal/core/domain"
	"github.com/OCNGill/what-do-those-song-lyrics-mean-gui/internal/core/services"
)

const (
	errCodeLyricsUnavailable = "LYRICS_UNAVAILABLE"
	errCodeSpotifyDisabled   = "SPOTIFY_NOT_CONFIGURED"
)

type getLyricsRequest struct {
	Query string `json:"query"`
}

type getLyricsResponse struct {
	Lyrics string `json:"lyrics"`
	Source string `json:"source"`
	Artist string `json:"artist,omitempty"`
	Title  string `json:"title,omitempty"`
}

// GetLyrics handles POST /api/lyrics: it runs the acquisition chain for
// one query and returns the first non-empty result.
func (h *Handler) GetLyrics(w http.ResponseWriter, r *http.Request) {
	var req getLyricsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.svc.GetLyrics(r.Context(), req.Query)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyQuery):
			writeError(w, http.StatusBadRequest, "query is required")
		case errors.Is(err, services.ErrSpotifyNotConfigured):
			writeErrorWithCode(w, http.StatusUnprocessableEntity, err.Error(), errCodeSpotifyDisabled)
		case errors.Is(err, domain.ErrLyricsUnavailable):
			writeErrorWithCode(w, http.StatusNotFound,
				"could not find lyrics for this query; try the \"Artist - Song\" form or paste lyrics manually",
				errCodeLyricsUnavailable)
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, getLyricsResponse{
		Lyrics: result.Text,
		Source: string(result.Source),
		Artist: result.Artist,
		Title:  result.Title,
	})
}
