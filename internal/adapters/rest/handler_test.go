package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/OCNGill/what-do-those-song-lyrics-mean-gui/internal/core/domain"
	"github.com/OCNGill/what-do-those-song-lyrics-mean-gui/internal/core/ports"
	"github.com/OCNGill/what-do-those-song-lyrics-mean-gui/internal/core/services"
)

type stubCaptions struct {
	text string
	err  error
}

func (s *stubCaptions) FetchCaptions(context.Context, string) (string, error) {
	return s.text, s.err
}

type stubVideoMeta struct {
	meta ports.SongMeta
	err  error
}

func (s *stubVideoMeta) GetVideoMetadata(context.Context, string) (ports.SongMeta, error) {
	return s.meta, s.err
}

type stubProvider struct {
	name string
	text string
	err  error
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) SearchLyrics(context.Context, string, string) (string, error) {
	return s.text, s.err
}

type stubInterpreter struct {
	text  string
	model string
	err   error
}

func (s *stubInterpreter) Interpret(context.Context, string) (string, error) {
	return s.text, s.err
}

func (s *stubInterpreter) Model() string { return s.model }

type stubHistory struct {
	saved   []domain.InterpretationRecord
	records []domain.InterpretationRecord
}

func (s *stubHistory) Save(_ context.Context, rec domain.InterpretationRecord) error {
	s.saved = append(s.saved, rec)
	return nil
}

func (s *stubHistory) ListRecent(context.Context, int) ([]domain.InterpretationRecord, error) {
	return s.records, nil
}

type handlerDeps struct {
	captions ports.CaptionSource
	video    ports.VideoMetadata
	track    ports.TrackMetadata
	provider ports.LyricsProvider
	cloud    ports.Interpreter
	local    ports.Interpreter
	history  ports.HistoryRepository
}

func newTestHandler(deps handlerDeps) *Handler {
	if deps.captions == nil {
		deps.captions = &stubCaptions{err: ports.ErrNoCaptions}
	}
	if deps.video == nil {
		deps.video = &stubVideoMeta{err: errors.New("not wired")}
	}
	if deps.local == nil {
		deps.local = &stubInterpreter{text: "a meaning", model: "test-model"}
	}
	if deps.history == nil {
		deps.history = &stubHistory{}
	}

	var providers []ports.LyricsProvider
	if deps.provider != nil {
		providers = append(providers, deps.provider)
	}

	svc := services.NewOrchestrator(deps.captions, deps.video, deps.track, providers, deps.cloud, deps.local, deps.history)
	return NewHandler(svc)
}

func doRequest(t *testing.T, h *Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) errorResponse {
	t.Helper()

	var resp errorResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	return resp
}

func TestHealthCheck(t *testing.T) {
	h := newTestHandler(handlerDeps{})

	rr := doRequest(t, h, http.MethodGet, "/health", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected body %q", rr.Body.String())
	}
}

func TestGetLyrics_FreeTextSearch(t *testing.T) {
	h := newTestHandler(handlerDeps{
		provider: &stubProvider{name: "genius", text: "Ticking away the moments"},
	})

	rr := doRequest(t, h, http.MethodPost, "/api/lyrics", `{"query":"Pink Floyd - Time"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp getLyricsResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if resp.Lyrics != "Ticking away the moments" {
		t.Fatalf("unexpected lyrics %q", resp.Lyrics)
	}
	if resp.Source != string(domain.SourceScrapedPage) {
		t.Fatalf("unexpected source %q", resp.Source)
	}
	if resp.Artist != "Pink Floyd" || resp.Title != "Time" {
		t.Fatalf("unexpected metadata %q / %q", resp.Artist, resp.Title)
	}
}

func TestGetLyrics_EmptyQuery(t *testing.T) {
	h := newTestHandler(handlerDeps{})

	rr := doRequest(t, h, http.MethodPost, "/api/lyrics", `{"query":"  "}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestGetLyrics_Unavailable(t *testing.T) {
	h := newTestHandler(handlerDeps{
		provider: &stubProvider{name: "genius", err: ports.ErrNoLyrics},
	})

	rr := doRequest(t, h, http.MethodPost, "/api/lyrics", `{"query":"Nobody - Nothing"}`)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
	if resp := decodeError(t, rr); resp.Code != errCodeLyricsUnavailable {
		t.Fatalf("expected code %q, got %q", errCodeLyricsUnavailable, resp.Code)
	}
}

func TestGetLyrics_SpotifyNotConfigured(t *testing.T) {
	h := newTestHandler(handlerDeps{})

	rr := doRequest(t, h, http.MethodPost, "/api/lyrics", `{"query":"https://open.spotify.com/track/4u7EnebtmKWzUH433cf5Qv"}`)
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rr.Code, rr.Body.String())
	}
	if resp := decodeError(t, rr); resp.Code != errCodeSpotifyDisabled {
		t.Fatalf("expected code %q, got %q", errCodeSpotifyDisabled, resp.Code)
	}
}

func TestGetLyrics_InvalidBody(t *testing.T) {
	h := newTestHandler(handlerDeps{})

	rr := doRequest(t, h, http.MethodPost, "/api/lyrics", `{not json`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestInterpret(t *testing.T) {
	history := &stubHistory{}
	h := newTestHandler(handlerDeps{
		local:   &stubInterpreter{text: "A meditation on mortality.", model: "llama3.2:3b"},
		history: history,
	})

	rr := doRequest(t, h, http.MethodPost, "/api/interpret",
		`{"lyrics":"Ticking away","source":"caption","query":"Pink Floyd - Time","local":true}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp interpretResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if resp.Interpretation != "A meditation on mortality." {
		t.Fatalf("unexpected interpretation %q", resp.Interpretation)
	}
	if resp.Backend != string(domain.BackendLocal) {
		t.Fatalf("unexpected backend %q", resp.Backend)
	}
	if resp.Model != "llama3.2:3b" {
		t.Fatalf("unexpected model %q", resp.Model)
	}

	if len(history.saved) != 1 {
		t.Fatalf("expected 1 history record, got %d", len(history.saved))
	}
	if history.saved[0].Source != domain.SourceCaption {
		t.Fatalf("unexpected source in history: %q", history.saved[0].Source)
	}
}

func TestInterpret_MissingSourceDefaultsToManual(t *testing.T) {
	history := &stubHistory{}
	h := newTestHandler(handlerDeps{history: history})

	rr := doRequest(t, h, http.MethodPost, "/api/interpret", `{"lyrics":"pasted by hand"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if len(history.saved) != 1 || history.saved[0].Source != domain.SourceManual {
		t.Fatalf("expected manual source in history, got %+v", history.saved)
	}
}

func TestInterpret_EmptyLyrics(t *testing.T) {
	h := newTestHandler(handlerDeps{})

	rr := doRequest(t, h, http.MethodPost, "/api/interpret", `{"lyrics":"   "}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestInterpret_BackendFailure(t *testing.T) {
	h := newTestHandler(handlerDeps{
		local: &stubInterpreter{err: errors.New("connection refused"), model: "llama3.2:3b"},
	})

	rr := doRequest(t, h, http.MethodPost, "/api/interpret", `{"lyrics":"some lyrics","local":true}`)
	if rr.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d: %s", rr.Code, rr.Body.String())
	}
	if resp := decodeError(t, rr); resp.Code != "BACKEND_LOCAL" {
		t.Fatalf("expected code BACKEND_LOCAL, got %q", resp.Code)
	}
}

func TestGetHistory(t *testing.T) {
	history := &stubHistory{
		records: []domain.InterpretationRecord{
			{
				ID:             "rec-1",
				Query:          "Pink Floyd - Time",
				Source:         domain.SourceLyricsAPI,
				Interpretation: "a meaning",
				Backend:        domain.BackendCloud,
				CreatedAt:      time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC),
			},
		},
	}
	h := newTestHandler(handlerDeps{history: history})

	rr := doRequest(t, h, http.MethodGet, "/api/history", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var entries []historyEntry
	if err := json.NewDecoder(rr.Body).Decode(&entries); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].ID != "rec-1" || entries[0].Backend != string(domain.BackendCloud) {
		t.Fatalf("unexpected entry %+v", entries[0])
	}
}

func TestGetHistory_BadLimit(t *testing.T) {
	h := newTestHandler(handlerDeps{})

	rr := doRequest(t, h, http.MethodGet, "/api/history?limit=zero", "")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}
