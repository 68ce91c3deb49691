package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/OCNGill/what-do-those-song-lyrics-mean-gui/internal/core/domain"
	"github.com/OCNGill/what-do-those-song-lyrics-mean-gui/internal/core/ports"
)

// ErrSpotifyNotConfigured is returned for Spotify URLs when no Spotify
// credentials were supplied. The UI tells the user to retry with the
// "Artist - Song" form instead.
var ErrSpotifyNotConfigured = errors.New("service: spotify credentials not configured, use \"Artist - Song\" form instead")

// BackendError tags an interpretation failure with the backend that produced it.
type BackendError struct {
	Backend domain.Backend
	Err     error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("service: %s backend: %v", e.Backend, e.Err)
}

func (e *BackendError) Unwrap() error { return e.Err }

// Orchestrator walks the lyric acquisition chain and routes interpretation
// requests to the selected backend. All dependencies are injected as ports.
type Orchestrator struct {
	captions  ports.CaptionSource
	video     ports.VideoMetadata
	track     ports.TrackMetadata // nil when Spotify credentials are absent
	providers []ports.LyricsProvider
	cloud     ports.Interpreter // nil when no cloud credential is configured
	local     ports.Interpreter
	history   ports.HistoryRepository
}

// NewOrchestrator constructs an Orchestrator. track and cloud may be nil;
// the corresponding paths then report themselves unavailable.
func NewOrchestrator(
	captions ports.CaptionSource,
	video ports.VideoMetadata,
	track ports.TrackMetadata,
	providers []ports.LyricsProvider,
	cloud ports.Interpreter,
	local ports.Interpreter,
	history ports.HistoryRepository,
) *Orchestrator {
	return &Orchestrator{
		captions:  captions,
		video:     video,
		track:     track,
		providers: providers,
		cloud:     cloud,
		local:     local,
		history:   history,
	}
}

// GetLyrics classifies the raw input and tries each applicable source in
// priority order, returning the first non-empty result. Source failures are
// logged and swallowed; only full exhaustion surfaces an error. Identical
// queries repeat the full chain: nothing is cached between calls.
func (o *Orchestrator) GetLyrics(ctx context.Context, raw string) (domain.LyricResult, error) {
	query, err := domain.ClassifyQuery(raw)
	if err != nil {
		return domain.LyricResult{}, err
	}

	switch query.Kind {
	case domain.QueryYouTube:
		return o.lyricsFromVideo(ctx, query)
	case domain.QueryYouTubeMusic:
		return o.lyricsFromMusicVideo(ctx, query)
	case domain.QuerySpotify:
		return o.lyricsFromSpotifyTrack(ctx, query)
	default:
		return o.searchProviders(ctx, query.Artist, query.Title)
	}
}

// lyricsFromVideo handles plain YouTube URLs: captions first, then a
// metadata-driven lyrics lookup when the video has no usable text track.
func (o *Orchestrator) lyricsFromVideo(ctx context.Context, query domain.Query) (domain.LyricResult, error) {
	if query.VideoID == "" {
		return domain.LyricResult{}, fmt.Errorf("service: could not extract video id from %q: %w", query.Raw, domain.ErrLyricsUnavailable)
	}

	text, err := o.captions.FetchCaptions(ctx, query.VideoID)
	if err == nil && strings.TrimSpace(text) != "" {
		return domain.LyricResult{Text: text, Source: domain.SourceCaption}, nil
	}
	if err != nil && !errors.Is(err, ports.ErrNoCaptions) {
		log.Printf("WARN service: caption extraction failed for %s: %v", query.VideoID, err)
	}

	meta, err := o.video.GetVideoMetadata(ctx, query.VideoID)
	if err != nil {
		log.Printf("WARN service: video metadata lookup failed for %s: %v", query.VideoID, err)
		return domain.LyricResult{}, domain.ErrLyricsUnavailable
	}

	return o.searchProviders(ctx, meta.Artist, meta.Title)
}

// lyricsFromMusicVideo handles YouTube Music URLs. Music pages rarely carry
// usable captions, so the metadata-driven lookup runs first and the caption
// track is only a last resort.
func (o *Orchestrator) lyricsFromMusicVideo(ctx context.Context, query domain.Query) (domain.LyricResult, error) {
	if query.VideoID == "" {
		return domain.LyricResult{}, fmt.Errorf("service: could not extract video id from %q: %w", query.Raw, domain.ErrLyricsUnavailable)
	}

	if meta, err := o.video.GetVideoMetadata(ctx, query.VideoID); err == nil {
		if result, err := o.searchProviders(ctx, meta.Artist, meta.Title); err == nil {
			return result, nil
		}
	} else {
		log.Printf("WARN service: video metadata lookup failed for %s: %v", query.VideoID, err)
	}

	text, err := o.captions.FetchCaptions(ctx, query.VideoID)
	if err == nil && strings.TrimSpace(text) != "" {
		return domain.LyricResult{Text: text, Source: domain.SourceCaption}, nil
	}
	if err != nil && !errors.Is(err, ports.ErrNoCaptions) {
		log.Printf("WARN service: caption extraction failed for %s: %v", query.VideoID, err)
	}

	return domain.LyricResult{}, domain.ErrLyricsUnavailable
}

func (o *Orchestrator) lyricsFromSpotifyTrack(ctx context.Context, query domain.Query) (domain.LyricResult, error) {
	if query.TrackID == "" {
		return domain.LyricResult{}, fmt.Errorf("service: could not extract track id from %q: %w", query.Raw, domain.ErrLyricsUnavailable)
	}
	if o.track == nil {
		return domain.LyricResult{}, ErrSpotifyNotConfigured
	}

	meta, err := o.track.GetTrackMetadata(ctx, query.TrackID)
	if err != nil {
		log.Printf("WARN service: spotify metadata lookup failed for %s: %v", query.TrackID, err)
		return domain.LyricResult{}, domain.ErrLyricsUnavailable
	}

	return o.searchProviders(ctx, meta.Artist, meta.Title)
}

// searchProviders runs the configured lyrics providers in order and returns
// the first non-empty hit. Each attempt is a single call: no retries.
func (o *Orchestrator) searchProviders(ctx context.Context, artist, title string) (domain.LyricResult, error) {
	if strings.TrimSpace(title) == "" {
		return domain.LyricResult{}, domain.ErrLyricsUnavailable
	}

	for _, provider := range o.providers {
		text, err := provider.SearchLyrics(ctx, artist, title)
		if err != nil {
			if !errors.Is(err, ports.ErrNoLyrics) {
				log.Printf("WARN service: %s provider failed: %v", provider.Name(), err)
			}
			continue
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		return domain.LyricResult{
			Text:   text,
			Source: providerSourceTag(provider.Name()),
			Artist: artist,
			Title:  title,
		}, nil
	}

	return domain.LyricResult{}, domain.ErrLyricsUnavailable
}

// providerSourceTag maps a provider to the source tag shown to the user:
// API-backed lookups vs. scraped pages.
func providerSourceTag(name string) domain.LyricSourceTag {
	if name == "lrclib" {
		return domain.SourceLyricsAPI
	}
	return domain.SourceScrapedPage
}

// Interpret sends the lyric text to the selected backend and records the
// result in history. Backend failures are surfaced as a BackendError and
// never retried.
func (o *Orchestrator) Interpret(ctx context.Context, req domain.InterpretationRequest) (domain.InterpretationResult, error) {
	if strings.TrimSpace(req.Lyrics) == "" {
		return domain.InterpretationResult{}, domain.ErrEmptyLyrics
	}

	backend, interpreter := o.selectBackend(req.UseLocal)

	text, err := interpreter.Interpret(ctx, req.Lyrics)
	if err != nil {
		return domain.InterpretationResult{}, &BackendError{Backend: backend, Err: err}
	}

	result := domain.InterpretationResult{
		Text:    text,
		Backend: backend,
		Model:   interpreter.Model(),
	}

	record := domain.InterpretationRecord{
		ID:             uuid.NewString(),
		Query:          req.Query,
		Artist:         req.Artist,
		Title:          req.Title,
		Source:         req.Source,
		Lyrics:         req.Lyrics,
		Interpretation: result.Text,
		Backend:        backend,
		CreatedAt:      time.Now().UTC(),
	}
	if err := o.history.Save(ctx, record); err != nil {
		log.Printf("WARN service: failed to record interpretation: %v", err)
	}

	return result, nil
}

// selectBackend applies the backend policy: the local model runs when the
// user asked for it or when no cloud credential was configured.
func (o *Orchestrator) selectBackend(useLocal bool) (domain.Backend, ports.Interpreter) {
	if useLocal || o.cloud == nil {
		return domain.BackendLocal, o.local
	}
	return domain.BackendCloud, o.cloud
}

// History returns the most recent interpretations, newest first.
func (o *Orchestrator) History(ctx context.Context, limit int) ([]domain.InterpretationRecord, error) {
	records, err := o.history.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load history: %w", err)
	}
	return records, nil
}
