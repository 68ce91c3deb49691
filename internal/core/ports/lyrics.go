package ports

import (
	"context"
	"errors"
	"fmt"
)

// ErrNoLyrics indicates a lyrics provider completed its lookup but found
// nothing for the requested song. The acquisition chain advances past it.
var ErrNoLyrics = errors.New("no lyrics found")

// NoLyricsError adds the song that was looked up to ErrNoLyrics.
type NoLyricsError struct {
	Provider string
	Artist   string
	Title    string
}

func (e *NoLyricsError) Error() string {
	if e.Artist == "" && e.Title == "" {
		return ErrNoLyrics.Error()
	}
	return fmt.Sprintf("%s: no lyrics found for title %q artist %q", e.Provider, e.Title, e.Artist)
}

func (e *NoLyricsError) Is(target error) bool {
	return target == ErrNoLyrics
}

// ErrNoCaptions indicates a video exists but carries no usable subtitle track.
var ErrNoCaptions = errors.New("no captions available")

// LyricsProvider looks up lyric text keyed by artist and title. Artist may
// be empty for a bare-title search; providers that cannot work without an
// artist return ErrNoLyrics.
type LyricsProvider interface {
	Name() string
	SearchLyrics(ctx context.Context, artist, title string) (string, error)
}

// CaptionSource extracts the embedded text track of a streaming video.
type CaptionSource interface {
	FetchCaptions(ctx context.Context, videoID string) (string, error)
}
