package domain

import "errors"

var (
	// ErrEmptyQuery rejects blank input before any network call happens.
	ErrEmptyQuery = errors.New("domain: empty query")

	// ErrEmptyLyrics rejects interpretation requests with no lyric text.
	ErrEmptyLyrics = errors.New("domain: empty lyrics")

	// ErrLyricsUnavailable is the terminal condition after every
	// acquisition source has been exhausted. Callers never receive
	// partial or fabricated lyric text alongside it.
	ErrLyricsUnavailable = errors.New("domain: lyrics unavailable from all sources")
)
