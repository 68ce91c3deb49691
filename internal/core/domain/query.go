package domain

import (
	"regexp"
	"strings"
)

// QueryKind identifies which acquisition strategy applies to a query.
type QueryKind string

const (
	QueryYouTube      QueryKind = "youtube"
	QueryYouTubeMusic QueryKind = "youtube_music"
	QuerySpotify      QueryKind = "spotify"
	QueryFreeText     QueryKind = "free_text"
)

// Query is a classified user input. Immutable once built.
type Query struct {
	Raw     string
	Kind    QueryKind
	VideoID string // set for youtube / youtube_music
	TrackID string // set for spotify
	Artist  string // set for free_text when "Artist - Title" form was used
	Title   string // set for free_text
}

var (
	videoIDPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:youtube\.com/watch\?(?:.*&)?v=|youtu\.be/|youtube\.com/embed/)([^&\n?#/]+)`),
		regexp.MustCompile(`music\.youtube\.com/watch\?(?:.*&)?v=([^&\n?#/]+)`),
	}
	spotifyTrackPatterns = []*regexp.Regexp{
		regexp.MustCompile(`spotify\.com/(?:intl-[a-z]+/)?track/([a-zA-Z0-9]+)`),
		regexp.MustCompile(`spotify:track:([a-zA-Z0-9]+)`),
	}
)

// ClassifyQuery decides which lyric source strategy a raw input maps to.
// First match wins; anything that is not a recognized URL shape is treated
// as free text. ClassifyQuery never performs I/O.
func ClassifyQuery(raw string) (Query, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Query{}, ErrEmptyQuery
	}

	q := Query{Raw: trimmed}
	lower := strings.ToLower(trimmed)

	switch {
	case strings.Contains(lower, "music.youtube.com"):
		q.Kind = QueryYouTubeMusic
		q.VideoID = extractVideoID(trimmed)
	case strings.Contains(lower, "youtube.com") || strings.Contains(lower, "youtu.be"):
		q.Kind = QueryYouTube
		q.VideoID = extractVideoID(trimmed)
	case strings.Contains(lower, "spotify.com") || strings.Contains(lower, "spotify:"):
		q.Kind = QuerySpotify
		q.TrackID = extractSpotifyTrackID(trimmed)
	default:
		q.Kind = QueryFreeText
		q.Artist, q.Title = SplitArtistTitle(trimmed)
	}

	return q, nil
}

// SplitArtistTitle parses the conventional "Artist - Title" form. Input
// without the separator is treated as a bare title.
func SplitArtistTitle(input string) (artist string, title string) {
	if idx := strings.Index(input, " - "); idx != -1 {
		return strings.TrimSpace(input[:idx]), strings.TrimSpace(input[idx+3:])
	}
	return "", strings.TrimSpace(input)
}

func extractVideoID(input string) string {
	for _, pattern := range videoIDPatterns {
		if m := pattern.FindStringSubmatch(input); m != nil {
			return m[1]
		}
	}
	return ""
}

func extractSpotifyTrackID(input string) string {
	for _, pattern := range spotifyTrackPatterns {
		if m := pattern.FindStringSubmatch(input); m != nil {
			return m[1]
		}
	}
	return ""
}
