package ports

import "context"

// SongMeta is the artist/title pair resolved from a streaming-service URL.
type SongMeta struct {
	Artist string
	Title  string
}

// VideoMetadata resolves best-effort song metadata for a video ID.
type VideoMetadata interface {
	GetVideoMetadata(ctx context.Context, videoID string) (SongMeta, error)
}

// TrackMetadata resolves song metadata for a music-service track ID.
type TrackMetadata interface {
	GetTrackMetadata(ctx context.Context, trackID string) (SongMeta, error)
}
