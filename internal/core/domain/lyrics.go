package domain

// LyricSourceTag records which acquisition path produced a lyric text.
type LyricSourceTag string

const (
	SourceCaption     LyricSourceTag = "caption"
	SourceScrapedPage LyricSourceTag = "scraped-page"
	SourceLyricsAPI   LyricSourceTag = "lyrics-api"
	SourceManual      LyricSourceTag = "manual"
)

// LyricResult is the resolved lyric text plus where it came from.
// It lives only for the duration of one interpretation flow.
type LyricResult struct {
	Text   string
	Source LyricSourceTag
	// Artist and Title are best-effort metadata resolved along the way;
	// empty when the source (e.g. raw captions) does not expose them.
	Artist string
	Title  string
}
