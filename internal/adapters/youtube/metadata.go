package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/OCNGill/what-do-those-song-lyrics-mean-gui/internal/core/ports"
)

type oembedResponse struct {
	Title      string `json:"title"`
	AuthorName string `json:"author_name"`
}

// GetVideoMetadata resolves a best-effort artist/title pair via the keyless
// oEmbed endpoint. Music uploads usually title themselves "Artist - Song";
// otherwise the uploader name stands in for the artist.
func (c *Client) GetVideoMetadata(ctx context.Context, videoID string) (ports.SongMeta, error) {
	endpoint := fmt.Sprintf("%s/oembed?url=%s&format=json",
		c.baseURL, url.QueryEscape("https://www.youtube.com/watch?v="+videoID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return ports.SongMeta{}, fmt.Errorf("youtube: build oembed request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ports.SongMeta{}, fmt.Errorf("youtube: oembed request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ports.SongMeta{}, fmt.Errorf("youtube: oembed status %d", resp.StatusCode)
	}

	var parsed oembedResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return ports.SongMeta{}, fmt.Errorf("youtube: decode oembed response: %w", err)
	}

	meta := splitVideoTitle(parsed.Title, parsed.AuthorName)
	if meta.Title == "" {
		return ports.SongMeta{}, fmt.Errorf("youtube: no title in oembed response for %s", videoID)
	}
	return meta, nil
}

func splitVideoTitle(videoTitle, uploader string) ports.SongMeta {
	title := strings.TrimSpace(videoTitle)
	// "Artist - Topic" channels are auto-generated music uploads.
	artist := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(uploader), "- Topic"))

	if idx := strings.Index(title, " - "); idx != -1 {
		artist = strings.TrimSpace(title[:idx])
		title = strings.TrimSpace(title[idx+3:])
	}

	return ports.SongMeta{Artist: artist, Title: title}
}
