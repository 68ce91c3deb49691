package youtube

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/OCNGill/what-do-those-song-lyrics-mean-gui/internal/core/ports"
)

// captionTracksPattern grabs the caption track list out of the player
// response JSON embedded in the watch page. The array never nests further
// arrays, so a non-greedy match is safe.
var captionTracksPattern = regexp.MustCompile(`"captionTracks":(\[.*?\])`)

type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"` // "asr" for auto-generated tracks
}

type timedText struct {
	Lines []struct {
		Text string `xml:",chardata"`
	} `xml:"text"`
}

// FetchCaptions returns the text track of a video, preferring a manually
// uploaded English track over auto-generated captions. Videos without any
// track return ports.ErrNoCaptions.
func (c *Client) FetchCaptions(ctx context.Context, videoID string) (string, error) {
	page, err := c.fetchWatchPage(ctx, videoID)
	if err != nil {
		return "", err
	}

	match := captionTracksPattern.FindStringSubmatch(page)
	if match == nil {
		return "", ports.ErrNoCaptions
	}

	var tracks []captionTrack
	if err := json.Unmarshal([]byte(match[1]), &tracks); err != nil {
		return "", fmt.Errorf("youtube: decode caption tracks: %w", err)
	}

	track := pickCaptionTrack(tracks)
	if track == nil {
		return "", ports.ErrNoCaptions
	}

	return c.fetchTrack(ctx, track.BaseURL)
}

func (c *Client) fetchWatchPage(ctx context.Context, videoID string) (string, error) {
	url := fmt.Sprintf("%s/watch?v=%s", c.baseURL, videoID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("youtube: build watch request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("youtube: fetch watch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("youtube: watch page status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("youtube: read watch page: %w", err)
	}

	return string(body), nil
}

// pickCaptionTrack prefers manual English, then auto-generated English,
// then whatever manual track exists, then nothing.
func pickCaptionTrack(tracks []captionTrack) *captionTrack {
	var asrEnglish *captionTrack
	var anyManual *captionTrack

	for i := range tracks {
		t := &tracks[i]
		if t.BaseURL == "" {
			continue
		}
		english := strings.HasPrefix(t.LanguageCode, "en")
		if t.Kind != "asr" {
			if english {
				return t
			}
			if anyManual == nil {
				anyManual = t
			}
			continue
		}
		if english && asrEnglish == nil {
			asrEnglish = t
		}
	}

	if asrEnglish != nil {
		return asrEnglish
	}
	return anyManual
}

func (c *Client) fetchTrack(ctx context.Context, trackURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, trackURL, nil)
	if err != nil {
		return "", fmt.Errorf("youtube: build track request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("youtube: fetch caption track: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("youtube: caption track status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("youtube: read caption track: %w", err)
	}

	return parseTimedText(body)
}

// parseTimedText flattens the timedtext XML into one line per cue, with
// whitespace collapsed inside each line and empty cues dropped.
func parseTimedText(raw []byte) (string, error) {
	var doc timedText
	if err := xml.Unmarshal(raw, &doc); err != nil {
		return "", fmt.Errorf("youtube: parse caption xml: %w", err)
	}

	lines := make([]string, 0, len(doc.Lines))
	for _, cue := range doc.Lines {
		line := strings.Join(strings.Fields(html.UnescapeString(cue.Text)), " ")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}

	if len(lines) == 0 {
		return "", ports.ErrNoCaptions
	}

	return strings.Join(lines, "\n"), nil
}
