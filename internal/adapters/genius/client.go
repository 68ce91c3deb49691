// Package genius implements the Genius lyrics provider: song search via the
// Genius API (requires an access token) followed by a scrape of the public
// lyrics page, since the API itself does not return lyric text.
package genius

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/OCNGill/what-do-those-song-lyrics-mean-gui/internal/core/ports"
)

const defaultAPIBaseURL = "https://api.genius.com"

// minHitScore rejects search hits that are clearly a different song.
const minHitScore = 0.70

// Client is the Genius API + page-scrape provider.
type Client struct {
	httpClient *http.Client
	apiBaseURL string
	token      string
}

var _ ports.LyricsProvider = (*Client)(nil)

// NewClient constructs a Genius client. token must be a Genius API access
// token; an empty apiBaseURL targets api.genius.com.
func NewClient(httpClient *http.Client, apiBaseURL, token string) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	if apiBaseURL == "" {
		apiBaseURL = defaultAPIBaseURL
	}
	return &Client{
		httpClient: httpClient,
		apiBaseURL: strings.TrimRight(apiBaseURL, "/"),
		token:      token,
	}
}

func (c *Client) Name() string { return "genius" }

type searchResponse struct {
	Response struct {
		Hits []struct {
			Result struct {
				Title         string `json:"title"`
				URL           string `json:"url"`
				PrimaryArtist struct {
					Name string `json:"name"`
				} `json:"primary_artist"`
			} `json:"result"`
		} `json:"hits"`
	} `json:"response"`
}

// SearchLyrics looks the song up on the Genius API, picks the best-scoring
// hit and scrapes its lyrics page.
func (c *Client) SearchLyrics(ctx context.Context, artist, title string) (string, error) {
	pageURL, err := c.findSongURL(ctx, artist, title)
	if err != nil {
		return "", err
	}

	lyrics, err := c.scrapeLyricsPage(ctx, pageURL)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(lyrics) == "" {
		return "", &ports.NoLyricsError{Provider: "genius", Artist: artist, Title: title}
	}

	return lyrics, nil
}

func (c *Client) findSongURL(ctx context.Context, artist, title string) (string, error) {
	query := strings.TrimSpace(artist + " " + title)
	endpoint := fmt.Sprintf("%s/search?q=%s", c.apiBaseURL, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("genius: build search request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("genius: search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("genius: search status %d", resp.StatusCode)
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("genius: decode search response: %w", err)
	}

	bestScore := 0.0
	bestURL := ""
	for _, hit := range parsed.Response.Hits {
		score := scoreHit(artist, title, hit.Result.PrimaryArtist.Name, hit.Result.Title)
		if score >= minHitScore && score > bestScore {
			bestScore = score
			bestURL = hit.Result.URL
		}
	}

	if bestURL == "" {
		return "", &ports.NoLyricsError{Provider: "genius", Artist: artist, Title: title}
	}

	return bestURL, nil
}
