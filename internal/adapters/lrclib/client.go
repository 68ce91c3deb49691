// Package lrclib implements the LRCLIB lyrics provider. LRCLIB is a public
// lyrics API that needs no credential and returns plain text directly, so
// it slots into the chain as the keyless API-backed source.
package lrclib

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

const defaultBaseURL = "https://lrclib.net"

// Identifying User-Agent per the LRCLIB usage guidelines.
const userAgent = "what-do-those-song-lyrics-mean/1.0"

type Client struct {
	httpClient *http.Client
	baseURL    string
}

var _ ports.LyricsProvider = (*Client)(nil)

func NewClient(httpClient *http.Client, baseURL string) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

func (c *Client) Name() string { return "lrclib" }

type searchResult struct {
	TrackName    string `json:"trackName"`
	ArtistName   string `json:"artistName"`
	PlainLyrics  string `json:"plainLyrics"`
	Instrumental bool   `json:"instrumental"`
}

// SearchLyrics queries the LRCLIB search endpoint and returns the plain
// lyrics of the first non-instrumental hit.
func (c *Client) SearchLyrics(ctx context.Context, artist, title string) (string, error) {
	params := url.Values{}
	params.Set("track_name", title)
	if artist != "" {
		params.Set("artist_name", artist)
	}
	endpoint := fmt.Sprintf("%s/api/search?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("lrclib: build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("lrclib: search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("lrclib: search status %d", resp.StatusCode)
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return "", fmt.Errorf("lrclib: decode search response: %w", err)
	}

	for _, result := range results {
		if result.Instrumental {
			continue
		}
		if text := strings.TrimSpace(result.PlainLyrics); text != "" {
			return text, nil
		}
	}

	return "", &ports.NoLyricsError{Provider: "lrclib", Artist: artist, Title: title}
}
