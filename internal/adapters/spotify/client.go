// Package spotify resolves track metadata from the Spotify Web API using
// the client-credentials flow. Spotify does not serve lyrics; the resolved
// artist/title pair feeds the lyrics providers downstream.
package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2/clientcredentials"

	"github.com/OCNGill/what-do-those-song-lyrics-mean-gui/internal/core/ports"
)

const (
	defaultAPIBaseURL = "https://api.spotify.com/v1"
	defaultTokenURL   = "https://accounts.spotify.com/api/token"
)

// Client is an HTTP client for the Spotify Web API.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

var _ ports.TrackMetadata = (*Client)(nil)

// NewClient constructs a Spotify client whose requests carry app tokens
// obtained through the client-credentials flow. Empty URLs target the
// public Spotify endpoints.
func NewClient(clientID, clientSecret, apiBaseURL, tokenURL string) *Client {
	if apiBaseURL == "" {
		apiBaseURL = defaultAPIBaseURL
	}
	if tokenURL == "" {
		tokenURL = defaultTokenURL
	}

	conf := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     tokenURL,
	}

	httpClient := conf.Client(context.Background())
	httpClient.Timeout = 15 * time.Second

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(apiBaseURL, "/"),
	}
}

type spotifyTrack struct {
	Name    string `json:"name"`
	Artists []struct {
		Name string `json:"name"`
	} `json:"artists"`
}

// GetTrackMetadata retrieves a track by ID and maps it to a SongMeta.
func (c *Client) GetTrackMetadata(ctx context.Context, trackID string) (ports.SongMeta, error) {
	url := fmt.Sprintf("%s/tracks/%s", c.baseURL, trackID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return ports.SongMeta{}, fmt.Errorf("spotify adapter: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ports.SongMeta{}, fmt.Errorf("spotify adapter: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ports.SongMeta{}, fmt.Errorf("spotify adapter: status %d", resp.StatusCode)
	}

	var tr spotifyTrack
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return ports.SongMeta{}, fmt.Errorf("spotify adapter: %w", err)
	}

	if tr.Name == "" {
		return ports.SongMeta{}, fmt.Errorf("spotify adapter: track %s has no name", trackID)
	}

	return ports.SongMeta{
		Artist: joinArtistNames(tr),
		Title:  tr.Name,
	}, nil
}

func joinArtistNames(track spotifyTrack) string {
	parts := make([]string, 0, len(track.Artists))
	for _, artist := range track.Artists {
		parts = append(parts, artist.Name)
	}
	return strings.Join(parts, ", ")
}
