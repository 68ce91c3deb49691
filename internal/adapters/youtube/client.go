// Package youtube extracts caption tracks and song metadata from YouTube
// watch pages without an API key. Captions come from the timedtext track
// list embedded in the player response; metadata comes from the public
// oEmbed endpoint.
package youtube

import (
	"net/http"
	"strings"
	"time"

	"github.com/OCNGill/what-do-those-song-lyrics-mean-gui/internal/core/ports"
)

const defaultBaseURL = "https://www.youtube.com"

// Browser-like headers keep the watch page from serving the consent shell.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

// Client fetches caption tracks and oEmbed metadata.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

var (
	_ ports.CaptionSource = (*Client)(nil)
	_ ports.VideoMetadata = (*Client)(nil)
)

// NewClient constructs a YouTube client. A nil httpClient gets a default
// with a 15s timeout; an empty baseURL targets youtube.com.
func NewClient(httpClient *http.Client, baseURL string) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}
