// Package azlyrics scrapes azlyrics.com lyric pages. The site is keyless
// and URL-addressable: /lyrics/<artist-slug>/<title-slug>.html, where slugs
// are the lowercased names stripped of everything non-alphanumeric.
package azlyrics

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/OCNGill/what-do-those-song-lyrics-mean-gui/internal/core/ports"
)

const defaultBaseURL = "https://www.azlyrics.com"

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// minLyricsLength filters navigation and boilerplate divs: the lyric block
// is the only long multi-line unclassed div on the page.
const minLyricsLength = 200

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

func (c *Client) Name() string { return "azlyrics" }

// SearchLyrics fetches the slugged lyric page. The site offers no search
// endpoint, so an empty artist means no lookup is possible.
func (c *Client) SearchLyrics(ctx context.Context, artist, title string) (string, error) {
	artistSlug := slugify(artist)
	titleSlug := slugify(title)
	if artistSlug == "" || titleSlug == "" {
		return "", &ports.NoLyricsError{Provider: "azlyrics", Artist: artist, Title: title}
	}

	pageURL := fmt.Sprintf("%s/lyrics/%s/%s.html", c.baseURL, artistSlug, titleSlug)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("azlyrics: build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("azlyrics: fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", &ports.NoLyricsError{Provider: "azlyrics", Artist: artist, Title: title}
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("azlyrics: page status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("azlyrics: parse page: %w", err)
	}

	lyrics := extractLyricsDiv(doc)
	if lyrics == "" {
		return "", &ports.NoLyricsError{Provider: "azlyrics", Artist: artist, Title: title}
	}

	return lyrics, nil
}

// extractLyricsDiv finds the lyric block: a div with neither class nor id
// holding a long multi-line text.
func extractLyricsDiv(doc *goquery.Document) string {
	var lyrics string
	doc.Find("div").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if _, hasClass := sel.Attr("class"); hasClass {
			return true
		}
		if _, hasID := sel.Attr("id"); hasID {
			return true
		}
		text := strings.TrimSpace(sel.Text())
		if len(text) > minLyricsLength && strings.Contains(text, "\n") {
			lyrics = text
			return false
		}
		return true
	})
	return lyrics
}

func slugify(input string) string {
	var out strings.Builder
	for _, r := range strings.ToLower(input) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			out.WriteRune(r)
		}
	}
	return out.String()
}
