package genius

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const pageUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

var (
	brPattern            = regexp.MustCompile(`<br\s*/?>`)
	sectionHeaderPattern = regexp.MustCompile(`(?m)^\[[^\]\n]+\]$`)
	excessBreaksPattern  = regexp.MustCompile(`\n{3,}`)
)

// scrapeLyricsPage pulls the lyric containers out of a Genius song page.
func (c *Client) scrapeLyricsPage(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("genius: build page request: %w", err)
	}
	req.Header.Set("User-Agent", pageUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("genius: fetch lyrics page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("genius: lyrics page status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("genius: parse lyrics page: %w", err)
	}

	var blocks []string
	doc.Find(`div[data-lyrics-container="true"]`).Each(func(_ int, sel *goquery.Selection) {
		raw, err := sel.Html()
		if err != nil {
			return
		}
		if text := htmlBlockToText(raw); text != "" {
			blocks = append(blocks, text)
		}
	})

	return cleanLyrics(strings.Join(blocks, "\n")), nil
}

// htmlBlockToText converts one lyric container to plain text, keeping the
// line structure the <br> tags encode.
func htmlBlockToText(rawHTML string) string {
	withBreaks := brPattern.ReplaceAllString(rawHTML, "\n")
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(withBreaks))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(doc.Text())
}

// cleanLyrics drops [Verse]/[Chorus] style section headers and collapses
// runs of blank lines.
func cleanLyrics(text string) string {
	text = sectionHeaderPattern.ReplaceAllString(text, "")
	text = excessBreaksPattern.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
