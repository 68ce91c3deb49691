package genius

import (
	"strings"
	"unicode"
)

const (
	minTitleSimilarity = 0.60
	titleWeight        = 0.7
	artistWeight       = 0.3
)

// noiseTokens are edition/version markers that vary between catalogs and
// should not count against a match.
var noiseTokens = map[string]struct{}{
	"clean":      {},
	"deluxe":     {},
	"edition":    {},
	"edit":       {},
	"explicit":   {},
	"feat":       {},
	"featuring":  {},
	"ft":         {},
	"live":       {},
	"lyrics":     {},
	"mix":        {},
	"mono":       {},
	"official":   {},
	"radio":      {},
	"remaster":   {},
	"remastered": {},
	"stereo":     {},
	"version":    {},
	"video":      {},
}

// scoreHit returns a weighted title/artist similarity for a search hit.
// With no requested artist the title similarity stands alone.
func scoreHit(wantArtist, wantTitle, hitArtist, hitTitle string) float64 {
	normWantTitle := normalizeSearchInput(wantTitle)
	normHitTitle := normalizeSearchInput(hitTitle)
	if normWantTitle == "" || normHitTitle == "" {
		return 0
	}

	titleSim := similarity(normWantTitle, normHitTitle)
	if titleSim < minTitleSimilarity {
		return 0
	}

	normWantArtist := normalizeSearchInput(wantArtist)
	normHitArtist := normalizeSearchInput(hitArtist)
	if normWantArtist == "" || normHitArtist == "" {
		return titleSim
	}

	return titleWeight*titleSim + artistWeight*similarity(normWantArtist, normHitArtist)
}

func normalizeSearchInput(input string) string {
	if input == "" {
		return ""
	}

	lower := strings.ToLower(input)
	filtered := stripBracketedSegments(lower)
	tokens := strings.Fields(cleanSeparators(filtered))

	cleaned := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if _, drop := noiseTokens[token]; drop {
			continue
		}
		cleaned = append(cleaned, token)
	}

	return strings.Join(cleaned, " ")
}

func stripBracketedSegments(input string) string {
	var out strings.Builder
	depth := 0
	for _, r := range input {
		switch r {
		case '(', '[':
			depth++
		case ')', ']':
			if depth > 0 {
				depth--
			}
		default:
			if depth == 0 {
				out.WriteRune(r)
			}
		}
	}

	return out.String()
}

func cleanSeparators(input string) string {
	var out strings.Builder
	lastSpace := false
	for _, r := range input {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			out.WriteRune(r)
			lastSpace = false
			continue
		}
		if !lastSpace {
			out.WriteRune(' ')
			lastSpace = true
		}
	}

	return out.String()
}

func similarity(a string, b string) float64 {
	if a == b {
		return 1.0
	}
	maxLen := max(len([]rune(a)), len([]rune(b)))
	if maxLen == 0 {
		return 1.0
	}

	distance := levenshteinDistance(a, b)
	return 1.0 - float64(distance)/float64(maxLen)
}

func levenshteinDistance(a string, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := 0; j <= len(rb); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 0
			if ra[i-1] != rb[j-1] {
				cost = 1
			}
			curr[j] = min(
				prev[j]+1,
				curr[j-1]+1,
				prev[j-1]+cost,
			)
		}
		copy(prev, curr)
	}

	return prev[len(rb)]
}
