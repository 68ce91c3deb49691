package domain

import "strings"

// SystemPrompt frames every interpretation request, regardless of backend.
const SystemPrompt = `You are a knowledgeable music analyst who explains song lyrics with depth,
cultural context, and empathy. Provide:
1. A brief synopsis of the song's theme
2. Key symbolic or metaphorical meanings
3. The emotional or social message conveyed

Keep your response clear, insightful, and under 300 words.`

// maxPromptLyricsLen caps how much lyric text goes into the prompt so the
// request stays inside small-model context windows.
const maxPromptLyricsLen = 4000

// BuildUserPrompt wraps the lyric text into the fixed user message.
func BuildUserPrompt(lyrics string) string {
	lyrics = strings.TrimSpace(lyrics)
	if len(lyrics) > maxPromptLyricsLen {
		lyrics = lyrics[:maxPromptLyricsLen]
	}
	return "Please interpret these song lyrics:\n\n" + lyrics
}
