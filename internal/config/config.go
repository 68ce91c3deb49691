// Package config reads the environment-driven configuration. Every key is
// optional: without a Groq key interpretation defaults to the local
// backend, without Spotify credentials Spotify URLs are rejected with a
// hint, and without a history path nothing touches disk.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Defaults chosen to match the launcher scripts this service replaces.
const (
	DefaultPort         = "8501"
	DefaultLyricSources = "genius,lrclib,azlyrics"
)

// Config is the full runtime configuration, loaded once at start.
type Config struct {
	Port string

	// Lyric acquisition
	GeniusToken         string
	SpotifyClientID     string
	SpotifyClientSecret string
	LyricSources        []string

	// Interpretation backends
	GroqAPIKey  string
	OllamaHost  string
	OllamaModel string

	// Optional on-disk history
	HistoryDBPath string
}

// Load reads .env (if present) and the process environment.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:                envOr("PORT", DefaultPort),
		GeniusToken:         os.Getenv("GENIUS_ACCESS_TOKEN"),
		SpotifyClientID:     os.Getenv("SPOTIFY_CLIENT_ID"),
		SpotifyClientSecret: os.Getenv("SPOTIFY_CLIENT_SECRET"),
		LyricSources:        splitSources(envOr("LYRIC_SOURCES", DefaultLyricSources)),
		GroqAPIKey:          os.Getenv("GROQ_API_KEY"),
		OllamaHost:          os.Getenv("OLLAMA_HOST"),
		OllamaModel:         os.Getenv("OLLAMA_MODEL"),
		HistoryDBPath:       os.Getenv("HISTORY_DB"),
	}
}

// HasSpotify reports whether the Spotify metadata path can be wired.
func (c Config) HasSpotify() bool {
	return c.SpotifyClientID != "" && c.SpotifyClientSecret != ""
}

// HasCloudBackend reports whether the cloud interpretation backend can be wired.
func (c Config) HasCloudBackend() bool {
	return c.GroqAPIKey != ""
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func splitSources(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if name := strings.ToLower(strings.TrimSpace(part)); name != "" {
			out = append(out, name)
		}
	}
	return out
}
