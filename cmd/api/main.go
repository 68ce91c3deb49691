package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/OCNGill/what-do-those-song-lyrics-mean-gui/internal/adapters/azlyrics"
	"github.com/OCNGill/what-do-those-song-lyrics-mean-gui/internal/adapters/genius"
	"github.com/OCNGill/what-do-those-song-lyrics-mean-gui/internal/adapters/groq"
	"github.com/OCNGill/what-do-those-song-lyrics-mean-gui/internal/adapters/lrclib"
	"github.com/OCNGill/what-do-those-song-lyrics-mean-gui/internal/adapters/memory"
	"github.com/OCNGill/what-do-those-song-lyrics-mean-gui/internal/adapters/ollama"
	"github.com/OCNGill/what-do-those-song-lyrics-mean-gui/internal/adapters/rest"
	"github.com/OCNGill/what-do-those-song-lyrics-mean-gui/internal/adapters/spotify"
	"github.com/OCNGill/what-do-those-song-lyrics-mean-gui/internal/adapters/sqlite"
	"github.com/OCNGill/what-do-those-song-lyrics-mean-gui/internal/adapters/youtube"
	"github.com/OCNGill/what-do-those-song-lyrics-mean-gui/internal/config"
	"github.com/OCNGill/what-do-those-song-lyrics-mean-gui/internal/core/ports"
	"github.com/OCNGill/what-do-those-song-lyrics-mean-gui/internal/core/services"
)

func main() {
	cfg := config.Load()

	// Driven adapters. Everything is optional except YouTube and the local
	// backend, which need no credentials.
	youtubeClient := youtube.NewClient(nil, "")

	var trackMeta ports.TrackMetadata
	if cfg.HasSpotify() {
		trackMeta = spotify.NewClient(cfg.SpotifyClientID, cfg.SpotifyClientSecret, "", "")
	} else {
		log.Println("INFO: no Spotify credentials, Spotify URLs will be rejected")
	}

	providers := buildLyricProviders(cfg)
	if len(providers) == 0 {
		log.Fatal("FATAL: no lyric providers configured (check LYRIC_SOURCES)")
	}

	var cloud ports.Interpreter
	if cfg.HasCloudBackend() {
		cloud = groq.NewClient(nil, "", cfg.GroqAPIKey)
	} else {
		log.Println("INFO: no GROQ_API_KEY, defaulting to the local backend")
	}
	local := ollama.NewClient(cfg.OllamaHost, cfg.OllamaModel)

	var history ports.HistoryRepository
	if cfg.HistoryDBPath != "" {
		dbAdapter, err := sqlite.NewAdapter(cfg.HistoryDBPath)
		if err != nil {
			log.Fatalf("FATAL: failed to initialize history database: %v", err)
		}
		defer dbAdapter.Close()
		history = dbAdapter
	} else {
		history = memory.NewHistory(0)
	}

	// Core service with the adapters injected.
	svc := services.NewOrchestrator(youtubeClient, youtubeClient, trackMeta, providers, cloud, local, history)

	// Driving adapter.
	handler := rest.NewHandler(svc)

	log.Println("------------------------------------------------")
	log.Printf("🎧 Lyric Meaning service is running on http://localhost:%s", cfg.Port)
	log.Println("------------------------------------------------")

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 15 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		err := srv.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErr:
		if err != nil {
			log.Fatal(err)
		}
	case <-ctx.Done():
		log.Println("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown error: %v", err)
		}
	}
}

// buildLyricProviders wires the lyrics providers in the configured order.
// Genius is skipped without a token; unknown names are warned about and
// ignored so a typo cannot silently change the chain.
func buildLyricProviders(cfg config.Config) []ports.LyricsProvider {
	providers := make([]ports.LyricsProvider, 0, len(cfg.LyricSources))
	for _, name := range cfg.LyricSources {
		switch name {
		case "genius":
			if cfg.GeniusToken == "" {
				log.Println("INFO: no GENIUS_ACCESS_TOKEN, skipping the Genius provider")
				continue
			}
			providers = append(providers, genius.NewClient(nil, "", cfg.GeniusToken))
		case "lrclib":
			providers = append(providers, lrclib.NewClient(nil, ""))
		case "azlyrics":
			providers = append(providers, azlyrics.NewClient(nil, ""))
		default:
			log.Printf("WARN: unknown lyric source %q in LYRIC_SOURCES, ignoring", name)
		}
	}
	return providers
}
