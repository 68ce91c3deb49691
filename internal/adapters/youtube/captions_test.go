package youtube

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/OCNGill/what-do-those-song-lyrics-mean-gui/internal/core/ports"
)

func TestFetchCaptions(t *testing.T) {
	var servedTrack string
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	defer srv.Close()

	mux.HandleFunc("/watch", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("v") {
		case "manual1":
			fmt.Fprintf(w, `<html>{"captionTracks":[{"baseUrl":"%s/timedtext/asr","languageCode":"en","kind":"asr"},{"baseUrl":"%s/timedtext/manual","languageCode":"en"}]}</html>`, srv.URL, srv.URL)
		case "asronly1":
			fmt.Fprintf(w, `<html>{"captionTracks":[{"baseUrl":"%s/timedtext/asr","languageCode":"en","kind":"asr"}]}</html>`, srv.URL)
		case "nocaps1":
			fmt.Fprint(w, `<html>no player response here</html>`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	mux.HandleFunc("/timedtext/", func(w http.ResponseWriter, r *http.Request) {
		servedTrack = r.URL.Path
		fmt.Fprint(w, `<?xml version="1.0" encoding="utf-8"?><transcript><text start="0" dur="2">We don&#39;t need   no education</text><text start="2" dur="2"></text><text start="4" dur="2">We don&amp;t need no thought control</text></transcript>`)
	})

	client := NewClient(srv.Client(), srv.URL)

	t.Run("Manual track preferred over auto-generated", func(t *testing.T) {
		text, err := client.FetchCaptions(context.Background(), "manual1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if servedTrack != "/timedtext/manual" {
			t.Fatalf("expected the manual track, fetched %q", servedTrack)
		}
		want := "We don't need no education\nWe don&t need no thought control"
		if text != want {
			t.Fatalf("unexpected text:\n%q\nwant:\n%q", text, want)
		}
	})

	t.Run("Auto-generated track used when nothing else exists", func(t *testing.T) {
		text, err := client.FetchCaptions(context.Background(), "asronly1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if servedTrack != "/timedtext/asr" {
			t.Fatalf("expected the asr track, fetched %q", servedTrack)
		}
		if text == "" {
			t.Fatal("expected non-empty text")
		}
	})

	t.Run("No caption tracks", func(t *testing.T) {
		_, err := client.FetchCaptions(context.Background(), "nocaps1")
		if !errors.Is(err, ports.ErrNoCaptions) {
			t.Fatalf("expected ErrNoCaptions, got %v", err)
		}
	})

	t.Run("Watch page error", func(t *testing.T) {
		_, err := client.FetchCaptions(context.Background(), "missing1")
		if err == nil {
			t.Fatal("expected an error for a missing video")
		}
	})
}

func TestPickCaptionTrack(t *testing.T) {
	tests := []struct {
		name   string
		tracks []captionTrack
		want   string // baseUrl of the expected pick, "" for none
	}{
		{
			name: "Manual english wins",
			tracks: []captionTrack{
				{BaseURL: "asr-en", LanguageCode: "en", Kind: "asr"},
				{BaseURL: "manual-en", LanguageCode: "en"},
			},
			want: "manual-en",
		},
		{
			name: "ASR english over foreign manual",
			tracks: []captionTrack{
				{BaseURL: "manual-de", LanguageCode: "de"},
				{BaseURL: "asr-en", LanguageCode: "en", Kind: "asr"},
			},
			want: "asr-en",
		},
		{
			name: "Foreign manual as last resort",
			tracks: []captionTrack{
				{BaseURL: "manual-de", LanguageCode: "de"},
				{BaseURL: "asr-fr", LanguageCode: "fr", Kind: "asr"},
			},
			want: "manual-de",
		},
		{
			name:   "Nothing usable",
			tracks: []captionTrack{{LanguageCode: "en"}},
			want:   "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := pickCaptionTrack(tc.tracks)
			if tc.want == "" {
				if got != nil {
					t.Fatalf("expected no track, got %+v", got)
				}
				return
			}
			if got == nil || got.BaseURL != tc.want {
				t.Fatalf("expected track %q, got %+v", tc.want, got)
			}
		})
	}
}

func TestParseTimedText_EmptyTranscript(t *testing.T) {
	_, err := parseTimedText([]byte(`<transcript><text start="0" dur="1">   </text></transcript>`))
	if !errors.Is(err, ports.ErrNoCaptions) {
		t.Fatalf("expected ErrNoCaptions for a blank transcript, got %v", err)
	}
}
