package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/OCNGill/what-do-those-song-lyrics-mean-gui/internal/core/domain"
)

func TestClient_Interpret(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		responseBody string
		wantErr      bool
	}{
		{
			name:         "Success",
			status:       http.StatusOK,
			responseBody: `{"message":{"role":"assistant","content":"A song about lost time."}}`,
			wantErr:      false,
		},
		{
			name:         "Server error",
			status:       http.StatusInternalServerError,
			responseBody: `{"error":"bad"}`,
			wantErr:      true,
		},
		{
			name:         "Model error in body",
			status:       http.StatusOK,
			responseBody: `{"error":"model not found"}`,
			wantErr:      true,
		},
		{
			name:         "Empty content",
			status:       http.StatusOK,
			responseBody: `{"message":{"role":"assistant","content":"  "}}`,
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotRequest chatRequest
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/api/chat" {
					w.WriteHeader(http.StatusNotFound)
					return
				}
				if r.Method != http.MethodPost {
					w.WriteHeader(http.StatusMethodNotAllowed)
					return
				}
				if err := json.NewDecoder(r.Body).Decode(&gotRequest); err != nil {
					w.WriteHeader(http.StatusBadRequest)
					return
				}
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.responseBody))
			}))
			defer srv.Close()

			client := NewClient(srv.URL, "tiny-model")
			text, err := client.Interpret(context.Background(), "some lyrics")

			if (err != nil) != tt.wantErr {
				t.Fatalf("expected err=%v, got %v", tt.wantErr, err)
			}
			if tt.wantErr {
				return
			}
			if gotRequest.Model != "tiny-model" {
				t.Fatalf("expected model tiny-model, got %q", gotRequest.Model)
			}
			if gotRequest.Stream {
				t.Fatalf("streaming must be disabled")
			}
			if len(gotRequest.Messages) != 2 {
				t.Fatalf("expected 2 messages, got %d", len(gotRequest.Messages))
			}
			if gotRequest.Messages[0].Role != "system" || gotRequest.Messages[0].Content != domain.SystemPrompt {
				t.Fatalf("system prompt mismatch")
			}
			if !strings.Contains(gotRequest.Messages[1].Content, "some lyrics") {
				t.Fatalf("lyrics missing from user message")
			}
			if text != "A song about lost time." {
				t.Fatalf("unexpected interpretation %q", text)
			}
		})
	}
}

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient("", "")
	if client.baseURL != defaultBaseURL {
		t.Fatalf("expected default base URL, got %q", client.baseURL)
	}
	if client.Model() != defaultModel {
		t.Fatalf("expected default model, got %q", client.Model())
	}
}
