// Package groq provides the cloud interpretation backend. Groq exposes an
// OpenAI-compatible chat-completions API; one request per interpretation,
// no streaming, no retries.
package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/OCNGill/what-do-those-song-lyrics-mean-gui/internal/core/domain"
	"github.com/OCNGill/what-do-those-song-lyrics-mean-gui/internal/core/ports"
)

const (
	defaultBaseURL = "https://api.groq.com"
	modelName      = "llama-3.1-70b-versatile"
	temperature    = 0.5
	maxTokens      = 600
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

var _ ports.Interpreter = (*Client)(nil)

// NewClient constructs a Groq client. apiKey is the caller-supplied
// credential; an empty baseURL targets api.groq.com.
func NewClient(httpClient *http.Client, baseURL, apiKey string) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
	}
}

func (c *Client) Model() string { return modelName }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
	Messages    []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Interpret sends the lyric text with the fixed prompt to the Groq API.
func (c *Client) Interpret(ctx context.Context, lyrics string) (string, error) {
	payload := chatRequest{
		Model:       modelName,
		Temperature: temperature,
		MaxTokens:   maxTokens,
		Messages: []chatMessage{
			{Role: "system", Content: domain.SystemPrompt},
			{Role: "user", Content: domain.BuildUserPrompt(lyrics)},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("groq: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/openai/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("groq: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("groq: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return "", fmt.Errorf("groq: invalid API key (status %d)", resp.StatusCode)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return "", fmt.Errorf("groq: rate limited (status %d)", resp.StatusCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("groq: unexpected status %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("groq: decode response: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("groq: %s", parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 || strings.TrimSpace(parsed.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("groq: empty response")
	}

	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}
