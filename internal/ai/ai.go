package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/matheuskafuri/paknews/internal/config"
)

// ErrNotConfigured is returned when enrichment is requested without a provider.
var ErrNotConfigured = errors.New("AI not configured")

// Generator turns a prompt into text using a remote generative model.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// New creates a Generator from the given AI config.
func New(cfg *config.AIConfig, apiKey string) (Generator, error) {
	if cfg == nil || apiKey == "" {
		return nil, ErrNotConfigured
	}

	client := &http.Client{Timeout: 30 * time.Second}

	switch cfg.Provider {
	case "", "gemini":
		return &geminiProvider{
			apiKey:  apiKey,
			model:   orDefault(cfg.Model, "gemini-2.5-flash"),
			baseURL: orDefault(cfg.BaseURL, "https://generativelanguage.googleapis.com"),
			client:  client,
		}, nil
	case "claude":
		return &claudeProvider{
			apiKey:  apiKey,
			model:   orDefault(cfg.Model, "claude-haiku-4-5-20251001"),
			baseURL: orDefault(cfg.BaseURL, "https://api.anthropic.com"),
			client:  client,
		}, nil
	case "openai":
		return &openaiProvider{
			apiKey:  apiKey,
			model:   orDefault(cfg.Model, "gpt-4o-mini"),
			baseURL: orDefault(cfg.BaseURL, "https://api.openai.com"),
			client:  client,
		}, nil
	default:
		return nil, fmt.Errorf("unknown AI provider: %q (valid: gemini, claude, openai)", cfg.Provider)
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return strings.TrimRight(v, "/")
}

// post sends body as JSON and returns the raw response on 200.
func post(ctx context.Context, client *http.Client, name, url string, body any, headers map[string]string) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal %s request: %w", name, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s API error: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("%s API %d: %s", name, resp.StatusCode, strings.TrimSpace(string(b)))
	}
	return io.ReadAll(resp.Body)
}

// --- Gemini provider ---

type geminiProvider struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

func (g *geminiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", g.baseURL, g.model)
	raw, err := post(ctx, g.client, "gemini", url, geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	}, map[string]string{"x-goog-api-key": g.apiKey})
	if err != nil {
		return "", err
	}
	return extractText(raw), nil
}

// --- Claude provider ---

type claudeProvider struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

type claudeRequest struct {
	Model     string        `json:"model"`
	MaxTokens int           `json:"max_tokens"`
	Messages  []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func (c *claudeProvider) Generate(ctx context.Context, prompt string) (string, error) {
	raw, err := post(ctx, c.client, "claude", c.baseURL+"/v1/messages", claudeRequest{
		Model:     c.model,
		MaxTokens: 512,
		Messages:  []chatMessage{{Role: "user", Content: prompt}},
	}, map[string]string{
		"x-api-key":         c.apiKey,
		"anthropic-version": "2023-06-01",
	})
	if err != nil {
		return "", err
	}
	return extractText(raw), nil
}

// --- OpenAI provider ---

type openaiProvider struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

type openaiRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

func (o *openaiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	raw, err := post(ctx, o.client, "openai", o.baseURL+"/v1/chat/completions", openaiRequest{
		Model:    o.model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	}, map[string]string{"Authorization": "Bearer " + o.apiKey})
	if err != nil {
		return "", err
	}
	return extractText(raw), nil
}
