package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/johnquangdev/meeting-reporter/pkg/config"
)

// GroqClient is a minimal client for the Groq OpenAI-compatible chat API
type GroqClient struct {
	apiKey      string
	baseURL     string
	model       string
	temperature float32
	client      *http.Client
}

// NewGroqClient creates a Groq client using values from the provided config
func NewGroqClient(cfg *config.GroqConfig, temperature float32, timeout time.Duration) *GroqClient {
	base := cfg.BaseURL
	if base == "" {
		base = "https://api.groq.com"
	}
	model := cfg.Model
	if model == "" {
		model = "llama-3.1-70b-versatile"
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &GroqClient{
		apiKey:      cfg.APIKey,
		baseURL:     base,
		model:       model,
		temperature: temperature,
		client:      &http.Client{Timeout: timeout},
	}
}

// ChatMessage is a single chat turn
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ResponseFormat selects JSON mode
type ResponseFormat struct {
	Type string `json:"type"`
}

// ChatRequest is the shape for chat completion requests
type ChatRequest struct {
	Model          string          `json:"model,omitempty"`
	Messages       []ChatMessage   `json:"messages,omitempty"`
	Temperature    float32         `json:"temperature,omitempty"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`
}

// ChatResponse is a minimal response shape
type ChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Generate returns a single free-text completion
func (g *GroqClient) Generate(ctx context.Context, prompt string) (string, error) {
	return g.chat(ctx, ChatRequest{
		Model:       g.model,
		Messages:    []ChatMessage{{Role: "user", Content: prompt}},
		Temperature: g.temperature,
		MaxTokens:   8000,
	})
}

// GenerateStructured requests JSON mode and describes the schema in the prompt
func (g *GroqClient) GenerateStructured(ctx context.Context, prompt string, schema Schema) (string, error) {
	return g.chat(ctx, ChatRequest{
		Model: g.model,
		Messages: []ChatMessage{
			{Role: "system", Content: schema.Instruction()},
			{Role: "user", Content: prompt},
		},
		Temperature:    g.temperature,
		MaxTokens:      8000,
		ResponseFormat: &ResponseFormat{Type: "json_object"},
	})
}

// Model returns the configured model name
func (g *GroqClient) Model() string {
	return g.model
}

func (g *GroqClient) chat(ctx context.Context, reqBody ChatRequest) (string, error) {
	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	endpoint := g.baseURL + "/openai/v1/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("groq returned status %d", resp.StatusCode)
	}

	var cr ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return "", err
	}
	if len(cr.Choices) == 0 || cr.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("empty response from groq")
	}
	return cr.Choices[0].Message.Content, nil
}
