package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"
)

// GeminiClient generates text through the Google Gemini API
type GeminiClient struct {
	models      *genai.Models
	model       string
	temperature float32
	timeout     time.Duration
}

// GeminiOptions configures a GeminiClient
type GeminiOptions struct {
	APIKey      string
	Model       string
	Temperature float32
	Timeout     time.Duration
	// BaseURL overrides the API endpoint; empty uses the SDK default
	BaseURL string
}

// NewGeminiClient creates a Gemini-backed generator
func NewGeminiClient(ctx context.Context, opts GeminiOptions) (*GeminiClient, error) {
	if opts.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if opts.Model == "" {
		opts.Model = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      opts.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: opts.BaseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &GeminiClient{
		models:      client.Models,
		model:       opts.Model,
		temperature: opts.Temperature,
		timeout:     opts.Timeout,
	}, nil
}

// Generate returns a single free-text completion
func (g *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	return g.generate(ctx, prompt, &genai.GenerateContentConfig{
		Temperature: genai.Ptr(g.temperature),
	})
}

// GenerateStructured asks for JSON matching schema and returns the raw text
func (g *GeminiClient) GenerateStructured(ctx context.Context, prompt string, schema Schema) (string, error) {
	return g.generate(ctx, prompt, &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(g.temperature),
		ResponseMIMEType: "application/json",
		ResponseSchema:   toGenaiSchema(schema),
	})
}

// Model returns the configured model name
func (g *GeminiClient) Model() string {
	return g.model
}

func (g *GeminiClient) generate(ctx context.Context, prompt string, cfg *genai.GenerateContentConfig) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	result, err := g.models.GenerateContent(ctx, g.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		var b strings.Builder
		for _, part := range result.Candidates[0].Content.Parts {
			if part != nil && part.Text != "" {
				b.WriteString(part.Text)
			}
		}
		if b.Len() > 0 {
			return b.String(), nil
		}
	}

	return "", fmt.Errorf("empty response from gemini")
}

func toGenaiSchema(s Schema) *genai.Schema {
	props := make(map[string]*genai.Schema, len(s.Fields))
	for _, f := range s.Fields {
		props[f.Name] = &genai.Schema{
			Type:        genai.TypeString,
			Description: f.Description,
		}
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			s.ListKey: {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type:             genai.TypeObject,
					Properties:       props,
					Required:         s.FieldNames(),
					PropertyOrdering: s.FieldNames(),
				},
			},
		},
		Required: []string{s.ListKey},
	}
}
