package ai

import (
	"context"
	"fmt"

	"github.com/johnquangdev/meeting-reporter/pkg/config"
)

// Generator is the generation capability shared by all providers
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	GenerateStructured(ctx context.Context, prompt string, schema Schema) (string, error)
	Model() string
}

// NewGenerator builds the provider selected by cfg.LLM.Provider
func NewGenerator(ctx context.Context, cfg *config.Config) (Generator, error) {
	return NewGeneratorWithTemperature(ctx, cfg, cfg.LLM.Temperature)
}

// NewGeneratorWithTemperature is NewGenerator with a sampling temperature override
func NewGeneratorWithTemperature(ctx context.Context, cfg *config.Config, temperature float32) (Generator, error) {
	switch cfg.LLM.Provider {
	case config.ProviderGemini:
		return NewGeminiClient(ctx, GeminiOptions{
			APIKey:      cfg.Gemini.APIKey,
			Model:       cfg.Gemini.Model,
			Temperature: temperature,
			Timeout:     cfg.LLM.Timeout,
		})
	case config.ProviderGroq:
		return NewGroqClient(&cfg.Groq, temperature, cfg.LLM.Timeout), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider %q", cfg.LLM.Provider)
	}
}
