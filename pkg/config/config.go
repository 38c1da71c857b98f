package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Supported LLM providers
const (
	ProviderGemini = "gemini"
	ProviderGroq   = "groq"
)

// MinPipelineIterations is the smallest cap that lets a run finish:
// one pass per stage plus the final done check
const MinPipelineIterations = 5

// Config holds application configuration
type Config struct {
	Server    ServerConfig
	LLM       LLMConfig
	Gemini    GeminiConfig
	Groq      GroqConfig
	Pipeline  PipelineConfig
	Validator ValidatorConfig
	Upload    UploadConfig
	Logging   LoggingConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string   `envconfig:"PORT" default:"8080"`
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
}

// LLMConfig selects and tunes the generation provider
type LLMConfig struct {
	Provider    string        `envconfig:"LLM_PROVIDER" default:"gemini"`
	Temperature float32       `envconfig:"LLM_TEMPERATURE" default:"0.7"`
	Timeout     time.Duration `envconfig:"LLM_TIMEOUT" default:"60s"`
}

// GeminiConfig holds Google Gemini configuration
type GeminiConfig struct {
	APIKey string `envconfig:"GEMINI_API_KEY"`
	Model  string `envconfig:"GEMINI_MODEL" default:"gemini-2.0-flash"`
}

// GroqConfig holds Groq configuration
type GroqConfig struct {
	APIKey  string `envconfig:"GROQ_API_KEY"`
	BaseURL string `envconfig:"GROQ_API_URL" default:"https://api.groq.com"`
	Model   string `envconfig:"GROQ_MODEL" default:"llama-3.1-70b-versatile"`
}

// PipelineConfig tunes the report pipeline
type PipelineConfig struct {
	MaxIterations       int           `envconfig:"PIPELINE_MAX_ITERATIONS" default:"6"`
	FallbackDelay       time.Duration `envconfig:"PIPELINE_FALLBACK_DELAY" default:"2s"`
	NormalizeWhitespace bool          `envconfig:"PIPELINE_NORMALIZE_WHITESPACE" default:"false"`
}

// ValidatorConfig controls the optional meeting-content classifier
type ValidatorConfig struct {
	Enabled     bool    `envconfig:"VALIDATOR_ENABLED" default:"false"`
	MinLength   int     `envconfig:"VALIDATOR_MIN_LENGTH" default:"50"`
	Temperature float32 `envconfig:"VALIDATOR_TEMPERATURE" default:"0.1"`
}

// UploadConfig limits transcript uploads
type UploadConfig struct {
	MaxBytes int64 `envconfig:"UPLOAD_MAX_BYTES" default:"10485760"`
}

// LoggingConfig holds logger configuration
type LoggingConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	return FromEnv()
}

// FromEnv decodes the current environment without touching .env files
func FromEnv() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	// GOOGLE_API_KEY is accepted for compatibility with the Google SDK defaults
	if cfg.Gemini.APIKey == "" {
		var fallback struct {
			Key string `envconfig:"GOOGLE_API_KEY"`
		}
		if err := envconfig.Process("", &fallback); err == nil {
			cfg.Gemini.APIKey = fallback.Key
		}
	}

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	c.LLM.Provider = strings.ToLower(strings.TrimSpace(c.LLM.Provider))

	switch c.LLM.Provider {
	case ProviderGemini:
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY (or GOOGLE_API_KEY) is required for provider %q", c.LLM.Provider)
		}
	case ProviderGroq:
		if c.Groq.APIKey == "" {
			return fmt.Errorf("GROQ_API_KEY is required for provider %q", c.LLM.Provider)
		}
	default:
		return fmt.Errorf("unsupported LLM_PROVIDER %q", c.LLM.Provider)
	}

	if c.Pipeline.MaxIterations < MinPipelineIterations {
		return fmt.Errorf("PIPELINE_MAX_ITERATIONS must be at least %d", MinPipelineIterations)
	}
	if c.Pipeline.FallbackDelay < 0 {
		return fmt.Errorf("PIPELINE_FALLBACK_DELAY must not be negative")
	}
	if c.Upload.MaxBytes <= 0 {
		return fmt.Errorf("UPLOAD_MAX_BYTES must be positive")
	}

	return nil
}

// GetServerAddr returns the listen address
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}
