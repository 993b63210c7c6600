package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all environment backed configuration for post-api.
//
// Every provider credential is optional: a missing key degrades the matching
// provider instead of failing startup.
type Config struct {
	// HTTP Server
	HTTPPort int `env:"HTTP_PORT" envDefault:"8288"`

	// Text generation (OpenAI-compatible chat completions)
	OpenAIAPIKey  string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com/v1"`
	TextModel     string `env:"TEXT_MODEL" envDefault:"gpt-4o"`
	ImageModel    string `env:"IMAGE_MODEL" envDefault:"dall-e-2"`

	// Stock photo providers
	PexelsAPIKey      string `env:"PEXELS_API_KEY"`
	UnsplashAccessKey string `env:"UNSPLASH_ACCESS_KEY"`

	// Conversation flow override (embedded default used when empty)
	FlowConfigFile string `env:"FLOW_CONFIG_FILE"`

	// Per-provider timeouts
	ChatCompletionTimeout  time.Duration `env:"CHAT_COMPLETION_TIMEOUT" envDefault:"45s"`
	StockSearchTimeout     time.Duration `env:"STOCK_SEARCH_TIMEOUT" envDefault:"15s"`
	ImageGenerationTimeout time.Duration `env:"IMAGE_GENERATION_TIMEOUT" envDefault:"60s"`
	ImageFetchTimeout      time.Duration `env:"IMAGE_FETCH_TIMEOUT" envDefault:"20s"`

	// Image cache
	ImageCacheSize int `env:"IMAGE_CACHE_SIZE" envDefault:"512"`

	// Observability / Logging
	ServiceName string `env:"SERVICE_NAME" envDefault:"post-api"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"console"`
}

// Load parses environment variables into Config and performs minimal validation.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.OpenAIBaseURL = strings.TrimRight(strings.TrimSpace(cfg.OpenAIBaseURL), "/")
	if _, err := url.ParseRequestURI(cfg.OpenAIBaseURL); err != nil {
		return nil, fmt.Errorf("invalid OPENAI_BASE_URL: %w", err)
	}

	if cfg.ImageCacheSize <= 0 {
		return nil, fmt.Errorf("IMAGE_CACHE_SIZE must be positive, got %d", cfg.ImageCacheSize)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	return cfg, nil
}

// HasOpenAIKey reports whether text and AI-image generation are credentialed.
func (c *Config) HasOpenAIKey() bool {
	return strings.TrimSpace(c.OpenAIAPIKey) != ""
}

var Version = "dev"
