// Package config loads storyteller settings from the environment (optionally
// seeded by a .env file) and an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Environment variables read by Load.
const (
	EnvGeminiAPIKey    = "GEMINI_API_KEY"
	EnvAnthropicAPIKey = "ANTHROPIC_API_KEY"
	EnvOpenAIAPIKey    = "OPENAI_API_KEY"
	EnvGroqAPIKey      = "GROQ_API_KEY"
	EnvLogLevel        = "STORYTELLER_LOG_LEVEL"
)

// Config holds runtime settings.
type Config struct {
	// APIKeys are read from the environment only
	APIKeys APIKeys `yaml:"-"`

	// Endpoints override vendor base URLs (empty = vendor default)
	Endpoints Endpoints `yaml:"endpoints"`

	// MaxTokens caps the generated story length
	MaxTokens int `yaml:"max_tokens"`

	// LogLevel is a zerolog level name
	LogLevel string `yaml:"log_level"`
}

// APIKeys holds one credential per provider. A missing key is not an error
// here; the provider fails on first use instead.
type APIKeys struct {
	Gemini    string
	Anthropic string
	OpenAI    string
	Groq      string
}

// Endpoints holds per-provider base URL overrides.
type Endpoints struct {
	Gemini    string `yaml:"gemini"`
	Anthropic string `yaml:"anthropic"`
	OpenAI    string `yaml:"openai"`
	Groq      string `yaml:"groq"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		MaxTokens: 2000,
		LogLevel:  "warn",
	}
}

// Load builds the configuration: defaults, then the YAML file at path (if
// path is not empty), then the environment. A .env file in the working
// directory is loaded first if present; it never overrides variables that
// are already set.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("%w: read %s: %w", ErrInvalidConfig, path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("%w: parse %s: %w", ErrInvalidConfig, path, err)
		}
	}

	cfg.APIKeys = APIKeys{
		Gemini:    os.Getenv(EnvGeminiAPIKey),
		Anthropic: os.Getenv(EnvAnthropicAPIKey),
		OpenAI:    os.Getenv(EnvOpenAIAPIKey),
		Groq:      os.Getenv(EnvGroqAPIKey),
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}

	if cfg.MaxTokens < 0 {
		return Config{}, fmt.Errorf("%w: max_tokens must not be negative, got %d", ErrInvalidConfig, cfg.MaxTokens)
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = Default().MaxTokens
	}

	return cfg, nil
}
