package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvGeminiAPIKey, EnvAnthropicAPIKey, EnvOpenAIAPIKey, EnvGroqAPIKey, EnvLogLevel} {
		t.Setenv(k, "")
	}
	// Keep any developer .env out of the test.
	t.Chdir(t.TempDir())
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.MaxTokens != 2000 {
		t.Errorf("expected max tokens 2000, got %d", cfg.MaxTokens)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("expected log level warn, got %s", cfg.LogLevel)
	}
	if cfg.APIKeys != (APIKeys{}) {
		t.Errorf("expected no API keys, got %+v", cfg.APIKeys)
	}
}

func TestLoad_EnvKeys(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvGeminiAPIKey, "g")
	t.Setenv(EnvAnthropicAPIKey, "a")
	t.Setenv(EnvOpenAIAPIKey, "o")
	t.Setenv(EnvGroqAPIKey, "q")
	t.Setenv(EnvLogLevel, "debug")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := APIKeys{Gemini: "g", Anthropic: "a", OpenAI: "o", Groq: "q"}
	if cfg.APIKeys != want {
		t.Errorf("expected %+v, got %+v", want, cfg.APIKeys)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected env log level to win, got %s", cfg.LogLevel)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	os.Unsetenv(EnvOpenAIAPIKey)
	if err := os.WriteFile(".env", []byte("OPENAI_API_KEY=from-dotenv\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv(EnvOpenAIAPIKey) })

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIKeys.OpenAI != "from-dotenv" {
		t.Errorf("expected OpenAI key from .env, got %q", cfg.APIKeys.OpenAI)
	}
}

func TestLoad_YAML(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "storyteller.yaml", `
endpoints:
  gemini: http://localhost:9001
  groq: http://localhost:9002/openai/v1
max_tokens: 512
log_level: info
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Endpoints.Gemini != "http://localhost:9001" || cfg.Endpoints.Groq != "http://localhost:9002/openai/v1" {
		t.Errorf("unexpected endpoints: %+v", cfg.Endpoints)
	}
	if cfg.Endpoints.OpenAI != "" {
		t.Errorf("unset endpoint should stay empty, got %q", cfg.Endpoints.OpenAI)
	}
	if cfg.MaxTokens != 512 || cfg.LogLevel != "info" {
		t.Errorf("unexpected max tokens/log level: %d/%s", cfg.MaxTokens, cfg.LogLevel)
	}
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)

	tests := []struct {
		name string
		path string
	}{
		{name: "missing file", path: filepath.Join(t.TempDir(), "nope.yaml")},
		{name: "bad yaml", path: writeFile(t, "bad.yaml", "endpoints: [unterminated")},
		{name: "negative max tokens", path: writeFile(t, "neg.yaml", "max_tokens: -1\n")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}
