package cmd

import (
	"github.com/Yates-Labs/storyteller/internal/config"
	"github.com/Yates-Labs/storyteller/internal/dispatch"
	"github.com/Yates-Labs/storyteller/internal/llm"
)

// newAdapters builds one adapter per provider from the loaded configuration.
// Handles are created once and never mutated afterwards.
func newAdapters(cfg config.Config) dispatch.Adapters {
	return dispatch.Adapters{
		Gemini: llm.NewGeminiLLM(llm.Config{
			APIKey:    cfg.APIKeys.Gemini,
			BaseURL:   cfg.Endpoints.Gemini,
			MaxTokens: cfg.MaxTokens,
		}),
		Anthropic: llm.NewAnthropicLLM(llm.Config{
			APIKey:    cfg.APIKeys.Anthropic,
			BaseURL:   cfg.Endpoints.Anthropic,
			MaxTokens: cfg.MaxTokens,
		}),
		OpenAI: llm.NewOpenAILLM(llm.Config{
			APIKey:    cfg.APIKeys.OpenAI,
			BaseURL:   cfg.Endpoints.OpenAI,
			MaxTokens: cfg.MaxTokens,
		}),
		Groq: llm.NewGroqLLM(llm.Config{
			APIKey:    cfg.APIKeys.Groq,
			BaseURL:   cfg.Endpoints.Groq,
			MaxTokens: cfg.MaxTokens,
		}),
	}
}
