package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const DefaultAnthropicBaseURL = "https://api.anthropic.com/"

// AnthropicLLM implements LLM using the Anthropic Messages API.
type AnthropicLLM struct {
	apiKey string
	client anthropic.Client
	config Config
}

// NewAnthropicLLM creates an adapter for Anthropic.
func NewAnthropicLLM(config Config) *AnthropicLLM {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultAnthropicBaseURL
	}

	// The base URL is always set so ANTHROPIC_BASE_URL in the environment
	// cannot redirect requests away from the configured endpoint.
	client := anthropic.NewClient(
		option.WithAPIKey(config.APIKey),
		option.WithBaseURL(baseURL),
		option.WithHTTPClient(config.httpClient()),
		option.WithMaxRetries(0),
	)

	return &AnthropicLLM{
		apiKey: config.APIKey,
		client: client,
		config: config,
	}
}

// Generate sends the prompt as the only user message with the system
// instruction in the top-level system field, and returns the first content block.
func (a *AnthropicLLM) Generate(ctx context.Context, prompt, model string) (string, error) {
	if strings.TrimSpace(a.apiKey) == "" {
		return "", fmt.Errorf("%w: anthropic: %w", ErrLLMFailed, ErrMissingAPIKey)
	}
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("%w: anthropic: %w", ErrLLMFailed, ErrEmptyPrompt)
	}

	msg, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: int64(a.config.maxTokens()),
		System:    []anthropic.TextBlockParam{{Text: SystemPrompt}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: anthropic: %w", ErrLLMFailed, err)
	}

	if len(msg.Content) == 0 {
		return "", fmt.Errorf("%w: anthropic: %w: no content in response%s", ErrLLMFailed, ErrMalformedResponse, stopDetail(string(msg.StopReason)))
	}
	block := msg.Content[0]
	if block.Type != "text" || block.Text == "" {
		return "", fmt.Errorf("%w: anthropic: %w: first content block has no text (type %q)%s", ErrLLMFailed, ErrMalformedResponse, block.Type, stopDetail(string(msg.StopReason)))
	}

	return block.Text, nil
}

// stopDetail formats a vendor stop/finish reason for error messages.
func stopDetail(reason string) string {
	if reason == "" {
		return ""
	}
	return fmt.Sprintf(" (finish reason %s)", reason)
}
