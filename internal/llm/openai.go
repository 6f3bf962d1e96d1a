package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

const (
	DefaultOpenAIBaseURL = "https://api.openai.com/v1/"
	DefaultGroqBaseURL   = "https://api.groq.com/openai/v1/"
)

// ChatCompletionsLLM implements LLM against an OpenAI-compatible Chat
// Completions API. OpenAI and Groq both speak this protocol.
type ChatCompletionsLLM struct {
	name   string
	apiKey string
	client openai.Client
	config Config
}

// NewOpenAILLM creates an adapter for OpenAI.
func NewOpenAILLM(config Config) *ChatCompletionsLLM {
	return newChatCompletionsLLM("openai", DefaultOpenAIBaseURL, config)
}

// NewGroqLLM creates an adapter for Groq's OpenAI-compatible endpoint.
func NewGroqLLM(config Config) *ChatCompletionsLLM {
	return newChatCompletionsLLM("groq", DefaultGroqBaseURL, config)
}

func newChatCompletionsLLM(name, defaultBaseURL string, config Config) *ChatCompletionsLLM {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	client := openai.NewClient(
		option.WithAPIKey(config.APIKey),
		option.WithBaseURL(baseURL),
		option.WithHTTPClient(config.httpClient()),
		option.WithMaxRetries(0),
	)

	return &ChatCompletionsLLM{
		name:   name,
		apiKey: config.APIKey,
		client: client,
		config: config,
	}
}

// Generate sends the system instruction and the prompt as a two-message chat
// and returns the first choice's content.
func (c *ChatCompletionsLLM) Generate(ctx context.Context, prompt, model string) (string, error) {
	if strings.TrimSpace(c.apiKey) == "" {
		return "", fmt.Errorf("%w: %s: %w", ErrLLMFailed, c.name, ErrMissingAPIKey)
	}
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("%w: %s: %w", ErrLLMFailed, c.name, ErrEmptyPrompt)
	}

	params := openai.ChatCompletionNewParams{
		Model: shared.ChatModel(model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(SystemPrompt),
			openai.UserMessage(prompt),
		},
		MaxTokens: openai.Int(int64(c.config.maxTokens())),
	}

	completion, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrLLMFailed, c.name, err)
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("%w: %s: %w: no choices in response", ErrLLMFailed, c.name, ErrMalformedResponse)
	}

	choice := completion.Choices[0]
	if choice.Message.Content == "" {
		detail := stopDetail(choice.FinishReason)
		if choice.Message.Refusal != "" {
			detail += ": refusal: " + choice.Message.Refusal
		}
		return "", fmt.Errorf("%w: %s: %w: empty message content%s", ErrLLMFailed, c.name, ErrMalformedResponse, detail)
	}

	return choice.Message.Content, nil
}
