// Package llm provides the story-writing capability behind a provider-agnostic
// interface. Each hosted vendor gets one adapter that turns a prompt into a
// single chat request and pulls the text back out of that vendor's response
// shape. A deterministic mock is provided for tests.
package llm

import (
	"context"
	"errors"
	"net/http"
)

var (
	ErrLLMFailed         = errors.New("LLM request failed")
	ErrMissingAPIKey     = errors.New("missing API key")
	ErrEmptyPrompt       = errors.New("prompt is empty")
	ErrMalformedResponse = errors.New("malformed provider response")
)

// SystemPrompt is sent with every request as the system instruction.
const SystemPrompt = "Bạn là một người kể chuyện sáng tạo, thành thạo nhiều thể loại và phong cách viết. Hãy viết bằng tiếng Việt."

// DefaultMaxTokens caps the length of the generated story.
const DefaultMaxTokens = 2000

// LLM defines the interface for interacting with language models.
// Implementations must be stateless and safe for concurrent use.
type LLM interface {
	// Generate sends prompt to the given model in one round-trip and returns
	// the generated text verbatim.
	Generate(ctx context.Context, prompt, model string) (string, error)
}

// Config holds the connection settings shared by all adapters.
type Config struct {
	// APIKey authenticates against the provider. An empty key is only
	// reported when the adapter is first used.
	APIKey string

	// BaseURL overrides the provider endpoint (empty = vendor default)
	BaseURL string

	// MaxTokens limits the response length (0 = DefaultMaxTokens)
	MaxTokens int

	// HTTPClient is used for requests (nil = http.DefaultClient)
	HTTPClient *http.Client
}

func (c Config) maxTokens() int {
	if c.MaxTokens > 0 {
		return c.MaxTokens
	}
	return DefaultMaxTokens
}

func (c Config) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}
