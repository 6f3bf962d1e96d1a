package llm

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// GeminiLLM implements LLM using the Gemini generateContent API.
type GeminiLLM struct {
	config Config
}

// NewGeminiLLM creates an adapter for Gemini. An empty BaseURL uses the
// SDK's default endpoint.
func NewGeminiLLM(config Config) *GeminiLLM {
	return &GeminiLLM{config: config}
}

func (g *GeminiLLM) newClient(ctx context.Context) (*genai.Client, error) {
	// Backend is pinned so GOOGLE_GENAI_USE_VERTEXAI cannot switch it.
	return genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      g.config.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  g.config.httpClient(),
		HTTPOptions: genai.HTTPOptions{BaseURL: g.config.BaseURL},
	})
}

// Generate sends the prompt as the only user turn with the system instruction
// in systemInstruction, and returns the text of the first candidate.
func (g *GeminiLLM) Generate(ctx context.Context, prompt, model string) (string, error) {
	if strings.TrimSpace(g.config.APIKey) == "" {
		return "", fmt.Errorf("%w: gemini: %w", ErrLLMFailed, ErrMissingAPIKey)
	}
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("%w: gemini: %w", ErrLLMFailed, ErrEmptyPrompt)
	}

	client, err := g.newClient(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: gemini: %w", ErrLLMFailed, err)
	}

	resp, err := client.Models.GenerateContent(ctx, model,
		[]*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)},
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(SystemPrompt, genai.RoleUser),
			MaxOutputTokens:   int32(g.config.maxTokens()),
		})
	if err != nil {
		return "", fmt.Errorf("%w: gemini: %w", ErrLLMFailed, err)
	}

	if len(resp.Candidates) == 0 {
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			return "", fmt.Errorf("%w: gemini: %w: prompt blocked: %s", ErrLLMFailed, ErrMalformedResponse, resp.PromptFeedback.BlockReason)
		}
		return "", fmt.Errorf("%w: gemini: %w: no candidates in response", ErrLLMFailed, ErrMalformedResponse)
	}

	candidate := resp.Candidates[0]
	text := candidateText(candidate)
	if text == "" {
		return "", fmt.Errorf("%w: gemini: %w: first candidate has no text%s", ErrLLMFailed, ErrMalformedResponse, stopDetail(string(candidate.FinishReason)))
	}
	return text, nil
}

// candidateText joins the text parts of c in order. resp.Text() is not used
// because it writes to the standard logger when several candidates come back.
func candidateText(c *genai.Candidate) string {
	if c == nil || c.Content == nil {
		return ""
	}
	var b strings.Builder
	for _, p := range c.Content.Parts {
		if p == nil || p.Thought {
			continue
		}
		b.WriteString(p.Text)
	}
	return b.String()
}
