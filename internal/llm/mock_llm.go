package llm

import (
	"context"
	"fmt"
)

// MockLLM is a deterministic LLM implementation for testing.
type MockLLM struct {
	// Response is the fixed text returned by Generate.
	// If empty, a response naming the model is generated.
	Response string

	// Error, if set, is returned by Generate instead of a response.
	Error error

	// LastPrompt stores the most recent prompt passed to Generate.
	LastPrompt string

	// LastModel stores the most recent model passed to Generate.
	LastModel string

	// Calls counts Generate invocations.
	Calls int
}

// NewMockLLM creates a mock LLM with the given fixed response.
func NewMockLLM(response string) *MockLLM {
	return &MockLLM{Response: response}
}

// NewMockLLMWithError creates a mock LLM that always returns an error.
func NewMockLLMWithError(err error) *MockLLM {
	return &MockLLM{Error: err}
}

// Generate returns the configured response or a deterministic one.
func (m *MockLLM) Generate(ctx context.Context, prompt, model string) (string, error) {
	m.Calls++
	m.LastPrompt = prompt
	m.LastModel = model

	if m.Error != nil {
		return "", m.Error
	}

	if m.Response != "" {
		return m.Response, nil
	}

	return fmt.Sprintf("Câu chuyện từ %s (%d ký tự gợi ý).", model, len([]rune(prompt))), nil
}
