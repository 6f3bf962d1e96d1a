// Package dispatch routes a story prompt to exactly one text-generation
// provider. The provider is chosen by a selector naming one of a fixed set of
// vendors, each paired with a fixed model identifier.
package dispatch

import (
	"fmt"
	"strings"

	"github.com/Yates-Labs/storyteller/internal/llm"
)

// Provider is the selector identifying a text-generation vendor.
type Provider string

const (
	Gemini    Provider = "Gemini"
	Anthropic Provider = "Anthropic"
	OpenAI    Provider = "OpenAI"
	Groq      Provider = "Groq"
)

// Providers lists the known selectors in display order.
var Providers = []Provider{Gemini, Anthropic, OpenAI, Groq}

// Model returns the model identifier the provider is always called with.
func (p Provider) Model() string {
	switch p {
	case Gemini:
		return "gemini-pro"
	case Anthropic:
		return "claude-3-opus-20240229"
	case OpenAI:
		return "gpt-4-turbo-preview"
	case Groq:
		return "mixtral-8x7b-32768"
	}
	return ""
}

// ParseProvider resolves a selector name. Only the exact provider names are
// accepted; case or surrounding whitespace variants are unsupported.
func ParseProvider(selector string) (Provider, error) {
	for _, p := range Providers {
		if string(p) == selector {
			return p, nil
		}
	}
	return "", &UnsupportedProviderError{Selector: selector}
}

// UnsupportedProviderError reports a selector outside the known providers.
type UnsupportedProviderError struct {
	Selector string
}

func (e *UnsupportedProviderError) Error() string {
	names := make([]string, len(Providers))
	for i, p := range Providers {
		names[i] = string(p)
	}
	return fmt.Sprintf("unsupported provider %q (supported: %s)", e.Selector, strings.Join(names, ", "))
}

// ProviderCallError wraps a failed vendor call. Its message keeps the vendor's
// error text unmodified.
type ProviderCallError struct {
	Provider Provider
	Model    string
	Err      error
}

func (e *ProviderCallError) Error() string {
	return fmt.Sprintf("%s (%s): %v", e.Provider, e.Model, e.Err)
}

func (e *ProviderCallError) Unwrap() error {
	return e.Err
}

// Adapters holds one read-only LLM handle per provider, built once at startup.
type Adapters struct {
	Gemini    llm.LLM
	Anthropic llm.LLM
	OpenAI    llm.LLM
	Groq      llm.LLM
}

func (a Adapters) forProvider(p Provider) llm.LLM {
	switch p {
	case Gemini:
		return a.Gemini
	case Anthropic:
		return a.Anthropic
	case OpenAI:
		return a.OpenAI
	case Groq:
		return a.Groq
	}
	return nil
}
