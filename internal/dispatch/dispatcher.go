package dispatch

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

var (
	ErrAdapterNotConfigured = errors.New("no adapter configured for provider")
)

// Dispatcher maps a selector to its adapter and invokes it once.
type Dispatcher struct {
	adapters Adapters
	logger   zerolog.Logger
}

// NewDispatcher creates a dispatcher over the given adapters.
func NewDispatcher(adapters Adapters, logger zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		adapters: adapters,
		logger:   logger.With().Str("component", "dispatcher").Logger(),
	}
}

// GenerateStory sends prompt to the provider named by selector, using that
// provider's fixed model. An unknown selector fails with
// *UnsupportedProviderError before any adapter is called; an adapter failure
// is returned as *ProviderCallError.
func (d *Dispatcher) GenerateStory(ctx context.Context, selector, prompt string) (string, error) {
	provider, err := ParseProvider(selector)
	if err != nil {
		return "", err
	}

	model := provider.Model()
	adapter := d.adapters.forProvider(provider)
	if adapter == nil {
		return "", fmt.Errorf("%w: %s", ErrAdapterNotConfigured, provider)
	}

	d.logger.Debug().Str("provider", string(provider)).Str("model", model).Int("prompt_len", len(prompt)).Msg("dispatching story request")

	text, err := adapter.Generate(ctx, prompt, model)
	if err != nil {
		d.logger.Debug().Err(err).Str("provider", string(provider)).Msg("provider call failed")
		return "", &ProviderCallError{Provider: provider, Model: model, Err: err}
	}

	d.logger.Debug().Str("provider", string(provider)).Int("text_len", len(text)).Msg("story received")
	return text, nil
}
