package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Yates-Labs/storyteller/internal/story"
)

var (
	ErrGenerationFailed = errors.New("story generation failed")
)

// StoryDispatcher is the single capability the generator needs from a Dispatcher.
type StoryDispatcher interface {
	GenerateStory(ctx context.Context, selector, prompt string) (string, error)
}

// Generator turns a story request into a Story by building the prompt and
// dispatching it to the requested provider.
type Generator struct {
	dispatcher StoryDispatcher
	now        func() time.Time
}

// NewGenerator creates a story generator backed by the given dispatcher.
func NewGenerator(dispatcher StoryDispatcher) *Generator {
	return &Generator{
		dispatcher: dispatcher,
		now:        time.Now,
	}
}

// Generate builds the prompt for req and returns the generated story. Either
// the full story is returned or an error; there is no partial result.
func (g *Generator) Generate(ctx context.Context, req story.Request) (*story.Story, error) {
	if g.dispatcher == nil {
		return nil, fmt.Errorf("%w: dispatcher is required", ErrGenerationFailed)
	}

	provider, err := ParseProvider(req.Provider)
	if err != nil {
		return nil, err
	}

	prompt := story.BuildPrompt(req)

	text, err := g.dispatcher.GenerateStory(ctx, string(provider), prompt)
	if err != nil {
		return nil, err
	}

	return &story.Story{
		Provider:    string(provider),
		Model:       provider.Model(),
		Prompt:      prompt,
		Text:        text,
		Request:     req,
		GeneratedAt: g.now(),
	}, nil
}
