package story

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

// ExportFormat represents supported export formats
type ExportFormat string

const (
	FormatJSON ExportFormat = "json"
)

// Story is a generated story together with what produced it.
type Story struct {
	// Provider is the selector that served the request
	Provider string `json:"provider"`

	// Model is the provider-specific model identifier
	Model string `json:"model"`

	// Prompt is the exact prompt sent to the provider
	Prompt string `json:"prompt"`

	// Text is the generated story, unmodified
	Text string `json:"text"`

	// Request holds the parameters the prompt was built from
	Request Request `json:"request"`

	// GeneratedAt is when the provider returned
	GeneratedAt time.Time `json:"generated_at"`
}

// ExportStory writes the story in the given format. Only json is supported.
func ExportStory(s Story, format string, w io.Writer) error {
	if ExportFormat(strings.ToLower(format)) != FormatJSON {
		return fmt.Errorf("unsupported export format: %s (supported: json)", format)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(s)
}
