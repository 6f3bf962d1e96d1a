package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// errReported marks failures already shown to the user by the presenter.
var errReported = errors.New("error already reported")

var rootCmd = &cobra.Command{
	Use:   "storyteller",
	Short: "Storyteller - AI short story generator",
	Long: `Storyteller builds a short-story prompt from a character archetype, setting,
location, gender, age and a set of genres, sends it to one of four hosted
text-generation providers (Gemini, Anthropic, OpenAI, Groq) and prints the story.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
