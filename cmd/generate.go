package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Yates-Labs/storyteller/internal/config"
	"github.com/Yates-Labs/storyteller/internal/dispatch"
	"github.com/Yates-Labs/storyteller/internal/logging"
	"github.com/Yates-Labs/storyteller/internal/presenter"
	"github.com/Yates-Labs/storyteller/internal/story"
	"github.com/spf13/cobra"
)

type generateOptions struct {
	fields     story.Fields
	configPath string
	exportFile string
	verbose    bool
}

var genOpts = generateOptions{fields: story.DefaultFields()}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a short story from the given story elements",
	Long: `Build a short-story prompt from the given elements and send it to the selected provider.

Providers and the model each one is called with:
  Gemini     gemini-pro
  Anthropic  claude-3-opus-20240229
  OpenAI     gpt-4-turbo-preview
  Groq       mixtral-8x7b-32768

Credentials are read from the environment (a .env file is loaded if present):
  GEMINI_API_KEY, ANTHROPIC_API_KEY, OPENAI_API_KEY, GROQ_API_KEY

Run "storyteller options" to list the accepted archetypes, settings, genders and genres.

Examples:
  storyteller generate --model OpenAI --archetype "Anh hùng" --setting "Kỳ ảo" \
    --location "Rừng cổ" --gender Nam --age 17 --genre "Phiêu lưu" --genre "Kịch tính"
  storyteller generate --model Groq --location "Sài Gòn" --age 30 --export story.json`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	f := generateCmd.Flags()
	f.StringVar(&genOpts.fields.Provider, "model", genOpts.fields.Provider, "Provider to use: Gemini, Anthropic, OpenAI or Groq")
	f.StringVar(&genOpts.fields.Archetype, "archetype", genOpts.fields.Archetype, "Character archetype")
	f.StringVar(&genOpts.fields.Setting, "setting", genOpts.fields.Setting, "Story setting")
	f.StringVar(&genOpts.fields.Location, "location", "", "Location (free text)")
	f.StringVar(&genOpts.fields.Gender, "gender", genOpts.fields.Gender, "Character gender")
	f.IntVar(&genOpts.fields.Age, "age", 0, "Character age")
	f.StringArrayVar(&genOpts.fields.Genres, "genre", nil, "Genre or style (repeatable, order is kept)")
	f.StringVar(&genOpts.configPath, "config", "", "Optional YAML config file")
	f.StringVar(&genOpts.exportFile, "export", "", "Also write the story as JSON: --export <filename>")
	f.BoolVar(&genOpts.verbose, "verbose", false, "Log provider routing to stderr")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return generate(ctx, cmd.OutOrStdout(), cmd.ErrOrStderr(), genOpts)
}

// generate runs one collect → prompt → dispatch → present cycle. Failures after
// configuration are shown through the presenter and returned wrapped in errReported.
func generate(ctx context.Context, out, errOut io.Writer, opts generateOptions) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	level := cfg.LogLevel
	if opts.verbose {
		level = "debug"
	}
	logger, err := logging.New(errOut, level)
	if err != nil {
		return err
	}

	p := presenter.New(out)

	req, err := story.Collect(opts.fields)
	if err != nil {
		p.Error(err)
		return fmt.Errorf("%w: %w", errReported, err)
	}

	p.Progress()

	dispatcher := dispatch.NewDispatcher(newAdapters(cfg), logger)
	generator := dispatch.NewGenerator(dispatcher)

	s, err := generator.Generate(ctx, req)
	if err != nil {
		p.Error(err)
		return fmt.Errorf("%w: %w", errReported, err)
	}

	p.Story(s)

	if opts.exportFile != "" {
		if err := exportStory(*s, opts.exportFile); err != nil {
			p.Error(err)
			return fmt.Errorf("%w: %w", errReported, err)
		}
		p.Exported(opts.exportFile)
	}

	return nil
}

func exportStory(s story.Story, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer file.Close()

	if err := story.ExportStory(s, string(story.FormatJSON), file); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	return nil
}
