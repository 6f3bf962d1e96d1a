package cmd

import (
	"github.com/Yates-Labs/storyteller/internal/presenter"
	"github.com/spf13/cobra"
)

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "List providers, archetypes, settings, genders and genres",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		presenter.New(cmd.OutOrStdout()).Options()
	},
}

func init() {
	rootCmd.AddCommand(optionsCmd)
}
