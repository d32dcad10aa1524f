// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/DavidLiedle/gitorg/internal/display"
	"github.com/DavidLiedle/gitorg/internal/usecase"
)

var rootCmd = &cobra.Command{
	Use:   "gitorg",
	Short: "Manage and monitor multiple GitHub organizations",
	Long: `Manage and monitor multiple GitHub organizations.

gitorg aggregates repositories, open issues, staleness, and activity
statistics across every organization you belong to, rendered as tables or
JSON.

Authenticate once with "gitorg auth"; the token is stored in your user
config directory with owner-only permissions.`,
	Version:       "0.1.0",
	SilenceErrors: true,
	SilenceUsage:  true,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// Execute runs the root command. A fatal error prints a single line on
// stderr and exits with status 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		display.Error(err.Error())
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Bool("json", false, "Output results as JSON")
	rootCmd.PersistentFlags().Bool("verbose", false, "Show verbose output (rate limits, debug info)")
	rootCmd.PersistentFlags().Int("concurrency", usecase.DefaultWorkers, "Parallel organization fetches (1 disables parallelism)")
}
