package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/maartenv/kampeer/internal/log"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "kampeer",
	Short: "Camping-spot marketplace client",
	Long: `kampeer is the terminal client for the Kampeer camping-spot marketplace.
Browse and book camping spots, rate your stays, and manage your own
listings from the command line.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetDefaultLogger(log.New(log.VerboseConfig()))
		}
	},
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with the given context
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
