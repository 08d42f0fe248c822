// Package cli provides the command-line interface for travelpal.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/travelpal/travelpal/internal/config"
)

var (
	// Version is set at build time.
	Version = "0.1.0"

	// Global flags
	verbose bool

	// Loaded once before any command runs.
	cfg config.Config
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "travelpal",
	Short: "TravelPal concierge operations",
	Long: `Operator tooling for the TravelPal travel-concierge backend.

Run one-shot concierge turns from the terminal, or bootstrap user accounts
directly against the credential store.`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.Load()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(userCmd)
}
