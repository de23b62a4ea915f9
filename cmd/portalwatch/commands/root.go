package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "portalwatch",
	Short: "PortalWatch - college transfer portal risk estimator",
	Long: `PortalWatch CLI

Estimates a college athlete's likelihood of entering the transfer
portal within 12 months from public statistical signals and optional
manual overrides.

Usage:
  go run ./cmd/portalwatch [command]

Examples:
  go run ./cmd/portalwatch evaluate --year 2025 --team "Ohio State"
  go run ./cmd/portalwatch evaluate --year 2025 --player "Marcus Webb" --json
  go run ./cmd/portalwatch api`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
