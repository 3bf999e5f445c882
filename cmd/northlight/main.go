// Northlight is a command-line client for the Northlight feedback service.
//
// It submits feedback and bug reports, lists public feedback and the
// roadmap, and casts device-scoped votes using the same SDK that ships to
// applications. Votes are tracked locally so the same device never votes
// twice for one item.
//
// Usage:
//
//	northlight [command] [flags]
//
// The API key is read from --api-key, the NORTHLIGHT_API_KEY environment
// variable, or a .env file in the working directory.
// See 'northlight --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/northlight/northlight-go/internal/logging"
	"github.com/northlight/northlight-go/internal/version"
)

func main() {
	// A .env file is optional; missing is the normal case
	_ = godotenv.Load()

	if err := logging.InitializeFromEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "northlight",
	Short: "Northlight feedback client",
	Long: `A command-line client for the Northlight feedback service.

Submit feedback and bug reports, browse public feedback, view the roadmap,
and vote for feature requests. Each device gets exactly one vote per item,
tracked in a local ledger.`,
	Version: version.Version,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("northlight %s (commit: %s)\n", version.Version, version.Commit)
	},
}
