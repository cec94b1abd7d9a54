// Command rue tokenizes and parses Rue source files, printing either the
// resulting tokens/tree or the diagnostic that stopped the run.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"rue/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "rue",
	Short: "Rue language front end",
	Long:  "rue lexes and parses Rue source files and renders the resulting tokens, trees, and diagnostics.",
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(exploreCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize diagnostics (auto|always|never)")
	rootCmd.PersistentFlags().Int("width", 0, "truncate diagnostic source lines to this width (0 = detect terminal width)")
	rootCmd.PersistentFlags().Int("jobs", 0, "parallelism for directory mode (0 = GOMAXPROCS)")
	rootCmd.PersistentFlags().Bool("no-cache", false, "disable the on-disk parse cache")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
