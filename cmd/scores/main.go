// scores inspects the runs recorded by catburglar.
//
// Usage:
//
//	scores list [--limit n]   - Show the best runs
//	scores best               - Show the single best run
//	scores clear [--yes]      - Delete every recorded run
//
// Global flags:
//
//	--db <path>  - Set database path (default: ~/.catburglar/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/milk9111/catburglar/storage"
)

var flagDBPath string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "scores",
	Short:         "Inspect recorded Cat Burglar runs",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to runs database")

	listCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	clearCmd.Flags().BoolVar(&flagYes, "yes", false, "Skip the confirmation check")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(bestCmd)
	rootCmd.AddCommand(clearCmd)
}

func openStore() (*storage.Store, error) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return nil, fmt.Errorf("opening runs database: %w", err)
	}
	return store, nil
}
