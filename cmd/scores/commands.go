package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	flagLimit int
	flagYes   bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the best recorded runs",
	Long: `Display recorded runs, escapes first and then by time survived.

Examples:
  scores list
  scores list --limit 3`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		runs, err := store.TopRuns(flagLimit)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), renderRuns(runs))
		return nil
	},
}

var bestCmd = &cobra.Command{
	Use:   "best",
	Short: "Show the best recorded run",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		best, ok, err := store.BestRun()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderBest(best, ok))
		return nil
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every recorded run",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !flagYes {
			return errors.New("refusing to clear runs without --yes")
		}
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), mutedStyle.Render("All runs cleared."))
		return nil
	},
}
