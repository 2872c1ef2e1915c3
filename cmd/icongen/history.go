package main

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Jvryan92/StategyDECK/internal/paths"
	"github.com/Jvryan92/StategyDECK/internal/runlog"
)

var historyCmd = &cobra.Command{
	Use:   "history [n]",
	Short: "Show recent generation runs",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit := 10
		if len(args) == 1 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 0 {
				return fmt.Errorf("history count must be a non-negative number, got %q", args[0])
			}
			limit = n
		}

		store, err := openHistory()
		if err != nil {
			return err
		}
		defer store.Close()

		runs, err := store.Runs(limit)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Println("No generation runs recorded.")
			return nil
		}

		for _, run := range runs {
			fmt.Printf("%s  %-12s  %3d variants  %3d PNGs  %6.2fs  %s\n",
				run.Started.Format("2006-01-02 15:04:05"), shortID(run.ID),
				run.Generated, run.PNGs, run.Elapsed.Seconds(), run.CSVPath)
		}
		return nil
	},
}

var historyCleanCmd = &cobra.Command{
	Use:   "clean <days>",
	Short: "Remove runs older than the given number of days",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		days, err := strconv.Atoi(args[0])
		if err != nil || days <= 0 {
			return fmt.Errorf("days must be a positive number, got %q", args[0])
		}

		store, err := openHistory()
		if err != nil {
			return err
		}
		defer store.Close()

		removed, err := store.Clean(days)
		if err != nil {
			return err
		}
		fmt.Printf("Removed %d run(s) older than %d day(s).\n", removed, days)
		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded history",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openHistory()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Println("History cleared.")
		return nil
	},
}

func init() {
	historyCmd.AddCommand(historyCleanCmd, historyClearCmd)
}

func openHistory() (runlog.Store, error) {
	return runlog.NewSQLiteStore(filepath.Join(paths.DataDir(), paths.HistoryDBName))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
