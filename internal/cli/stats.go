package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kcorpus/kcorpus/internal/store"
)

// StatsResult holds per-task record counts from the archive.
type StatsResult struct {
	Database string            `json:"database"`
	Total    int               `json:"total"`
	ByTask   []store.TaskCount `json:"by_task"`
}

// NewStatsCommand creates the stats command.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show record counts from the archive",
		Long:  "Reads the SQLite archive and prints per-task record counts across all runs.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dbPath == "" {
				return fmt.Errorf("--db is required")
			}
			return runStats(cmd, rootOpts, dbPath)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite archive path")

	return cmd
}

func runStats(cmd *cobra.Command, rootOpts *RootOptions, dbPath string) error {
	if _, err := os.Stat(dbPath); err != nil {
		return NewExitError(ExitFailure, fmt.Errorf("archive %s: %w", dbPath, err))
	}
	arch, err := store.OpenArchive(dbPath)
	if err != nil {
		return NewExitError(ExitFailure, fmt.Errorf("opening archive: %w", err))
	}
	defer arch.Close()

	counts, err := arch.CountsByTask(cmd.Context())
	if err != nil {
		return NewExitError(ExitFailure, fmt.Errorf("reading archive: %w", err))
	}

	result := StatsResult{Database: dbPath, ByTask: counts}
	for _, tc := range counts {
		result.Total += tc.Count
	}

	formatter := NewOutputFormatter(rootOpts.Format, cmd.OutOrStdout())
	return formatter.PrintResult(result, func(w io.Writer) error {
		fmt.Fprintf(w, "%s: %d 条记录\n", result.Database, result.Total)
		for _, tc := range result.ByTask {
			fmt.Fprintf(w, "  %-24s %d\n", tc.Task, tc.Count)
		}
		return nil
	})
}
