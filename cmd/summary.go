package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-soccer-stats/internal/report"
	"github.com/pable/go-soccer-stats/internal/storage"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show row counts for the stored dataset",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	o, err := db.CountAll()
	if err != nil {
		return fmt.Errorf("count rows: %w", err)
	}
	report.PrintOverview(os.Stdout, *o)
	return nil
}
