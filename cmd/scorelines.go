package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-soccer-stats/internal/report"
	"github.com/pable/go-soccer-stats/internal/stats"
	"github.com/pable/go-soccer-stats/internal/storage"
)

var scorelinesLimit int

var scorelinesCmd = &cobra.Command{
	Use:   "scorelines",
	Short: "Print the most common scorelines across all matches",
	Args:  cobra.NoArgs,
	RunE:  runScorelines,
}

func init() {
	scorelinesCmd.Flags().IntVar(&scorelinesLimit, "limit", 10, "number of scorelines to show")
}

func runScorelines(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	tallies, err := stats.New(db).CommonScorelines(scorelinesLimit)
	if err != nil {
		return err
	}
	report.PrintScorelines(os.Stdout, tallies)
	return nil
}
