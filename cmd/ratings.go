package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-soccer-stats/internal/report"
	"github.com/pable/go-soccer-stats/internal/stats"
	"github.com/pable/go-soccer-stats/internal/storage"
)

var ratingsCmd = &cobra.Command{
	Use:   "ratings <player>",
	Short: "Print a player's attribute history, oldest first",
	Args:  cobra.ExactArgs(1),
	RunE:  runRatings,
}

func runRatings(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	series, err := stats.New(db).RatingSeries(args[0])
	if err != nil {
		return err
	}
	report.PrintRatingSeries(os.Stdout, series)
	return nil
}
