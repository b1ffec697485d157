package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-soccer-stats/internal/report"
	"github.com/pable/go-soccer-stats/internal/stats"
	"github.com/pable/go-soccer-stats/internal/storage"
)

var h2hCmd = &cobra.Command{
	Use:   "h2h <team1> <team2>",
	Short: "Print the all-time head-to-head tally between two teams",
	Args:  cobra.ExactArgs(2),
	RunE:  runH2H,
}

func runH2H(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	rec, err := stats.New(db).HeadToHead(args[0], args[1])
	if err != nil {
		return err
	}
	report.PrintHeadToHead(os.Stdout, *rec)
	return nil
}
