package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-soccer-stats/internal/report"
	"github.com/pable/go-soccer-stats/internal/stats"
	"github.com/pable/go-soccer-stats/internal/storage"
)

var recordSeason string

var recordCmd = &cobra.Command{
	Use:   "record <team>",
	Short: "Print a team's win/draw/loss record for one season",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecord,
}

func init() {
	recordCmd.Flags().StringVar(&recordSeason, "season", "2015/2016", "season, e.g. 2015/2016")
}

func runRecord(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	rec, err := stats.New(db).TeamSeasonRecord(args[0], recordSeason)
	if err != nil {
		return err
	}
	report.PrintSeasonRecord(os.Stdout, *rec)
	return nil
}
