package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-soccer-stats/internal/report"
	"github.com/pable/go-soccer-stats/internal/stats"
	"github.com/pable/go-soccer-stats/internal/storage"
)

var standingsSeason string

var standingsCmd = &cobra.Command{
	Use:   "standings <league>",
	Short: "Print a league table for one season",
	Args:  cobra.ExactArgs(1),
	RunE:  runStandings,
}

func init() {
	standingsCmd.Flags().StringVar(&standingsSeason, "season", "2015/2016", "season, e.g. 2015/2016")
}

func runStandings(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	table, err := stats.New(db).LeagueStandings(args[0], standingsSeason)
	if err != nil {
		return err
	}
	if len(table) == 0 {
		fmt.Fprintf(os.Stdout, "No matches for %q in season %s.\n", args[0], standingsSeason)
		return nil
	}
	report.PrintStandings(os.Stdout, args[0], standingsSeason, table)
	return nil
}
