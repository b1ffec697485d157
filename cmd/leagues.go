package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-soccer-stats/internal/report"
	"github.com/pable/go-soccer-stats/internal/stats"
	"github.com/pable/go-soccer-stats/internal/storage"
)

var leaguesStats bool

var leaguesCmd = &cobra.Command{
	Use:   "leagues",
	Short: "List stored leagues",
	Args:  cobra.NoArgs,
	RunE:  runLeagues,
}

func init() {
	leaguesCmd.Flags().BoolVar(&leaguesStats, "stats", false, "show per-league scoring averages")
}

func runLeagues(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	if leaguesStats {
		out, err := stats.New(db).LeagueGoalAverages()
		if err != nil {
			return err
		}
		report.PrintLeagueStats(os.Stdout, out)
		return nil
	}

	leagues, err := db.ListLeagues()
	if err != nil {
		return fmt.Errorf("list leagues: %w", err)
	}
	if len(leagues) == 0 {
		fmt.Fprintln(os.Stdout, "No leagues stored yet. Run 'soccerstats load <dataset.sqlite>' first.")
		return nil
	}
	report.PrintLeagues(os.Stdout, leagues)
	return nil
}
