package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-soccer-stats/internal/report"
	"github.com/pable/go-soccer-stats/internal/stats"
	"github.com/pable/go-soccer-stats/internal/storage"
)

var trendCmd = &cobra.Command{
	Use:   "trend <team>",
	Short: "Show a team's average roster rating season by season",
	Long: `Show how a team's roster rated over the seasons it played. For each
season, the players who appeared in the team's lineups are averaged over
the attribute snapshots dated inside that season's match window.`,
	Args: cobra.ExactArgs(1),
	RunE: runTrend,
}

func runTrend(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	trend, err := stats.New(db).TeamRatingTrend(args[0])
	if err != nil {
		return err
	}
	if len(trend) == 0 {
		fmt.Fprintf(os.Stdout, "No rated lineups for %q in any season.\n", args[0])
		return nil
	}
	report.PrintTeamTrend(os.Stdout, args[0], trend)
	return nil
}
