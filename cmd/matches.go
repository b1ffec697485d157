package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-soccer-stats/internal/report"
	"github.com/pable/go-soccer-stats/internal/stats"
	"github.com/pable/go-soccer-stats/internal/storage"
)

var (
	matchesLimit    int
	matchesMinGoals int
)

var matchesCmd = &cobra.Command{
	Use:   "matches <team>",
	Short: "List a team's matches, most recent first",
	Long: `List a team's matches, most recent first. With --min-goals, only
matches where the team scored at least that many goals are shown.`,
	Args: cobra.ExactArgs(1),
	RunE: runMatches,
}

func init() {
	matchesCmd.Flags().IntVar(&matchesLimit, "limit", 20, "number of matches to show")
	matchesCmd.Flags().IntVar(&matchesMinGoals, "min-goals", 0, "only matches where the team scored at least this many goals")
}

func runMatches(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	engine := stats.New(db)
	if matchesMinGoals > 0 {
		matches, err := engine.HighScoringMatches(args[0], matchesMinGoals)
		if err != nil {
			return err
		}
		if len(matches) > matchesLimit {
			matches = matches[:matchesLimit]
		}
		report.PrintMatches(os.Stdout, matches)
		return nil
	}

	matches, err := engine.RecentMatches(args[0], matchesLimit)
	if err != nil {
		return err
	}
	report.PrintMatches(os.Stdout, matches)
	return nil
}
