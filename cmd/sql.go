package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pable/go-soccer-stats/internal/report"
	"github.com/pable/go-soccer-stats/internal/storage"
)

var sqlCmd = &cobra.Command{
	Use:   "sql <query>",
	Short: "Run a raw SQL query against the fact store",
	Long: `Run an arbitrary SELECT against the fact store and print results as a table.

Schema overview:
  leagues(league_id, name, country_name)
  teams(team_id, long_name, short_name)
  players(player_id, name, birthday, height, weight)
  matches(match_id, league_id, league_name, season, stage, match_date,
    home_team_id, home_team_name, away_team_id, away_team_name,
    home_goals, away_goals, result)
  match_lineups(match_id, player_id, side, slot)
  player_attributes(player_id, snapshot_date, overall_rating, potential,
    preferred_foot, ..., gk_reflexes)`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSQL,
}

func runSQL(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	cols, rows, err := db.QueryRaw(query)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Println("(no rows)")
		return nil
	}
	report.PrintRaw(os.Stdout, cols, rows)
	return nil
}
