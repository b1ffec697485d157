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
	topPlayersLeague string
	topPlayersLimit  int
)

var topPlayersCmd = &cobra.Command{
	Use:   "topplayers",
	Short: "Rank players by average overall rating",
	Args:  cobra.NoArgs,
	RunE:  runTopPlayers,
}

func init() {
	topPlayersCmd.Flags().StringVar(&topPlayersLeague, "league", "", "restrict to players who appeared in this league")
	topPlayersCmd.Flags().IntVar(&topPlayersLimit, "limit", 10, "number of players to show")
}

func runTopPlayers(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	entries, err := stats.New(db).TopPlayers(topPlayersLeague, topPlayersLimit)
	if err != nil {
		return err
	}
	report.PrintTopPlayers(os.Stdout, entries)
	return nil
}
