package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "soccerstats",
	Short: "European soccer statistics tool",
	Long:  "Load the European Soccer Dataset and compute standings, records, head-to-head tallies and player ratings.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	defaultDB := filepath.Join(mustUserHome(), ".soccerstats", "soccer.db")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", defaultDB, "path to SQLite database")

	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(standingsCmd)
	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(h2hCmd)
	rootCmd.AddCommand(scorelinesCmd)
	rootCmd.AddCommand(ratingsCmd)
	rootCmd.AddCommand(trendCmd)
	rootCmd.AddCommand(topPlayersCmd)
	rootCmd.AddCommand(matchesCmd)
	rootCmd.AddCommand(leaguesCmd)
	rootCmd.AddCommand(teamsCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(sqlCmd)
	rootCmd.AddCommand(dropCmd)
	rootCmd.AddCommand(serveCmd)
}

func mustUserHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
