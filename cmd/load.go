package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pable/go-soccer-stats/internal/storage"
)

var loadCmd = &cobra.Command{
	Use:   "load <dataset.sqlite>",
	Short: "Import the European Soccer Dataset",
	Long: `Import the Kaggle European Soccer Dataset SQLite file into the local
fact store. Leagues, teams, players, matches (with lineups) and player
attribute snapshots are loaded; reloading the same file replaces rows
in place.`,
	Args: cobra.ExactArgs(1),
	RunE: runLoad,
}

func runLoad(cmd *cobra.Command, args []string) error {
	srcPath := args[0]
	if _, err := os.Stat(srcPath); err != nil {
		return fmt.Errorf("source dataset: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("create db directory: %w", err)
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	fmt.Fprintf(os.Stdout, "Importing %s ...\n", srcPath)
	rep, err := db.ImportDataset(srcPath)
	if err != nil {
		return fmt.Errorf("import dataset: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Loaded %d leagues, %d teams, %d players\n",
		rep.Leagues, rep.Teams, rep.Players)
	fmt.Fprintf(os.Stdout, "Loaded %d matches (%d lineup entries), %d attribute snapshots\n",
		rep.Matches, rep.Lineups, rep.Snapshots)
	return nil
}
