package cmd

import (
	"fmt"

	"github.com/PedroBiel/EN-10025/internal/en10025"
	"github.com/PedroBiel/EN-10025/internal/steeldb"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create and populate the steel database",
	Long: `Create the steel database and populate the EN_10025_2_2004 table
from the built-in EN 10025-2:2004 Table 7 dataset.

The command refuses to overwrite an existing database file.

Examples:
  en10025 seed
  en10025 seed --database /path/to/acero_estructural.db`,
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	path := database()

	w, err := steeldb.Create(path)
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.CreateTable(en10025.TableName, en10025.Row{}); err != nil {
		return err
	}

	rows := en10025.ReferenceRows()
	for _, row := range rows {
		if err := w.Insert(en10025.TableName, row); err != nil {
			return err
		}
	}

	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("Database created: %s\n", path)
	fmt.Printf("Table %s populated with %d rows\n", en10025.TableName, len(rows))

	return nil
}
