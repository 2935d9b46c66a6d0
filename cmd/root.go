package cmd

import (
	"fmt"
	"os"

	"github.com/PedroBiel/EN-10025/internal/en10025"
	"github.com/PedroBiel/EN-10025/internal/steeldb"
	"github.com/PedroBiel/EN-10025/internal/version"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const defaultDatabase = "acero_estructural.db"

var databasePath string

var rootCmd = &cobra.Command{
	Use:   "en10025",
	Short: "Structural Steel Properties Lookup Tool",
	Long: `en10025 - EN 10025-2 Structural Steel Properties

A CLI tool for retrieving mechanical properties of hot rolled
non-alloy structural steels per EN 10025-2:2004.

This tool helps structural engineers obtain:
  - Yield strength (fy) for a grade and nominal thickness
  - Tensile strength (fu) for a grade and nominal thickness
  - The available steel grades and their principal symbols
  - Strength-over-thickness charts per grade

All values follow EN 10025-2:2004, Table 7.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   en10025 v%-47s║\n", version.Version)
		fmt.Println("  ║   EN 10025-2 Structural Steel Properties                  ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for retrieving mechanical properties of hot")
		fmt.Println("  rolled non-alloy structural steels per EN 10025-2:2004.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Yield and tensile strength lookup per grade and thickness")
		fmt.Println("    • Listing of grades and principal designation symbols")
		fmt.Println("    • Strength-over-thickness charts (ASCII and image export)")
		fmt.Println("    • Database seeding from the built-in Table 7 dataset")
		fmt.Println()
		fmt.Println("  Use 'en10025 --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&databasePath, "database", "",
		"Path to the steel database (default $STEELDB_PATH or "+defaultDatabase+")")
}

// database resolves the database path from the flag, a .env file or the
// environment.
func database() string {
	if databasePath != "" {
		return databasePath
	}

	godotenv.Load()
	if p := os.Getenv("STEELDB_PATH"); p != "" {
		return p
	}

	return defaultDatabase
}

// loadTable opens the database and reads the full property table.
func loadTable() (*en10025.Table, error) {
	r, err := steeldb.OpenReader(database())
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return en10025.Load(r)
}
