package cmd

import (
	"fmt"

	"github.com/PedroBiel/EN-10025/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of en10025",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("en10025 v%s\n", version.Version)
		fmt.Println("Structural Steel Properties Lookup Tool")
		fmt.Println("Based on EN 10025-2:2004 (Hot rolled products of structural steels)")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
