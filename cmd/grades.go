package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var gradesShowPrefixes bool

var gradesCmd = &cobra.Command{
	Use:   "grades",
	Short: "List the available steel grades",
	Long: `List the steel quality designations available in the database.

With --prefixes, also show the principal symbol of each designation
per EN 10027-1:2005, e.g. "S 235" for "S 235 JR".

Examples:
  en10025 grades
  en10025 grades --prefixes`,
	RunE: runGrades,
}

func init() {
	rootCmd.AddCommand(gradesCmd)

	gradesCmd.Flags().BoolVarP(&gradesShowPrefixes, "prefixes", "p", false,
		"Show the principal designation symbol of each grade")
}

func runGrades(cmd *cobra.Command, args []string) error {
	table, err := loadTable()
	if err != nil {
		return err
	}

	grades := table.Grades()
	prefixes := table.GradePrefixes()

	fmt.Println()
	fmt.Println("AVAILABLE STEEL GRADES (EN 10025-2:2004):")
	fmt.Println("───────────────────────────────────────────────────────────────")

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if gradesShowPrefixes {
		fmt.Fprintf(w, "  Designation\tPrincipal symbol\n")
		fmt.Fprintf(w, "  ───────────\t────────────────\n")
		for i, g := range grades {
			fmt.Fprintf(w, "  %s\t%s\n", g, prefixes[i])
		}
	} else {
		for _, g := range grades {
			fmt.Fprintf(w, "  %s\n", g)
		}
	}
	w.Flush()
	fmt.Println()

	return nil
}
