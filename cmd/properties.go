package cmd

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/PedroBiel/EN-10025/internal/en10025"
	"github.com/spf13/cobra"
)

var propertiesCmd = &cobra.Command{
	Use:   "properties <grade> <thickness>",
	Short: "Look up yield and tensile strength for a grade and thickness",
	Long: `Retrieve the minimum yield strength (fy) and tensile strength (fu)
of a structural steel grade for a nominal thickness in mm.

The grade may be a full designation ("S 235 JR") or a principal
symbol ("S 235"). A principal symbol matches the first quality of
that grade in the table.

Examples:
  # Properties of S 275 JR at 25 mm
  en10025 properties "S 275 JR" 25

  # Using the principal symbol
  en10025 properties "S 355" 50`,
	Args: cobra.ExactArgs(2),
	RunE: runProperties,
}

func init() {
	rootCmd.AddCommand(propertiesCmd)
}

func runProperties(cmd *cobra.Command, args []string) error {
	grade := args[0]

	thickness, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid thickness %q: %w", args[1], err)
	}

	table, err := loadTable()
	if err != nil {
		return err
	}

	fy, fu, err := table.Properties(grade, thickness)
	if err != nil {
		return err
	}

	tmax, err := en10025.BandUpperBound(thickness)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     MECHANICAL PROPERTIES - EN 10025-2:2004")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Steel grade:\t%s\n", grade)
	fmt.Fprintf(w, "  Nominal thickness (t):\t%g mm\n", thickness)
	fmt.Fprintf(w, "  Thickness band:\tt ≤ %d mm\n", tmax)
	w.Flush()
	fmt.Println()

	fmt.Println("RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Println("  ╔═════════════════════════════════════════╗")
	fmt.Printf("  ║  fy (ReH) = %d N/mm²                   \n", fy)
	fmt.Printf("  ║  fu (Rm)  = %d N/mm²                   \n", fu)
	fmt.Println("  ╚═════════════════════════════════════════╝")
	fmt.Println()

	return nil
}
