package cmd

import (
	"fmt"

	"github.com/PedroBiel/EN-10025/internal/diagram"
	"github.com/PedroBiel/EN-10025/internal/en10025"
	"github.com/spf13/cobra"
)

var (
	plotShowASCII  bool
	plotExportFile string
)

var plotCmd = &cobra.Command{
	Use:   "plot <grade>",
	Short: "Chart yield and tensile strength over the thickness bands",
	Long: `Draw the strength-over-thickness staircase of a steel grade across
all thickness bands of EN 10025-2:2004.

Examples:
  # ASCII chart on stdout
  en10025 plot "S 355 JR" --ascii

  # Export to an image file (png, svg, pdf)
  en10025 plot "S 235 JR" -o s235.png`,
	Args: cobra.ExactArgs(1),
	RunE: runPlot,
}

func init() {
	rootCmd.AddCommand(plotCmd)

	plotCmd.Flags().BoolVar(&plotShowASCII, "ascii", false, "Show ASCII chart on stdout")
	plotCmd.Flags().StringVarP(&plotExportFile, "output", "o", "", "Export chart to file (png, svg, pdf)")
}

func runPlot(cmd *cobra.Command, args []string) error {
	grade := args[0]

	if !plotShowASCII && plotExportFile == "" {
		plotShowASCII = true
	}

	table, err := loadTable()
	if err != nil {
		return err
	}

	data := diagram.PropertyChartData{Grade: grade}
	for _, bound := range en10025.BandUpperBounds {
		fy, fu, err := table.Properties(grade, float64(bound))
		if err != nil {
			return err
		}

		data.Bounds = append(data.Bounds, bound)
		data.Fy = append(data.Fy, fy)
		data.Fu = append(data.Fu, fu)
	}

	if plotShowASCII {
		fmt.Println(diagram.DrawASCIIPropertyChart(data))
	}

	if plotExportFile != "" {
		if err := diagram.ExportPropertyChart(data, plotExportFile); err != nil {
			return fmt.Errorf("exporting chart: %w", err)
		}
		fmt.Printf("Chart exported to: %s\n", plotExportFile)
	}

	return nil
}
