package diagram

import (
	"fmt"
	"strings"
)

// PropertyChartData holds data for drawing a strength-over-thickness chart
// of one steel grade.
type PropertyChartData struct {
	Grade string

	// One entry per thickness band, bands ascending
	Bounds []int // band upper bounds (mm)
	Fy     []int // yield strength per band (N/mm²)
	Fu     []int // tensile strength per band (N/mm²)
}

// DrawASCIIPropertyChart creates an ASCII bar chart of yield and tensile
// strength across the thickness bands.
func DrawASCIIPropertyChart(data PropertyChartData) string {
	var sb strings.Builder

	barWidth := 40

	// Scale bars against the largest tensile strength
	maxVal := 1
	for _, fu := range data.Fu {
		if fu > maxVal {
			maxVal = fu
		}
	}

	sb.WriteString(fmt.Sprintf("\n  %s - strength over nominal thickness\n\n", data.Grade))

	prev := 0
	for i, bound := range data.Bounds {
		if i >= len(data.Fy) || i >= len(data.Fu) {
			break
		}

		fyBar := data.Fy[i] * barWidth / maxVal
		fuBar := data.Fu[i] * barWidth / maxVal

		sb.WriteString(fmt.Sprintf("  >%3d - %3d mm\n", prev, bound))
		sb.WriteString(fmt.Sprintf("    fy %s %d N/mm²\n",
			strings.Repeat("█", fyBar), data.Fy[i]))
		sb.WriteString(fmt.Sprintf("    fu %s %d N/mm²\n",
			strings.Repeat("░", fuBar), data.Fu[i]))

		prev = bound
	}

	sb.WriteString("\n")

	return sb.String()
}
