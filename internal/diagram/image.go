package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ExportPropertyChart exports the strength-over-thickness chart of a grade
// to an image file (png, svg, pdf by extension).
func ExportPropertyChart(data PropertyChartData, filename string) error {
	if len(data.Bounds) == 0 {
		return fmt.Errorf("no thickness bands to plot")
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s - EN 10025-2 Mechanical Properties", data.Grade)
	p.X.Label.Text = "Nominal thickness (mm)"
	p.Y.Label.Text = "Strength (N/mm²)"

	fyLine, err := plotter.NewLine(staircase(data.Bounds, data.Fy))
	if err != nil {
		return err
	}
	fyLine.LineStyle.Width = vg.Points(2)
	fyLine.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	p.Add(fyLine)
	p.Legend.Add("fy (ReH)", fyLine)

	fuLine, err := plotter.NewLine(staircase(data.Bounds, data.Fu))
	if err != nil {
		return err
	}
	fuLine.LineStyle.Width = vg.Points(2)
	fuLine.LineStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	p.Add(fuLine)
	p.Legend.Add("fu (Rm)", fuLine)

	// Mark band upper bounds on the yield curve
	bandPoints := make(plotter.XYs, 0, len(data.Bounds))
	for i, bound := range data.Bounds {
		if i >= len(data.Fy) {
			break
		}
		bandPoints = append(bandPoints,
			plotter.XY{X: float64(bound), Y: float64(data.Fy[i])})
	}

	bandMarks, err := plotter.NewScatter(bandPoints)
	if err != nil {
		return err
	}
	bandMarks.GlyphStyle.Shape = draw.CircleGlyph{}
	bandMarks.GlyphStyle.Color = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	bandMarks.GlyphStyle.Radius = vg.Points(3)
	p.Add(bandMarks)

	p.Legend.Top = true
	p.Y.Min = 0

	width := 8 * vg.Inch
	height := 6 * vg.Inch

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	return p.Save(width, height, filename)
}

// staircase builds the step polyline of a banded property: the value holds
// constant over each band and steps at the band's upper bound.
func staircase(bounds []int, values []int) plotter.XYs {
	pts := plotter.XYs{}

	prev := 0.0
	for i, bound := range bounds {
		if i >= len(values) {
			break
		}
		v := float64(values[i])
		pts = append(pts,
			plotter.XY{X: prev, Y: v},
			plotter.XY{X: float64(bound), Y: v})
		prev = float64(bound)
	}

	return pts
}
