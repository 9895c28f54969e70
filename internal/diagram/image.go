package diagram

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ExportEnvelope exports the V_Rd,max envelope to an image file
// (png, svg or pdf by extension)
func ExportEnvelope(thetas, values []float64, valueUnit, filename string) error {
	if len(thetas) != len(values) || len(thetas) == 0 {
		return fmt.Errorf("mismatched envelope data: %d angles, %d values", len(thetas), len(values))
	}

	p := plot.New()
	p.Title.Text = "Web Crushing Resistance Envelope"
	p.X.Label.Text = "Strut angle θ (deg)"
	p.Y.Label.Text = fmt.Sprintf("V_Rd,max (%s)", valueUnit)

	pts := make(plotter.XYs, len(thetas))
	maxIdx := 0
	for i := range thetas {
		pts[i] = plotter.XY{X: thetas[i] * 180 / math.Pi, Y: values[i]}
		if values[i] > values[maxIdx] {
			maxIdx = i
		}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(line)

	// Mark the governing point
	peak, err := plotter.NewScatter(plotter.XYs{pts[maxIdx]})
	if err != nil {
		return err
	}
	peak.GlyphStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	peak.GlyphStyle.Radius = vg.Points(4)
	p.Add(peak)

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	return p.Save(6*vg.Inch, 4*vg.Inch, filename)
}
