package diagram

import (
	"fmt"
	"math"

	"github.com/guptarohit/asciigraph"
)

// DrawASCIIEnvelope renders the sampled V_Rd,max envelope as a terminal chart.
// Angles run left to right from the steepest strut (45°) to the shallowest.
func DrawASCIIEnvelope(thetas, values []float64, valueUnit string) string {
	if len(thetas) == 0 || len(values) == 0 {
		return ""
	}

	first := thetas[0] * 180 / math.Pi
	last := thetas[len(thetas)-1] * 180 / math.Pi

	caption := fmt.Sprintf("V_Rd,max (%s) for strut angles %.1f deg to %.1f deg", valueUnit, first, last)
	return asciigraph.Plot(values,
		asciigraph.Height(12),
		asciigraph.Width(60),
		asciigraph.Caption(caption),
	)
}
