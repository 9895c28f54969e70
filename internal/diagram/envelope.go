// Package diagram draws the web-crushing resistance envelope over the
// permitted strut inclinations, as an ASCII chart or an exported image.
package diagram

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gorcs/internal/ec2"
	"github.com/alexiusacademia/gorcs/internal/shear"
)

// CrushingEnvelope samples V_Rd,max for a fixed section across the permitted
// strut inclination range 1.0 ≤ cot θ ≤ 2.5. It returns the sampled angles
// (radians, steepest first) and the matching resistances.
func CrushingEnvelope(base shear.WebCrushing, n int) (thetas, values []float64, err error) {
	if n < 2 {
		return nil, nil, fmt.Errorf("envelope needs at least 2 sample points, got %d", n)
	}

	thetas = make([]float64, n)
	values = make([]float64, n)

	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		cot := ec2.CotThetaMin + t*(ec2.CotThetaMax-ec2.CotThetaMin)

		w := base
		w.Theta = math.Atan(1 / cot)
		v, err := w.Value()
		if err != nil {
			return nil, nil, err
		}
		thetas[i] = w.Theta
		values[i] = v
	}

	return thetas, values, nil
}
