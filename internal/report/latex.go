// Package report renders computed shear results for documentation:
// LaTeX fragments for calculation notes and one-page PDF sheets.
// It is presentation-only and never changes the numeric results.
package report

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/gorcs/internal/shear"
)

// LaTeXOptions controls the rendered blocks and numeric precision
type LaTeXOptions struct {
	ShowInputs bool // render the input summary block
	WithSteps  bool // render the intermediate-values block
	Decimals   int  // decimal places for substituted numbers
}

// DefaultLaTeXOptions returns the rendering defaults (all blocks, 3 decimals)
func DefaultLaTeXOptions() LaTeXOptions {
	return LaTeXOptions{ShowInputs: true, WithSteps: true, Decimals: 3}
}

func (o LaTeXOptions) num(x float64) string {
	return fmt.Sprintf("%.*f", o.Decimals, x)
}

// crushingUnits maps a web-crushing units tag to display labels
func crushingUnits(units string) (vUnit, lUnit string) {
	if units == shear.UnitsNmmRad {
		return "N", "mm"
	}
	return "kN", "m"
}

// CrushingLaTeX renders a V_Rd,max result as up to three LaTeX blocks:
// input summary, intermediate values and the final formula with the
// substituted numeric result
func CrushingLaTeX(r *shear.WebCrushingResult, o LaTeXOptions) string {
	q := o.num
	vUnit, lUnit := crushingUnits(r.Units)
	const fUnit = "N/mm^2"

	var blocks []string

	if o.ShowInputs {
		blocks = append(blocks, "$$"+
			`\begin{array}{l l}`+
			fmt.Sprintf(`b_w = %s~\mathrm{%s} & d = %s~\mathrm{%s} \\ `, q(r.Bw), lUnit, q(r.D), lUnit)+
			fmt.Sprintf(`f_{ck} = %s~\mathrm{%s} & f_{yk} = %s~\mathrm{%s} \\ `, q(r.Fck), fUnit, q(r.Fyk), fUnit)+
			fmt.Sprintf(`f_{ywk} = %s~\mathrm{%s} & \theta = %s~\mathrm{rad} \\ `, q(r.Fywk), fUnit, q(r.Theta))+
			fmt.Sprintf(`\alpha_{cw} = %s & \gamma_c = %s`, q(r.Alphacw), q(r.Gammac))+
			`\end{array}$$`)
	}

	if o.WithSteps {
		blocks = append(blocks, "$$"+
			`\begin{array}{l l}`+
			fmt.Sprintf(`z = %s~\mathrm{%s} & f_{cd} = %s~\mathrm{%s} \\ `, q(r.Z), lUnit, q(r.Fcd), fUnit)+
			fmt.Sprintf(`\nu_1 = %s & \tan\theta = %s,~\cot\theta = %s`, q(r.Nu1), q(r.TanTheta), q(r.CotTheta))+
			`\end{array}$$`)
	}

	blocks = append(blocks,
		`\begin{align}`+
			`V_{Rd,\max} &= \frac{\alpha_{cw} \cdot b_w \cdot z \cdot \nu_1 \cdot f_{cd}}{\cot\theta + \tan\theta}\\[3pt]`+
			fmt.Sprintf(`&= %s~\text{%s}`, q(r.Value), vUnit)+
			`\end{align}`)

	return strings.Join(blocks, "\n")
}

// ConcreteLaTeX renders a V_Rd,c result in the same three-block layout
func ConcreteLaTeX(r *shear.ConcreteCapacityResult, o LaTeXOptions) string {
	q := o.num
	vUnit, lUnit := "N", "mm"
	if r.Units == shear.UnitsKNm {
		vUnit, lUnit = "kN", "m"
	}
	const fUnit = "N/mm^2"
	aUnit := lUnit + "^2"

	var blocks []string

	if o.ShowInputs {
		blocks = append(blocks, "$$"+
			`\begin{array}{l l}`+
			fmt.Sprintf(`C_{Rd,c} = %s & A_{sl} = %s~\mathrm{%s} \\ `, q(r.CRdc), q(r.Asl), aUnit)+
			fmt.Sprintf(`f_{ck} = %s~\mathrm{%s} & \sigma_{cp} = %s~\mathrm{%s} \\ `, q(r.Fck), fUnit, q(r.Sigmacp), fUnit)+
			fmt.Sprintf(`b_w = %s~\mathrm{%s} & d = %s~\mathrm{%s}`, q(r.Bw), lUnit, q(r.D), lUnit)+
			`\end{array}$$`)
	}

	if o.WithSteps {
		blocks = append(blocks, "$$"+
			`\begin{array}{l l}`+
			fmt.Sprintf(`\rho_l = %s & k = %s \\ `, q(r.RhoL), q(r.K))+
			fmt.Sprintf(`v_{min} = %s~\mathrm{%s} & k_1 = %s \\ `, q(r.Vmin), fUnit, q(r.K1))+
			fmt.Sprintf(`V_{Rd,c1} = %s~\mathrm{N} & V_{Rd,c2} = %s~\mathrm{N}`, q(r.VRdc1), q(r.VRdc2))+
			`\end{array}$$`)
	}

	blocks = append(blocks,
		`\begin{align}`+
			`V_{Rd,c} &= \max \left\{\begin{matrix}`+
			`[C_{Rd,c} \cdot k \cdot (100 \cdot \rho_l \cdot f_{ck})^{1/3} + k_1 \cdot \sigma_{cp}] \cdot b_w \cdot d \\ `+
			`(v_{min} + k_1 \cdot \sigma_{cp}) \cdot b_w \cdot d`+
			`\end{matrix}\right.\\[3pt]`+
			fmt.Sprintf(`&= %s~\text{%s}`, q(r.Value), vUnit)+
			`\end{align}`)

	return strings.Join(blocks, "\n")
}
