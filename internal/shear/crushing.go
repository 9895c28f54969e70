package shear

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gorcs/internal/ec2"
)

// Unit system tags for the web-crushing check
const (
	UnitsNmmRad = "N-mm-rad" // lengths in mm, strengths in N/mm², angle in rad, result in N
	UnitsKNmRad = "kN-m-rad" // lengths in m, strengths in kN/m², angle in rad, result in kN
)

// WebCrushing represents the V_Rd,max check: the maximum shear force a
// member can carry before the concrete compression strut crushes
type WebCrushing struct {
	// Geometry
	Bw float64 // smallest web width in the tensile zone
	D  float64 // effective depth

	// Materials
	Fck  float64 // characteristic concrete strength
	Fyk  float64 // characteristic yield strength of reinforcement
	Fywk float64 // characteristic yield strength of shear reinforcement

	// Strut geometry and safety factors
	Theta   float64 // angle between compression strut and member axis (rad)
	Alphacw float64 // compression-chord stress coefficient
	Gammac  float64 // partial safety factor for concrete

	Units string
}

// NewWebCrushing creates a web-crushing check with code-recommended defaults
// (αcw = 1.0, γc = 1.5, N-mm-rad units)
func NewWebCrushing(bw, d, fck, fyk, fywk, theta float64) *WebCrushing {
	return &WebCrushing{
		Bw:      bw,
		D:       d,
		Fck:     fck,
		Fyk:     fyk,
		Fywk:    fywk,
		Theta:   theta,
		Alphacw: ec2.AlphaCW,
		Gammac:  ec2.GammaC,
		Units:   UnitsNmmRad,
	}
}

// WebCrushingResult holds the inputs, intermediate values and the resistance
type WebCrushingResult struct {
	// Inputs as given
	Bw      float64
	D       float64
	Fck     float64
	Fyk     float64
	Fywk    float64
	Theta   float64
	Alphacw float64
	Gammac  float64
	Units   string

	// Intermediate values in the N-mm working space
	Z        float64 // inner lever arm, z = 0.9d (mm)
	Fcd      float64 // design concrete strength (N/mm²)
	Nu1      float64 // strength reduction factor
	TanTheta float64
	CotTheta float64

	// Final resistance, N or kN depending on Units
	Value float64
}

// Compute evaluates V_Rd,max and returns the full result with intermediates.
//
// V_Rd,max = αcw·bw·z·ν1·fcd / (cot θ + tan θ)
//
// Inputs are trusted beyond the units tag: degenerate geometry (d = 0,
// θ = 0 or π) propagates as IEEE infinities or NaN rather than an error.
func (w *WebCrushing) Compute() (*WebCrushingResult, error) {
	sL, sF := 1.0, 1.0
	switch w.Units {
	case UnitsNmmRad:
	case UnitsKNmRad:
		sL, sF = 1000.0, 0.001
	default:
		return nil, fmt.Errorf("unsupported units %q: must be %q or %q", w.Units, UnitsNmmRad, UnitsKNmRad)
	}

	// Normalize into the mm / N/mm² working space
	bw, d := w.Bw*sL, w.D*sL
	fck, fyk, fywk := w.Fck*sF, w.Fyk*sF, w.Fywk*sF

	z := 0.9 * d
	fcd := ec2.Fcd(fck, w.Gammac)
	nu1 := ec2.Nu1(fck, fyk, fywk)
	tanTheta := math.Tan(w.Theta)
	cotTheta := 1 / tanTheta

	value := w.Alphacw * bw * z * nu1 * fcd / (tanTheta + cotTheta)
	if w.Units == UnitsKNmRad {
		value *= 0.001
	}

	return &WebCrushingResult{
		Bw:       w.Bw,
		D:        w.D,
		Fck:      w.Fck,
		Fyk:      w.Fyk,
		Fywk:     w.Fywk,
		Theta:    w.Theta,
		Alphacw:  w.Alphacw,
		Gammac:   w.Gammac,
		Units:    w.Units,
		Z:        z,
		Fcd:      fcd,
		Nu1:      nu1,
		TanTheta: tanTheta,
		CotTheta: cotTheta,
		Value:    value,
	}, nil
}

// Value evaluates V_Rd,max and returns the resistance alone
func (w *WebCrushing) Value() (float64, error) {
	res, err := w.Compute()
	if err != nil {
		return 0, err
	}
	return res.Value, nil
}
