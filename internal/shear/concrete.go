package shear

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gorcs/internal/ec2"
)

// Unit system tags for the concrete-only capacity check
const (
	UnitsNmm = "N-mm" // lengths in mm, areas in mm², stresses in N/mm², result in N
	UnitsKNm = "kN-m" // lengths in m, areas in m², stresses in kN/m², result in kN
)

// ConcreteCapacity represents the V_Rd,c check: the design shear resistance
// of a member without shear reinforcement
type ConcreteCapacity struct {
	CRdc    float64 // code coefficient, typically 0.18/γc
	Asl     float64 // area of tensile reinforcement
	Fck     float64 // characteristic concrete strength
	Sigmacp float64 // axial compressive stress N_Ed/Ac
	Bw      float64 // smallest web width in the tensile zone
	D       float64 // effective depth

	Units string
}

// NewConcreteCapacity creates a concrete-capacity check in N-mm units
func NewConcreteCapacity(cRdc, asl, fck, sigmacp, bw, d float64) *ConcreteCapacity {
	return &ConcreteCapacity{
		CRdc:    cRdc,
		Asl:     asl,
		Fck:     fck,
		Sigmacp: sigmacp,
		Bw:      bw,
		D:       d,
		Units:   UnitsNmm,
	}
}

// ConcreteCapacityResult holds the inputs, intermediate values and resistance.
// Intermediate values are always in the N-mm working space; only Value is
// reported in the requested unit system.
type ConcreteCapacityResult struct {
	// Inputs as given
	CRdc    float64
	Asl     float64
	Fck     float64
	Sigmacp float64
	Bw      float64
	D       float64
	Units   string

	// Intermediate values
	RhoL float64 // reinforcement ratio, ≤ 0.02
	K    float64 // size-effect factor, ≤ 2.0
	Vmin float64 // minimum shear stress (N/mm²)
	K1   float64 // axial stress coefficient

	// Candidate resistances (N) and governing value (N or kN per Units)
	VRdc1 float64
	VRdc2 float64
	Value float64
}

// Compute evaluates V_Rd,c as the larger of the two code expressions:
//
//	V_Rd,c1 = [C_Rd,c·k·(100·ρl·fck)^(1/3) + k1·σcp]·bw·d
//	V_Rd,c2 = (vmin + k1·σcp)·bw·d
func (c *ConcreteCapacity) Compute() (*ConcreteCapacityResult, error) {
	asl, fck, sigmacp, bw, d := c.Asl, c.Fck, c.Sigmacp, c.Bw, c.D

	switch c.Units {
	case UnitsNmm:
	case UnitsKNm:
		asl *= 1e6
		fck *= 0.001
		sigmacp *= 0.001
		bw *= 1000
		d *= 1000
	default:
		return nil, fmt.Errorf("unsupported units %q: must be %q or %q", c.Units, UnitsNmm, UnitsKNm)
	}

	rhoL := ec2.RhoL(asl, bw, d)
	k := ec2.SizeFactor(d)
	vmin := ec2.Vmin(fck, d)

	vRdc1 := (c.CRdc*k*math.Cbrt(100*rhoL*fck) + ec2.K1*sigmacp) * bw * d
	vRdc2 := (vmin + ec2.K1*sigmacp) * bw * d

	value := math.Max(vRdc1, vRdc2)
	if c.Units == UnitsKNm {
		value *= 0.001
	}

	return &ConcreteCapacityResult{
		CRdc:    c.CRdc,
		Asl:     c.Asl,
		Fck:     c.Fck,
		Sigmacp: c.Sigmacp,
		Bw:      c.Bw,
		D:       c.D,
		Units:   c.Units,
		RhoL:    rhoL,
		K:       k,
		Vmin:    vmin,
		K1:      ec2.K1,
		VRdc1:   vRdc1,
		VRdc2:   vRdc2,
		Value:   value,
	}, nil
}
