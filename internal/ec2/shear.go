package ec2

import "math"

// EN 1992-1-1 Section 6.2 Shear Constants

const (
	// Partial safety factor for concrete (Table 2.1N, persistent/transient)
	GammaC = 1.5

	// Coefficient for the state of stress in the compression chord
	// for non-prestressed members (Section 6.2.3(3), Note 3)
	AlphaCW = 1.0

	// Coefficient on the axial stress term in V_Rd,c (Eq. 6.2a,
	// recommended value)
	K1 = 0.15

	// Cap on the longitudinal reinforcement ratio ρl (Eq. 6.2a)
	RhoLMax = 0.02

	// Cap on the size-effect factor k (Eq. 6.2a)
	KMax = 2.0

	// Permitted range of the strut inclination, 1 ≤ cot θ ≤ 2.5 (Eq. 6.7N)
	CotThetaMin = 1.0
	CotThetaMax = 2.5
)

// Fcd calculates the design compressive strength of concrete
// EN 1992-1-1 Section 3.1.6 (αcc taken as 1.0)
func Fcd(fck, gammaC float64) float64 {
	return fck / gammaC
}

// Nu1 calculates the strength reduction factor for concrete cracked in shear
// EN 1992-1-1 Eq. 6.6N. When the characteristic strength of the shear
// reinforcement is below 80% of the longitudinal steel strength, the flat
// value 0.6 applies (Section 6.2.3(3), Note 2).
func Nu1(fck, fyk, fywk float64) float64 {
	if fywk < 0.8*fyk {
		return 0.6
	}
	return 0.6 * (1 - fck/250.0)
}

// SizeFactor calculates the size-effect factor k for V_Rd,c
// k = 1 + √(200/d) ≤ 2.0, with d in mm (Eq. 6.2a)
func SizeFactor(d float64) float64 {
	return math.Min(1+math.Sqrt(200.0/d), KMax)
}

// RhoL calculates the longitudinal reinforcement ratio
// ρl = Asl/(bw·d) ≤ 0.02 (Eq. 6.2a)
func RhoL(asl, bw, d float64) float64 {
	return math.Min(asl/(bw*d), RhoLMax)
}

// Vmin calculates the minimum shear stress capacity
// vmin = 0.035·k^1.5·√fck (Eq. 6.3N)
func Vmin(fck, d float64) float64 {
	k := SizeFactor(d)
	return 0.035 * math.Pow(k, 1.5) * math.Sqrt(fck)
}

// CRdc returns the recommended C_Rd,c coefficient 0.18/γc (Section 6.2.2(1))
func CRdc(gammaC float64) float64 {
	return 0.18 / gammaC
}
