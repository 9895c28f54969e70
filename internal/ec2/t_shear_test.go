package ec2

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_nu101(tst *testing.T) {

	//verbose()
	chk.PrintTitle("nu101. strength reduction factor branches")

	// standard case: fywk >= 0.8 fyk
	chk.Float64(tst, "ν1 C20", 1e-15, Nu1(20, 500, 500), 0.6*(1-20.0/250.0))
	chk.Float64(tst, "ν1 C50", 1e-15, Nu1(50, 500, 500), 0.6*(1-50.0/250.0))

	// low-ductility shear reinforcement: flat 0.6
	chk.Float64(tst, "ν1 low-ductility", 1e-15, Nu1(50, 500, 399), 0.6)

	// branch boundary: fywk exactly 0.8 fyk takes the reduced value
	chk.Float64(tst, "ν1 boundary", 1e-15, Nu1(20, 500, 400), 0.552)
}

func Test_sizefactor01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sizefactor01. k with and without cap")

	chk.Float64(tst, "k d=539", 1e-15, SizeFactor(539), 1+math.Sqrt(200.0/539.0))
	chk.Float64(tst, "k d=200", 1e-15, SizeFactor(200), 2.0)
	chk.Float64(tst, "k d=100 capped", 1e-17, SizeFactor(100), 2.0)
}

func Test_rhol01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rhol01. reinforcement ratio with and without cap")

	chk.Float64(tst, "ρl", 1e-17, RhoL(308, 250, 539), 308.0/(250.0*539.0))
	chk.Float64(tst, "ρl capped", 1e-17, RhoL(5000, 250, 539), RhoLMax)
}

func Test_vmin01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vmin01. minimum shear stress")

	k := SizeFactor(539)
	chk.Float64(tst, "vmin", 1e-15, Vmin(20, 539), 0.035*math.Pow(k, 1.5)*math.Sqrt(20))
}

func Test_coefficients01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("coefficients01. design strength and C_Rd,c")

	chk.Float64(tst, "fcd", 1e-14, Fcd(20, GammaC), 20.0/1.5)
	chk.Float64(tst, "C_Rd,c", 1e-15, CRdc(GammaC), 0.12)
}
