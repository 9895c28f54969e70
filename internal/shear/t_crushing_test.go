package shear

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_vrdmax01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vrdmax01. worked example, 45 degree strut")

	// 250x539 web, C20/25, B500 steel. By hand:
	//   z = 485.1, fcd = 40/3, ν1 = 0.552, tanθ = cotθ = 1
	//   V = 250·485.1·0.552·(40/3)/2 = 446292 N
	w := NewWebCrushing(250, 539, 20, 500, 500, math.Pi/4)
	val, err := w.Value()
	if err != nil {
		tst.Errorf("Value failed: %v", err)
		return
	}
	chk.Float64(tst, "V_Rd,max", 1e-5, val, 446292.0)
}

func Test_vrdmax02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vrdmax02. detailed result agrees with scalar")

	w := NewWebCrushing(250, 539, 20, 500, 500, math.Pi/4)

	val, err := w.Value()
	if err != nil {
		tst.Errorf("Value failed: %v", err)
		return
	}
	res, err := w.Compute()
	if err != nil {
		tst.Errorf("Compute failed: %v", err)
		return
	}

	chk.Float64(tst, "value == detailed value", 1e-17, val, res.Value)
	chk.Float64(tst, "z", 1e-12, res.Z, 0.9*539)
	chk.Float64(tst, "fcd", 1e-14, res.Fcd, 20.0/1.5)
	chk.Float64(tst, "ν1", 1e-15, res.Nu1, 0.6*(1-20.0/250.0))
	chk.Float64(tst, "tanθ", 1e-15, res.TanTheta, 1.0)
	chk.Float64(tst, "cotθ", 1e-15, res.CotTheta, 1.0)

	// inputs are echoed untouched
	chk.Float64(tst, "bw echo", 1e-17, res.Bw, 250)
	chk.Float64(tst, "αcw default", 1e-17, res.Alphacw, 1.0)
	chk.Float64(tst, "γc default", 1e-17, res.Gammac, 1.5)
	if res.Units != UnitsNmmRad {
		tst.Errorf("units echo: got %q", res.Units)
	}
}

func Test_vrdmax03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vrdmax03. N-mm-rad and kN-m-rad round trip")

	nmm := NewWebCrushing(250, 539, 20, 500, 500, math.Pi/4)
	vN, err := nmm.Value()
	if err != nil {
		tst.Errorf("Value failed: %v", err)
		return
	}

	knm := NewWebCrushing(250.0/1000, 539.0/1000, 20*1000, 500*1000, 500*1000, math.Pi/4)
	knm.Units = UnitsKNmRad
	vkN, err := knm.Value()
	if err != nil {
		tst.Errorf("Value failed: %v", err)
		return
	}

	chk.Float64(tst, "unit round trip", 1e-6, vN, 1000*vkN)
}

func Test_vrdmax04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vrdmax04. unsupported units rejected")

	w := NewWebCrushing(250, 539, 20, 500, 500, math.Pi/4)
	w.Units = "bad-unit"

	if _, err := w.Value(); err == nil {
		tst.Errorf("Value should fail for units %q", w.Units)
	}
	if _, err := w.Compute(); err == nil {
		tst.Errorf("Compute should fail for units %q", w.Units)
	}
}

func Test_vrdmax05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vrdmax05. fcd monotonicity in the low-ductility branch")

	// fywk < 0.8 fyk keeps ν1 flat at 0.6, so the resistance
	// grows strictly with fck
	prev := 0.0
	for _, fck := range []float64{20, 30, 40, 50} {
		w := NewWebCrushing(250, 539, fck, 500, 350, math.Pi/4)
		res, err := w.Compute()
		if err != nil {
			tst.Errorf("Compute failed: %v", err)
			return
		}
		chk.Float64(tst, "ν1 flat", 1e-17, res.Nu1, 0.6)
		if res.Value <= prev {
			tst.Errorf("V_Rd,max not increasing: fck=%g gives %g <= %g", fck, res.Value, prev)
			return
		}
		prev = res.Value
	}
}

func Test_vrdmax06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vrdmax06. degenerate geometry propagates, no error")

	// θ = 0 gives cotθ = +Inf in the denominator; the inputs are
	// trusted and the result degenerates instead of failing
	w := NewWebCrushing(250, 539, 20, 500, 500, 0)
	res, err := w.Compute()
	if err != nil {
		tst.Errorf("Compute should not fail on degenerate θ: %v", err)
		return
	}
	if !math.IsInf(res.CotTheta, 1) {
		tst.Errorf("cotθ should be +Inf for θ=0, got %v", res.CotTheta)
	}
	chk.Float64(tst, "value degenerates to 0", 1e-17, res.Value, 0)
}
