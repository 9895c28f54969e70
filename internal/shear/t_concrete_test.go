package shear

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_vrdc01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vrdc01. regression fixture, 250x539 web")

	c := NewConcreteCapacity(0.12, 308, 20, 0.66667, 250, 539)
	res, err := c.Compute()
	if err != nil {
		tst.Errorf("Compute failed: %v", err)
		return
	}

	// re-run the code expressions by hand
	rhol := 308.0 / (250.0 * 539.0)
	k := 1 + math.Sqrt(200.0/539.0)
	vmin := 0.035 * math.Pow(k, 1.5) * math.Sqrt(20)
	v1 := (0.12*k*math.Cbrt(100*rhol*20) + 0.15*0.66667) * 250 * 539
	v2 := (vmin + 0.15*0.66667) * 250 * 539

	chk.Float64(tst, "ρl", 1e-17, res.RhoL, rhol)
	chk.Float64(tst, "k", 1e-15, res.K, k)
	chk.Float64(tst, "vmin", 1e-15, res.Vmin, vmin)
	chk.Float64(tst, "k1", 1e-17, res.K1, 0.15)
	chk.Float64(tst, "V_Rd,c1", 1e-8, res.VRdc1, v1)
	chk.Float64(tst, "V_Rd,c2", 1e-8, res.VRdc2, v2)
	chk.Float64(tst, "value = max", 1e-17, res.Value, math.Max(res.VRdc1, res.VRdc2))

	// for this section the reinforcement-ratio expression governs
	if res.Value != res.VRdc1 {
		tst.Errorf("V_Rd,c1 should govern: value=%g, VRdc1=%g, VRdc2=%g", res.Value, res.VRdc1, res.VRdc2)
	}
}

func Test_vrdc02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vrdc02. clamp behavior for ρl and k")

	// heavy reinforcement: raw ratio 5000/(250·200) = 0.1 > 0.02
	c := NewConcreteCapacity(0.12, 5000, 20, 0, 250, 200)
	res, err := c.Compute()
	if err != nil {
		tst.Errorf("Compute failed: %v", err)
		return
	}
	chk.Float64(tst, "ρl capped", 1e-17, res.RhoL, 0.02)
	chk.Float64(tst, "k capped", 1e-17, res.K, 2.0)

	// shallow member below the k cap
	c = NewConcreteCapacity(0.12, 308, 20, 0, 250, 539)
	res, err = c.Compute()
	if err != nil {
		tst.Errorf("Compute failed: %v", err)
		return
	}
	if res.K >= 2.0 {
		tst.Errorf("k should be below the cap for d=539, got %g", res.K)
	}
}

func Test_vrdc03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vrdc03. kN-m unit system round trip")

	nmm := NewConcreteCapacity(0.12, 308, 20, 0.66667, 250, 539)
	resN, err := nmm.Compute()
	if err != nil {
		tst.Errorf("Compute failed: %v", err)
		return
	}

	knm := NewConcreteCapacity(0.12, 308e-6, 20*1000, 0.66667*1000, 0.250, 0.539)
	knm.Units = UnitsKNm
	reskN, err := knm.Compute()
	if err != nil {
		tst.Errorf("Compute failed: %v", err)
		return
	}

	chk.Float64(tst, "value round trip", 1e-8, resN.Value, 1000*reskN.Value)

	// intermediates stay in the N-mm working space
	chk.Float64(tst, "ρl unchanged", 1e-15, reskN.RhoL, resN.RhoL)
	chk.Float64(tst, "k unchanged", 1e-15, reskN.K, resN.K)
	chk.Float64(tst, "vmin unchanged", 1e-12, reskN.Vmin, resN.Vmin)
	chk.Float64(tst, "V_Rd,c1 unchanged", 1e-6, reskN.VRdc1, resN.VRdc1)
}

func Test_vrdc04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vrdc04. unsupported units rejected")

	c := NewConcreteCapacity(0.12, 308, 20, 0.66667, 250, 539)
	c.Units = "furlong-firkin"

	if _, err := c.Compute(); err == nil {
		tst.Errorf("Compute should fail for units %q", c.Units)
	}
}
