package report

import (
	"math"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/alexiusacademia/gorcs/internal/shear"
)

func crushingFixture(tst *testing.T) *shear.WebCrushingResult {
	w := shear.NewWebCrushing(250, 539, 20, 500, 500, math.Pi/4)
	res, err := w.Compute()
	if err != nil {
		tst.Fatalf("Compute failed: %v", err)
	}
	return res
}

func Test_latex01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("latex01. three blocks with defaults")

	res := crushingFixture(tst)
	out := CrushingLaTeX(res, DefaultLaTeXOptions())

	blocks := strings.Split(out, "\n")
	if len(blocks) != 3 {
		tst.Errorf("expected 3 blocks, got %d:\n%s", len(blocks), out)
		return
	}
	if !strings.Contains(blocks[0], `b_w = 250.000`) {
		tst.Errorf("input block missing bw:\n%s", blocks[0])
	}
	if !strings.Contains(blocks[1], `\nu_1 = 0.552`) {
		tst.Errorf("steps block missing ν1:\n%s", blocks[1])
	}
	if !strings.Contains(blocks[2], `V_{Rd,\max}`) || !strings.Contains(blocks[2], `446292.000~\text{N}`) {
		tst.Errorf("final block missing substituted result:\n%s", blocks[2])
	}
}

func Test_latex02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("latex02. block selection and precision")

	res := crushingFixture(tst)

	out := CrushingLaTeX(res, LaTeXOptions{ShowInputs: false, WithSteps: false, Decimals: 1})
	if n := len(strings.Split(out, "\n")); n != 1 {
		tst.Errorf("expected only the formula block, got %d blocks", n)
	}
	if !strings.Contains(out, `446292.0~\text{N}`) {
		tst.Errorf("1-decimal formatting missing:\n%s", out)
	}

	out = CrushingLaTeX(res, LaTeXOptions{ShowInputs: true, WithSteps: false, Decimals: 3})
	if n := len(strings.Split(out, "\n")); n != 2 {
		tst.Errorf("expected inputs + formula blocks, got %d blocks", n)
	}
}

func Test_latex03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("latex03. concrete capacity rendering")

	c := shear.NewConcreteCapacity(0.12, 308, 20, 0.66667, 250, 539)
	res, err := c.Compute()
	if err != nil {
		tst.Fatalf("Compute failed: %v", err)
	}

	out := ConcreteLaTeX(res, DefaultLaTeXOptions())
	blocks := strings.Split(out, "\n")
	if len(blocks) != 3 {
		tst.Errorf("expected 3 blocks, got %d:\n%s", len(blocks), out)
		return
	}
	if !strings.Contains(blocks[0], `C_{Rd,c} = 0.120`) {
		tst.Errorf("input block missing C_Rd,c:\n%s", blocks[0])
	}
	if !strings.Contains(blocks[1], `\rho_l = 0.002`) {
		tst.Errorf("steps block missing ρl:\n%s", blocks[1])
	}
	if !strings.Contains(blocks[2], `V_{Rd,c}`) || !strings.Contains(blocks[2], `\max`) {
		tst.Errorf("final block missing max expression:\n%s", blocks[2])
	}
}
