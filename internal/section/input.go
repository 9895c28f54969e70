// Package section defines the YAML input model for running both shear
// checks of a beam web from a single file.
package section

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/gorcs/internal/ec2"
	"github.com/alexiusacademia/gorcs/internal/shear"
)

// CheckInput describes a beam web for shear checking.
// All lengths are in mm, areas in mm², stresses in N/mm²; the strut angle
// is given in degrees for readability in the file.
type CheckInput struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`

	// Geometry (mm)
	Bw float64 `yaml:"bw"`
	D  float64 `yaml:"d"`

	// Materials (N/mm²)
	Fck  float64 `yaml:"fck"`
	Fyk  float64 `yaml:"fyk"`
	Fywk float64 `yaml:"fywk"`

	// Loading state
	Asl      float64 `yaml:"asl"`       // tensile reinforcement area (mm²)
	SigmaCp  float64 `yaml:"sigma_cp"`  // axial compressive stress (N/mm²)
	ThetaDeg float64 `yaml:"theta_deg"` // strut angle (degrees), default 45

	// Optional overrides of the code-recommended values
	AlphaCw float64 `yaml:"alpha_cw,omitempty"`
	GammaC  float64 `yaml:"gamma_c,omitempty"`
	CRdc    float64 `yaml:"crdc,omitempty"`
}

// LoadFromFile loads a shear-check definition from a YAML file
func LoadFromFile(filepath string) (*CheckInput, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	var input CheckInput
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	return &input, nil
}

// Validate checks if the definition is physically usable
func (in *CheckInput) Validate() error {
	if in.Bw <= 0 {
		return &ValidationError{"bw must be positive"}
	}
	if in.D <= 0 {
		return &ValidationError{"d must be positive"}
	}
	if in.Fck <= 0 {
		return &ValidationError{"fck must be positive"}
	}
	if in.Fyk <= 0 {
		return &ValidationError{"fyk must be positive"}
	}
	if in.Fywk <= 0 {
		return &ValidationError{"fywk must be positive"}
	}
	if in.Asl <= 0 {
		return &ValidationError{"asl must be positive"}
	}
	if in.ThetaDeg < 0 || in.ThetaDeg >= 90 {
		return &ValidationError{msg: fmt.Sprintf("theta_deg must be in [0, 90), got %g", in.ThetaDeg)}
	}
	return nil
}

// Crushing builds the V_Rd,max check from the input, applying overrides
func (in *CheckInput) Crushing() *shear.WebCrushing {
	theta := in.ThetaDeg * math.Pi / 180
	if in.ThetaDeg == 0 {
		theta = math.Pi / 4
	}

	w := shear.NewWebCrushing(in.Bw, in.D, in.Fck, in.Fyk, in.Fywk, theta)
	if in.AlphaCw > 0 {
		w.Alphacw = in.AlphaCw
	}
	if in.GammaC > 0 {
		w.Gammac = in.GammaC
	}
	return w
}

// Concrete builds the V_Rd,c check from the input; C_Rd,c defaults to 0.18/γc
func (in *CheckInput) Concrete() *shear.ConcreteCapacity {
	cRdc := in.CRdc
	if cRdc == 0 {
		gammaC := in.GammaC
		if gammaC == 0 {
			gammaC = ec2.GammaC
		}
		cRdc = ec2.CRdc(gammaC)
	}
	return shear.NewConcreteCapacity(cRdc, in.Asl, in.Fck, in.SigmaCp, in.Bw, in.D)
}

// ValidationError represents a check-input validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
