package cmd

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gorcs/internal/section"
	"github.com/spf13/cobra"
)

var checkFile string

var shearCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Run both shear checks from a YAML section file",
	Long: `Run the V_Rd,max web crushing check and the V_Rd,c concrete
capacity check for a beam web defined in a YAML file.

Example file:
  name: B-1 support region
  bw: 250
  d: 539
  fck: 20
  fyk: 500
  fywk: 500
  asl: 308
  sigma_cp: 0.66667
  theta_deg: 45

Examples:
  gorcs shear check --file web.yaml
  gorcs shear check -f web.yaml`,
	Run: runShearCheck,
}

func init() {
	shearCmd.AddCommand(shearCheckCmd)

	shearCheckCmd.Flags().StringVarP(&checkFile, "file", "f", "", "Path to section YAML file [required]")
	shearCheckCmd.MarkFlagRequired("file")
}

func runShearCheck(cmd *cobra.Command, args []string) {
	input, err := section.LoadFromFile(checkFile)
	if err != nil {
		fmt.Printf("Error loading section: %v\n", err)
		return
	}

	crushing, err := input.Crushing().Compute()
	if err != nil {
		fmt.Printf("Error computing V_Rd,max: %v\n", err)
		return
	}
	concrete, err := input.Concrete().Compute()
	if err != nil {
		fmt.Printf("Error computing V_Rd,c: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     SECTION SHEAR CHECK - EN 1992-1-1")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	if input.Name != "" {
		fmt.Printf("  Section: %s\n", input.Name)
	}
	if input.Description != "" {
		fmt.Printf("  Description: %s\n", input.Description)
	}
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Web Width (bw):\t%.0f mm\n", input.Bw)
	fmt.Fprintf(tw, "  Effective Depth (d):\t%.0f mm\n", input.D)
	fmt.Fprintf(tw, "  fck:\t%.1f N/mm²\n", input.Fck)
	fmt.Fprintf(tw, "  fyk / fywk:\t%.1f / %.1f N/mm²\n", input.Fyk, input.Fywk)
	fmt.Fprintf(tw, "  Tensile Reinforcement (Asl):\t%.2f mm²\n", input.Asl)
	fmt.Fprintf(tw, "  Axial Stress (σcp):\t%.4f N/mm²\n", input.SigmaCp)
	fmt.Fprintf(tw, "  Strut Angle (θ):\t%.2f°\n", crushing.Theta*180/math.Pi)
	tw.Flush()
	fmt.Println()

	fmt.Println("RESULTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	tw = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  V_Rd,c (no shear reinforcement):\t%.2f kN\n", concrete.Value/1000)
	fmt.Fprintf(tw, "  V_Rd,max (web crushing limit):\t%.2f kN\n", crushing.Value/1000)
	tw.Flush()
	fmt.Println()

	if concrete.VRdc2 > concrete.VRdc1 {
		fmt.Println("  V_Rd,c governed by the minimum stress expression (Eq. 6.2b)")
	} else {
		fmt.Println("  V_Rd,c governed by the reinforcement ratio expression (Eq. 6.2a)")
	}
	fmt.Println()
}
