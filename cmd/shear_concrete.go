package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gorcs/internal/ec2"
	"github.com/alexiusacademia/gorcs/internal/report"
	"github.com/alexiusacademia/gorcs/internal/shear"
	"github.com/spf13/cobra"
)

var (
	// Check inputs
	concreteCRdc    float64
	concreteAsl     float64
	concreteFck     float64
	concreteSigmacp float64
	concreteBw      float64
	concreteD       float64
	concreteUnits   string

	// Output options
	concreteLatex    bool
	concreteDecimals int
	concretePdfFile  string
	concreteProject  string
	concreteAuthor   string
)

var shearConcreteCmd = &cobra.Command{
	Use:   "concrete",
	Short: "Concrete shear capacity V_Rd,c without shear reinforcement",
	Long: `Calculate the design shear resistance V_Rd,c of a member without
shear reinforcement (EN 1992-1-1 Section 6.2.2, Eq. 6.2a/6.2b).

The capacity is the larger of the reinforcement-ratio expression and
the minimum-stress expression. Input lengths are in mm, areas in mm²
and stresses in N/mm² for the default 'N-mm' unit system; pass
--units kN-m for m / m² / kN/m² inputs and a result in kN.

Examples:
  # 250x539mm web with 308mm² tension steel under axial compression
  gorcs shear concrete --asl 308 --fck 20 --sigmacp 0.66667 --bw 250 --d 539

  # Explicit C_Rd,c and LaTeX output
  gorcs shear concrete --crdc 0.12 --asl 308 --fck 20 --sigmacp 0.66667 \
      --bw 250 --d 539 --latex`,
	Run: runShearConcrete,
}

func init() {
	shearCmd.AddCommand(shearConcreteCmd)

	shearConcreteCmd.Flags().Float64Var(&concreteCRdc, "crdc", ec2.CRdc(ec2.GammaC), "Code coefficient C_Rd,c (default 0.18/γc)")
	shearConcreteCmd.Flags().Float64VarP(&concreteAsl, "asl", "a", 0, "Tensile reinforcement area Asl [required]")
	shearConcreteCmd.Flags().Float64Var(&concreteFck, "fck", 0, "Characteristic concrete strength fck [required]")
	shearConcreteCmd.Flags().Float64Var(&concreteSigmacp, "sigmacp", 0, "Axial compressive stress σcp = N_Ed/Ac")
	shearConcreteCmd.Flags().Float64VarP(&concreteBw, "bw", "b", 0, "Web width bw [required]")
	shearConcreteCmd.Flags().Float64VarP(&concreteD, "d", "d", 0, "Effective depth d [required]")
	shearConcreteCmd.Flags().StringVarP(&concreteUnits, "units", "u", shear.UnitsNmm, "Unit system (N-mm or kN-m)")

	shearConcreteCmd.Flags().BoolVar(&concreteLatex, "latex", false, "Print the LaTeX calculation blocks")
	shearConcreteCmd.Flags().IntVar(&concreteDecimals, "decimals", 3, "Decimal places in LaTeX output")
	shearConcreteCmd.Flags().StringVar(&concretePdfFile, "pdf", "", "Export PDF calculation sheet to file")
	shearConcreteCmd.Flags().StringVar(&concreteProject, "project", "", "Project name for the PDF sheet")
	shearConcreteCmd.Flags().StringVar(&concreteAuthor, "author", "", "Author name for the PDF sheet")

	shearConcreteCmd.MarkFlagRequired("asl")
	shearConcreteCmd.MarkFlagRequired("fck")
	shearConcreteCmd.MarkFlagRequired("bw")
	shearConcreteCmd.MarkFlagRequired("d")
}

func runShearConcrete(cmd *cobra.Command, args []string) {
	c := shear.NewConcreteCapacity(concreteCRdc, concreteAsl, concreteFck, concreteSigmacp, concreteBw, concreteD)
	c.Units = concreteUnits

	result, err := c.Compute()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	vUnit, lUnit := "N", "mm"
	if result.Units == shear.UnitsKNm {
		vUnit, lUnit = "kN", "m"
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     CONCRETE SHEAR CAPACITY V_Rd,c - EN 1992-1-1")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  C_Rd,c:\t%.4f\n", result.CRdc)
	fmt.Fprintf(tw, "  Tensile Reinforcement (Asl):\t%.2f %s²\n", result.Asl, lUnit)
	fmt.Fprintf(tw, "  fck:\t%.1f\n", result.Fck)
	fmt.Fprintf(tw, "  Axial Stress (σcp):\t%.4f\n", result.Sigmacp)
	fmt.Fprintf(tw, "  Web Width (bw):\t%.2f %s\n", result.Bw, lUnit)
	fmt.Fprintf(tw, "  Effective Depth (d):\t%.2f %s\n", result.D, lUnit)
	tw.Flush()
	fmt.Println()

	fmt.Println("INTERMEDIATE VALUES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	tw = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  ρl:\t%.6f", result.RhoL)
	if result.RhoL >= ec2.RhoLMax {
		fmt.Fprintf(tw, " (capped at %.2f)", ec2.RhoLMax)
	}
	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "  k:\t%.4f", result.K)
	if result.K >= ec2.KMax {
		fmt.Fprintf(tw, " (capped at %.1f)", ec2.KMax)
	}
	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "  vmin:\t%.4f N/mm²\n", result.Vmin)
	fmt.Fprintf(tw, "  k₁:\t%.2f\n", result.K1)
	fmt.Fprintf(tw, "  V_Rd,c1:\t%.2f N\n", result.VRdc1)
	fmt.Fprintf(tw, "  V_Rd,c2:\t%.2f N\n", result.VRdc2)
	tw.Flush()
	fmt.Println()

	governing := "V_Rd,c1 (reinforcement ratio expression)"
	if result.VRdc2 > result.VRdc1 {
		governing = "V_Rd,c2 (minimum stress expression)"
	}

	fmt.Printf("  ╔═════════════════════════════════════════╗\n")
	fmt.Printf("  ║  V_Rd,c = %.2f %s     \n", result.Value, vUnit)
	fmt.Printf("  ╚═════════════════════════════════════════╝\n")
	fmt.Printf("  Governing: %s\n", governing)
	fmt.Println()

	if concreteLatex {
		opts := report.DefaultLaTeXOptions()
		opts.Decimals = concreteDecimals
		fmt.Println("LATEX:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		fmt.Println(report.ConcreteLaTeX(result, opts))
		fmt.Println()
	}

	if concretePdfFile != "" {
		meta := report.Meta{Project: concreteProject, Author: concreteAuthor}
		if err := report.ConcretePDF(result, meta, concretePdfFile); err != nil {
			fmt.Printf("Error writing PDF sheet: %v\n", err)
			return
		}
		fmt.Printf("  Calculation sheet written to %s\n", concretePdfFile)
		fmt.Println()
	}
}
