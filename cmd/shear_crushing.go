package cmd

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gorcs/internal/diagram"
	"github.com/alexiusacademia/gorcs/internal/report"
	"github.com/alexiusacademia/gorcs/internal/shear"
	"github.com/spf13/cobra"
)

var (
	// Check inputs
	crushingBw       float64
	crushingD        float64
	crushingFck      float64
	crushingFyk      float64
	crushingFywk     float64
	crushingThetaDeg float64
	crushingAlphacw  float64
	crushingGammac   float64
	crushingUnits    string

	// Output options
	crushingLatex    bool
	crushingDecimals int
	crushingAscii    bool
	crushingPlotFile string
	crushingPdfFile  string
	crushingProject  string
	crushingAuthor   string
)

var shearCrushingCmd = &cobra.Command{
	Use:   "crushing",
	Short: "Web crushing shear resistance V_Rd,max",
	Long: `Calculate the maximum shear resistance V_Rd,max limited by crushing
of the concrete compression strut (EN 1992-1-1 Section 6.2.3, Eq. 6.9).

Input lengths are in mm and strengths in N/mm² for the default
'N-mm-rad' unit system; pass --units kN-m-rad for m / kN/m² inputs
and a result in kN. The strut angle is given in degrees.

Examples:
  # 250x539mm web, C20/25 concrete, 45° strut
  gorcs shear crushing --bw 250 --d 539 --fck 20 --fyk 500 --fywk 500

  # Shallow strut with LaTeX output
  gorcs shear crushing --bw 250 --d 539 --fck 20 --fyk 500 --fywk 500 \
      --theta 26.57 --latex

  # Export the resistance envelope and a PDF calculation sheet
  gorcs shear crushing --bw 250 --d 539 --fck 20 --fyk 500 --fywk 500 \
      --plot envelope.png --pdf vrdmax.pdf`,
	Run: runShearCrushing,
}

func init() {
	shearCmd.AddCommand(shearCrushingCmd)

	// Geometry flags
	shearCrushingCmd.Flags().Float64VarP(&crushingBw, "bw", "b", 0, "Web width bw [required]")
	shearCrushingCmd.Flags().Float64VarP(&crushingD, "d", "d", 0, "Effective depth d [required]")

	// Material flags
	shearCrushingCmd.Flags().Float64Var(&crushingFck, "fck", 0, "Characteristic concrete strength fck [required]")
	shearCrushingCmd.Flags().Float64Var(&crushingFyk, "fyk", 500, "Characteristic reinforcement strength fyk")
	shearCrushingCmd.Flags().Float64Var(&crushingFywk, "fywk", 500, "Characteristic shear reinforcement strength fywk")

	// Strut and factor flags
	shearCrushingCmd.Flags().Float64VarP(&crushingThetaDeg, "theta", "t", 45, "Strut angle θ (degrees)")
	shearCrushingCmd.Flags().Float64Var(&crushingAlphacw, "alphacw", 1.0, "Compression chord coefficient αcw")
	shearCrushingCmd.Flags().Float64Var(&crushingGammac, "gammac", 1.5, "Partial safety factor γc")
	shearCrushingCmd.Flags().StringVarP(&crushingUnits, "units", "u", shear.UnitsNmmRad, "Unit system (N-mm-rad or kN-m-rad)")

	// Output flags
	shearCrushingCmd.Flags().BoolVar(&crushingLatex, "latex", false, "Print the LaTeX calculation blocks")
	shearCrushingCmd.Flags().IntVar(&crushingDecimals, "decimals", 3, "Decimal places in LaTeX output")
	shearCrushingCmd.Flags().BoolVar(&crushingAscii, "ascii", false, "Show ASCII resistance envelope over strut angles")
	shearCrushingCmd.Flags().StringVarP(&crushingPlotFile, "plot", "o", "", "Export resistance envelope to file (png, svg, pdf)")
	shearCrushingCmd.Flags().StringVar(&crushingPdfFile, "pdf", "", "Export PDF calculation sheet to file")
	shearCrushingCmd.Flags().StringVar(&crushingProject, "project", "", "Project name for the PDF sheet")
	shearCrushingCmd.Flags().StringVar(&crushingAuthor, "author", "", "Author name for the PDF sheet")

	// Mark required flags
	shearCrushingCmd.MarkFlagRequired("bw")
	shearCrushingCmd.MarkFlagRequired("d")
	shearCrushingCmd.MarkFlagRequired("fck")
}

func runShearCrushing(cmd *cobra.Command, args []string) {
	// Build the check
	w := shear.NewWebCrushing(crushingBw, crushingD, crushingFck, crushingFyk, crushingFywk, crushingThetaDeg*math.Pi/180)
	w.Alphacw = crushingAlphacw
	w.Gammac = crushingGammac
	w.Units = crushingUnits

	result, err := w.Compute()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	vUnit, lUnit := "N", "mm"
	if result.Units == shear.UnitsKNmRad {
		vUnit, lUnit = "kN", "m"
	}

	// Print results
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     WEB CRUSHING RESISTANCE V_Rd,max - EN 1992-1-1")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	// Input summary
	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Web Width (bw):\t%.2f %s\n", result.Bw, lUnit)
	fmt.Fprintf(tw, "  Effective Depth (d):\t%.2f %s\n", result.D, lUnit)
	fmt.Fprintf(tw, "  fck:\t%.1f\n", result.Fck)
	fmt.Fprintf(tw, "  fyk:\t%.1f\n", result.Fyk)
	fmt.Fprintf(tw, "  fywk:\t%.1f\n", result.Fywk)
	fmt.Fprintf(tw, "  Strut Angle (θ):\t%.2f° (%.4f rad)\n", crushingThetaDeg, result.Theta)
	fmt.Fprintf(tw, "  αcw:\t%.2f\n", result.Alphacw)
	fmt.Fprintf(tw, "  γc:\t%.2f\n", result.Gammac)
	tw.Flush()
	fmt.Println()

	// Intermediate values
	fmt.Println("INTERMEDIATE VALUES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	tw = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Lever arm (z = 0.9d):\t%.2f mm\n", result.Z)
	fmt.Fprintf(tw, "  fcd = fck/γc:\t%.3f N/mm²\n", result.Fcd)
	fmt.Fprintf(tw, "  ν₁:\t%.4f\n", result.Nu1)
	fmt.Fprintf(tw, "  tan θ:\t%.4f\n", result.TanTheta)
	fmt.Fprintf(tw, "  cot θ:\t%.4f\n", result.CotTheta)
	tw.Flush()
	fmt.Println()

	fmt.Printf("  ╔═════════════════════════════════════════╗\n")
	fmt.Printf("  ║  V_Rd,max = %.2f %s     \n", result.Value, vUnit)
	fmt.Printf("  ╚═════════════════════════════════════════╝\n")
	fmt.Println()

	if crushingLatex {
		opts := report.DefaultLaTeXOptions()
		opts.Decimals = crushingDecimals
		fmt.Println("LATEX:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		fmt.Println(report.CrushingLaTeX(result, opts))
		fmt.Println()
	}

	if crushingAscii || crushingPlotFile != "" {
		thetas, values, err := diagram.CrushingEnvelope(*w, 31)
		if err != nil {
			fmt.Printf("Error building envelope: %v\n", err)
			return
		}
		if crushingAscii {
			fmt.Println(diagram.DrawASCIIEnvelope(thetas, values, vUnit))
			fmt.Println()
		}
		if crushingPlotFile != "" {
			if err := diagram.ExportEnvelope(thetas, values, vUnit, crushingPlotFile); err != nil {
				fmt.Printf("Error exporting envelope: %v\n", err)
				return
			}
			fmt.Printf("  Envelope exported to %s\n", crushingPlotFile)
			fmt.Println()
		}
	}

	if crushingPdfFile != "" {
		meta := report.Meta{Project: crushingProject, Author: crushingAuthor}
		if err := report.CrushingPDF(result, meta, crushingPdfFile); err != nil {
			fmt.Printf("Error writing PDF sheet: %v\n", err)
			return
		}
		fmt.Printf("  Calculation sheet written to %s\n", crushingPdfFile)
		fmt.Println()
	}
}
