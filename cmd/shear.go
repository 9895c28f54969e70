package cmd

import (
	"github.com/spf13/cobra"
)

var shearCmd = &cobra.Command{
	Use:   "shear",
	Short: "Eurocode 2 shear resistance checks",
	Long: `Compute shear resistances of reinforced concrete sections
based on EN 1992-1-1 Section 6.2.

Subcommands:
  crushing  - Web crushing resistance V_Rd,max (Section 6.2.3)
  concrete  - Concrete shear capacity V_Rd,c (Section 6.2.2)
  check     - Run both checks from a YAML section file

All calculations follow EN 1992-1-1:2004 provisions.`,
}

func init() {
	rootCmd.AddCommand(shearCmd)
}
