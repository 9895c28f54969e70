package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gorcs/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gorcs",
	Short: "Reinforced Concrete Shear Resistance Tool",
	Long: `gorcs - Go Reinforced Concrete Shear

A CLI tool for shear resistance checks of reinforced concrete
sections based on Eurocode 2 (EN 1992-1-1, Section 6.2).

This tool helps structural engineers compute:
  - Web crushing resistance V_Rd,max (strut-and-tie limit)
  - Concrete shear capacity V_Rd,c (members without shear reinforcement)
  - Resistance envelopes over the permitted strut inclinations
  - LaTeX fragments and PDF calculation sheets for documentation

All calculations follow EN 1992-1-1:2004 provisions.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gorcs v%-49s║\n", version.Version)
		fmt.Println("  ║   Go Reinforced Concrete Shear                            ║")
		fmt.Println("  ║   Alexius S. Academia ©  2026                             ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for shear resistance checks of reinforced")
		fmt.Println("  concrete sections based on Eurocode 2 (EN 1992-1-1).")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Web crushing resistance V_Rd,max")
		fmt.Println("    • Concrete shear capacity V_Rd,c")
		fmt.Println("    • Strut-angle resistance envelopes (terminal and image)")
		fmt.Println("    • LaTeX and PDF calculation output")
		fmt.Println()
		fmt.Println("  Use 'gorcs --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
