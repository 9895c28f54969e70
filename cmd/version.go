package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gorcs/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gorcs",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gorcs v%s\n", version.Version)
		fmt.Println("Reinforced Concrete Shear Resistance Tool")
		fmt.Println("Based on EN 1992-1-1 (Eurocode 2)")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
