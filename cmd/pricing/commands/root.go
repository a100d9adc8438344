// Package commands wires the pricing CLI.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "pricing",
	Short: "Yerevan dynamic pricing backend",
	Long: `Backend for the Yerevan café and restaurant pricing project.

Commands:
  serve   Run the HTTP API (CRUD, price prediction, analytics)
  load    Seed the star schema from the CSV snapshots`,
	Version: version,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
