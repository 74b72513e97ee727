package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "kleene",
	Short: "Three-valued logic toolbox",
	Long: `kleene works with Kleene (K3) three-valued truth values: True, False and
Unknown. It evaluates expressions, prints truth tables and converts between
the accepted textual forms.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
