package main

import (
	"fmt"

	"github.com/aretw0/kleene/internal/cli"
	"github.com/spf13/cobra"
)

// tableCmd represents the table command
var tableCmd = &cobra.Command{
	Use:   "table [not|and|or|xor ...]",
	Short: "Print truth tables for the K3 operators",
	Long: `Prints the nine-entry truth tables for the Kleene operators. With no
arguments all four tables are printed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ops := args
		if len(ops) == 0 {
			ops = []string{"not", "and", "or", "xor"}
		}

		renderer := cli.NewRenderer()
		if plain, _ := cmd.Flags().GetBool("plain"); plain {
			renderer = cli.NewPlainRenderer()
		}

		out := cmd.OutOrStdout()
		for i, op := range ops {
			if i > 0 {
				fmt.Fprintln(out)
			}
			if err := renderer.WriteTable(out, op); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tableCmd)

	tableCmd.Flags().Bool("plain", false, "Disable color output")
}
