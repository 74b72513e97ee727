package main

import (
	"encoding/json"
	"fmt"

	"github.com/aretw0/kleene"
	"github.com/spf13/cobra"
)

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse TOKEN...",
	Short: "Parse tokens and print their canonical forms",
	Long: `Parses each token with the library's text contract (true/false/unknown
case-insensitively, or the exact numerals 1/0/-1) and prints the canonical
form, the raw integer encoding and the JSON encoding. Exits non-zero on the
first token that does not parse.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, tok := range args {
			v, err := kleene.Parse(tok)
			if err != nil {
				return err
			}
			encoded, err := json.Marshal(v)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%-12q canonical=%-8s raw=%+d json=%s\n", tok, v, v.Int(), encoded)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
