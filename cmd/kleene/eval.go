package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/aretw0/kleene/internal/cli"
	"github.com/spf13/cobra"
)

// evalCmd represents the eval command
var evalCmd = &cobra.Command{
	Use:   "eval EXPR",
	Short: "Evaluate a three-valued logic expression",
	Long: `Evaluates an expression over the literals true, false and unknown
(or the numerals 1, 0, -1) with the operators !, &, ^, | and parentheses.

Evaluation is lazy: a definite False prunes the right side of &, a definite
True prunes the right side of |. Unknown never prunes.

Examples:
  kleene eval 'true & unknown'
  kleene eval '!(false | unknown) ^ true'
  kleene eval --trace '0 | 1 & -1'`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		expr, err := cli.ParseExpr(strings.Join(args, " "))
		if err != nil {
			return err
		}

		ev := &cli.Evaluator{}
		if trace, _ := cmd.Flags().GetBool("trace"); trace {
			ev.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}))
		}

		result := ev.Eval(expr)

		if plain, _ := cmd.Flags().GetBool("plain"); plain {
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), cli.NewRenderer().Paint(result))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)

	evalCmd.Flags().Bool("trace", false, "Log each evaluation step to stderr")
	evalCmd.Flags().Bool("plain", false, "Disable color output")
}
