package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"covlens.dev/pkg/covlens/internal/domain"
)

// calcCmd represents the calc command.
var calcCmd = newCalcCmd()

func newCalcCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calc <expression>",
		Short: "Evaluate a mathematical expression",
		Long: `Evaluate an arithmetic expression. Supports +, -, *, /, %, ^, parentheses,
and the functions sqrt, pow, abs, sin, cos, tan, log, exp.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := domain.Evaluate(strings.Join(args, " "))
			if err != nil {
				return err
			}

			cmd.Println(domain.FormatResult(value))

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(calcCmd)
}
