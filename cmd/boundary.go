package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"covlens.dev/pkg/covlens/internal/domain"
	m "covlens.dev/pkg/covlens/internal/model"
)

var boundarySpecFlag string

// boundaryCmd represents the boundary command.
var boundaryCmd = newBoundaryCmd()

func newBoundaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "boundary <file> <method>",
		Short: "Generate boundary value analysis test cases",
		Long: `Generate boundary value test cases for a method from a YAML document
declaring each parameter's type and range. Numeric parameters produce
seven cases around the range edges; string and array parameters produce
null, empty, and single-element cases.

Example specification:

  amount:
    type: int
    min: 0
    max: 100
  name:
    type: String`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.BoundaryCases(context.Background(), domain.BoundaryArgs{
				Path:   m.Path(args[0]),
				Method: args[1],
				Spec:   m.Path(boundarySpecFlag),
			})
		},
	}

	cmd.Flags().StringVarP(&boundarySpecFlag, "spec", "s", "", "YAML file declaring parameter types and ranges")
	cobra.CheckErr(cmd.MarkFlagRequired("spec"))

	return cmd
}

func init() {
	rootCmd.AddCommand(boundaryCmd)
}
