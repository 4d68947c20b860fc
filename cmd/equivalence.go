package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"covlens.dev/pkg/covlens/internal/domain"
	m "covlens.dev/pkg/covlens/internal/model"
)

var equivalenceSpecFlag string

// equivalenceCmd represents the equivalence command.
var equivalenceCmd = newEquivalenceCmd()

func newEquivalenceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "equivalence <file> <method>",
		Short: "Generate equivalence class partitioning recommendations",
		Long: `Enumerate equivalence class partitions for a method from a YAML document
mapping partition names to representative input labels. One test per
class plus boundary checks between classes is the recommended minimum.

Example specification:

  valid:
    - positive amount
    - zero amount
  invalid:
    - negative amount`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.EquivalenceCases(context.Background(), domain.EquivalenceArgs{
				Path:   m.Path(args[0]),
				Method: args[1],
				Spec:   m.Path(equivalenceSpecFlag),
			})
		},
	}

	cmd.Flags().StringVarP(&equivalenceSpecFlag, "spec", "s", "", "YAML file mapping partition names to input labels")
	cobra.CheckErr(cmd.MarkFlagRequired("spec"))

	return cmd
}

func init() {
	rootCmd.AddCommand(equivalenceCmd)
}
