package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"covlens.dev/pkg/covlens/internal/domain"
	m "covlens.dev/pkg/covlens/internal/model"
)

// templateCmd represents the template command.
var templateCmd = newTemplateCmd()

func newTemplateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "template <file> <method>",
		Short: "Generate a JUnit test skeleton for a method",
		Long: `Generate a JUnit 4 test class skeleton with normal, edge-case, and
exception stubs for the given method. The skeleton is printed to stdout;
redirect it into your test tree and fill in the assertions.`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.GenerateTemplate(context.Background(), domain.TemplateArgs{
				Path:   m.Path(args[0]),
				Method: args[1],
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(templateCmd)
}
