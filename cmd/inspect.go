package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"covlens.dev/pkg/covlens/internal/domain"
	m "covlens.dev/pkg/covlens/internal/model"
)

// inspectCmd represents the inspect command.
var inspectCmd = newInspectCmd()

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "Show the structure of a Java class",
		Long:  "Extract the package, class name, and public method signatures from a Java source file.",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.InspectClass(context.Background(), domain.InspectArgs{
				Path: m.Path(args[0]),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
