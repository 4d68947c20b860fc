package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"covlens.dev/pkg/covlens/internal/domain"
)

// smellsCmd represents the smells command.
var smellsCmd = newSmellsCmd()

func newSmellsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "smells <file>...",
		Short: "Detect code smells in Java source files",
		Long: `Scan Java source files for common code smells: long methods, oversized
files, magic numbers, and duplicated statements. Files are scanned
concurrently; results print in argument order.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.ScanSmells(context.Background(), domain.SmellArgs{
				Paths: parsePaths(args),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(smellsCmd)
}
