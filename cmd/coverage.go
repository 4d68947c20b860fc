package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"covlens.dev/pkg/covlens/internal/domain"
)

// coverageCmd represents the coverage command.
var coverageCmd = newCoverageCmd()

func newCoverageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "coverage",
		Short: "Summarize the JaCoCo coverage report",
		Long: `Summarize overall and per-package coverage from the JaCoCo XML report.
Shows line, branch, and method coverage with covered/total counts.`,
		Args: cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.AnalyzeCoverage(context.Background(), domain.CoverageArgs{
				Report: reportPath(),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(coverageCmd)
}
