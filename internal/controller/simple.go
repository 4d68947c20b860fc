package controller

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	m "covlens.dev/pkg/covlens/internal/model"
)

// SimpleUI implements UI by printing canonical report text to the cobra
// command's stdout.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context) error {
	return ctx.Err()
}

// Close finalizes the UI (no-op for SimpleUI).
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// DisplayCoverage prints the overall and package coverage report.
func (s *SimpleUI) DisplayCoverage(ctx context.Context, overall []m.CounterRow, packages []m.PackageRow) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.print(RenderCoverageReport(overall, packages))
}

// DisplayUncovered prints the under-tested method listing.
func (s *SimpleUI) DisplayUncovered(ctx context.Context, items []m.UncoveredItem, totalFound int, threshold float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.print(RenderUncoveredReport(items, totalFound, threshold))
}

// DisplaySmells prints the smell listing for one file.
func (s *SimpleUI) DisplaySmells(ctx context.Context, path string, smells []m.CodeSmell) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.print(RenderSmellReport(path, smells))
}

// DisplayClassReport prints the Java class inspection report.
func (s *SimpleUI) DisplayClassReport(ctx context.Context, report m.ClassReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.print(RenderClassReport(report))
}

// DisplayBoundaryCases prints the boundary-value case listing.
func (s *SimpleUI) DisplayBoundaryCases(ctx context.Context, qualifiedMethod string, params []string, cases []m.BoundaryCase) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.print(RenderBoundaryReport(qualifiedMethod, params, cases))
}

// DisplayEquivalence prints the equivalence-class enumeration.
func (s *SimpleUI) DisplayEquivalence(ctx context.Context, qualifiedMethod string, groups []m.PartitionGroup) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.print(RenderEquivalenceReport(qualifiedMethod, groups))
}

// DisplayText prints pre-rendered text as-is.
func (s *SimpleUI) DisplayText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.print(text)
}

func (s *SimpleUI) print(text string) error {
	_, err := fmt.Fprint(s.cmd.OutOrStdout(), text)
	return err
}
