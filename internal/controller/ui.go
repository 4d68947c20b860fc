package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "covlens.dev/pkg/covlens/internal/model"
)

// UI defines how analysis results reach the user. Implementations can use
// different output methods (plain text, TUI pager).
type UI interface {
	Start(ctx context.Context) error
	Close(ctx context.Context)
	DisplayCoverage(ctx context.Context, overall []m.CounterRow, packages []m.PackageRow) error
	DisplayUncovered(ctx context.Context, items []m.UncoveredItem, totalFound int, threshold float64) error
	DisplaySmells(ctx context.Context, path string, smells []m.CodeSmell) error
	DisplayClassReport(ctx context.Context, report m.ClassReport) error
	DisplayBoundaryCases(ctx context.Context, qualifiedMethod string, params []string, cases []m.BoundaryCase) error
	DisplayEquivalence(ctx context.Context, qualifiedMethod string, groups []m.PartitionGroup) error
	DisplayText(ctx context.Context, text string) error
}

// NewUI selects the TUI when stdout is a terminal, the plain printer
// otherwise.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	simple := NewSimpleUI(cmd)
	if isTTY {
		return NewTUI(simple)
	}

	return simple
}

// IsTTY reports whether the file is attached to a terminal.
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
