package domain

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"covlens.dev/pkg/covlens/internal/adapter"
	"covlens.dev/pkg/covlens/internal/controller"
	m "covlens.dev/pkg/covlens/internal/model"
)

// CoverageArgs selects the coverage report to analyze.
type CoverageArgs struct {
	Report m.Path
}

// UncoveredArgs configures under-tested method ranking.
type UncoveredArgs struct {
	Report    m.Path
	Threshold float64
	Limit     int
}

// SmellArgs lists the source files to scan.
type SmellArgs struct {
	Paths []m.Path
}

// InspectArgs selects the Java source file to inspect.
type InspectArgs struct {
	Path m.Path
}

// TemplateArgs selects the class and method for template generation.
type TemplateArgs struct {
	Path   m.Path
	Method string
}

// BoundaryArgs selects the class, method, and parameter-range document for
// boundary-value synthesis.
type BoundaryArgs struct {
	Path   m.Path
	Method string
	Spec   m.Path
}

// EquivalenceArgs selects the class, method, and partition document for
// equivalence-class synthesis.
type EquivalenceArgs struct {
	Path   m.Path
	Method string
	Spec   m.Path
}

// Workflow drives the analysis operations end to end: read inputs through
// the filesystem adapter, run the domain transform, hand results to the UI.
// Each call re-reads its input from scratch and keeps no state.
type Workflow interface {
	AnalyzeCoverage(ctx context.Context, args CoverageArgs) error
	IdentifyUncovered(ctx context.Context, args UncoveredArgs) error
	ScanSmells(ctx context.Context, args SmellArgs) error
	InspectClass(ctx context.Context, args InspectArgs) error
	GenerateTemplate(ctx context.Context, args TemplateArgs) error
	BoundaryCases(ctx context.Context, args BoundaryArgs) error
	EquivalenceCases(ctx context.Context, args EquivalenceArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	ui controller.UI
}

// NewWorkflow creates a Workflow with the provided dependencies.
func NewWorkflow(fs adapter.SourceFSAdapter, ui controller.UI) Workflow {
	return &workflow{SourceFSAdapter: fs, ui: ui}
}

func (w *workflow) AnalyzeCoverage(ctx context.Context, args CoverageArgs) error {
	root, err := w.loadReport(args.Report)
	if err != nil {
		return err
	}

	overall := RankOverall(root)
	packages := RankByPackage(root)

	return w.ui.DisplayCoverage(ctx, overall, packages)
}

func (w *workflow) IdentifyUncovered(ctx context.Context, args UncoveredArgs) error {
	root, err := w.loadReport(args.Report)
	if err != nil {
		return err
	}

	items, total := RankUncovered(root, args.Threshold, args.Limit)

	return w.ui.DisplayUncovered(ctx, items, total, args.Threshold)
}

func (w *workflow) ScanSmells(ctx context.Context, args SmellArgs) error {
	results := make([][]m.CodeSmell, len(args.Paths))

	group, ctx := errgroup.WithContext(ctx)

	for i, path := range args.Paths {
		group.Go(func() error {
			source, err := w.readSource(path)
			if err != nil {
				return err
			}

			results[i] = ScanSmells(source)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	// Results go out in input order regardless of scan completion order.
	for i, path := range args.Paths {
		if err := w.ui.DisplaySmells(ctx, string(path), results[i]); err != nil {
			return err
		}
	}

	return nil
}

func (w *workflow) InspectClass(ctx context.Context, args InspectArgs) error {
	source, err := w.readSource(args.Path)
	if err != nil {
		return err
	}

	report := InspectClass(string(args.Path), source)

	return w.ui.DisplayClassReport(ctx, report)
}

func (w *workflow) GenerateTemplate(ctx context.Context, args TemplateArgs) error {
	template := TestTemplate(string(args.Path), args.Method)
	text := controller.RenderTemplateReport(ClassName(string(args.Path)), args.Method, template)

	return w.ui.DisplayText(ctx, text)
}

func (w *workflow) BoundaryCases(ctx context.Context, args BoundaryArgs) error {
	data, err := w.readSource(args.Spec)
	if err != nil {
		return err
	}

	specs, err := ParseParameterSpecsYAML(data)
	if err != nil {
		return fmt.Errorf("parse parameter specification: %w", err)
	}

	cases := SynthesizeBoundary(args.Method, specs)

	params := make([]string, 0, len(specs))
	for _, spec := range specs {
		params = append(params, spec.Name)
	}

	qualified := ClassName(string(args.Path)) + "." + args.Method

	return w.ui.DisplayBoundaryCases(ctx, qualified, params, cases)
}

func (w *workflow) EquivalenceCases(ctx context.Context, args EquivalenceArgs) error {
	data, err := w.readSource(args.Spec)
	if err != nil {
		return err
	}

	groups, err := ParsePartitionGroupsYAML(data)
	if err != nil {
		return fmt.Errorf("parse partition specification: %w", err)
	}

	qualified := ClassName(string(args.Path)) + "." + args.Method

	return w.ui.DisplayEquivalence(ctx, qualified, SynthesizeEquivalence(groups))
}

// loadReport reads and parses a coverage report, distinguishing a missing
// file from a malformed one.
func (w *workflow) loadReport(path m.Path) (*m.ScopeNode, error) {
	root, err := LoadReport(w.SourceFSAdapter, path)
	if err != nil {
		return nil, err
	}

	return root, nil
}

func (w *workflow) readSource(path m.Path) ([]byte, error) {
	exists, err := w.Exists(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	if !exists {
		return nil, &NotFoundError{Path: string(path)}
	}

	data, err := w.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return data, nil
}

// LoadReport reads a coverage report from disk and parses it. A missing
// path yields NotFoundError; unparsable XML yields MalformedReportError.
func LoadReport(fs adapter.SourceFSAdapter, path m.Path) (*m.ScopeNode, error) {
	exists, err := fs.Exists(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	if !exists {
		return nil, &NotFoundError{Path: string(path)}
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return ParseReport(data, string(path))
}

// ClassName derives the simple class name from a Java source path.
func ClassName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), ".java")
}
