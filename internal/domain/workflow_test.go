package domain

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	m "covlens.dev/pkg/covlens/internal/model"
)

// fakeFS serves file contents from memory.
type fakeFS struct {
	files map[m.Path][]byte
}

func newFakeFS() *fakeFS {
	return &fakeFS{files: make(map[m.Path][]byte)}
}

func (f *fakeFS) ReadFile(path m.Path) ([]byte, error) {
	data, ok := f.files[path]
	if !ok {
		return nil, os.ErrNotExist
	}

	return data, nil
}

func (f *fakeFS) Exists(path m.Path) (bool, error) {
	_, ok := f.files[path]
	return ok, nil
}

func (f *fakeFS) FileInfo(path m.Path) (os.FileInfo, error) {
	return nil, os.ErrNotExist
}

// recordingUI captures everything displayed.
type recordingUI struct {
	coverageCalls    int
	overall          []m.CounterRow
	packages         []m.PackageRow
	uncovered        []m.UncoveredItem
	uncoveredTotal   int
	smellPaths       []string
	smells           [][]m.CodeSmell
	classReport      m.ClassReport
	boundaryMethod   string
	boundaryParams   []string
	boundaryCases    []m.BoundaryCase
	partitionMethod  string
	partitionGroups  []m.PartitionGroup
	texts            []string
}

func (r *recordingUI) Start(ctx context.Context) error { return nil }
func (r *recordingUI) Close(ctx context.Context)       {}

func (r *recordingUI) DisplayCoverage(_ context.Context, overall []m.CounterRow, packages []m.PackageRow) error {
	r.coverageCalls++
	r.overall = overall
	r.packages = packages

	return nil
}

func (r *recordingUI) DisplayUncovered(_ context.Context, items []m.UncoveredItem, totalFound int, _ float64) error {
	r.uncovered = items
	r.uncoveredTotal = totalFound

	return nil
}

func (r *recordingUI) DisplaySmells(_ context.Context, path string, smells []m.CodeSmell) error {
	r.smellPaths = append(r.smellPaths, path)
	r.smells = append(r.smells, smells)

	return nil
}

func (r *recordingUI) DisplayClassReport(_ context.Context, report m.ClassReport) error {
	r.classReport = report
	return nil
}

func (r *recordingUI) DisplayBoundaryCases(_ context.Context, qualifiedMethod string, params []string, cases []m.BoundaryCase) error {
	r.boundaryMethod = qualifiedMethod
	r.boundaryParams = params
	r.boundaryCases = cases

	return nil
}

func (r *recordingUI) DisplayEquivalence(_ context.Context, qualifiedMethod string, groups []m.PartitionGroup) error {
	r.partitionMethod = qualifiedMethod
	r.partitionGroups = groups

	return nil
}

func (r *recordingUI) DisplayText(_ context.Context, text string) error {
	r.texts = append(r.texts, text)
	return nil
}

func TestWorkflow_AnalyzeCoverage(t *testing.T) {
	fs := newFakeFS()
	fs.files["jacoco.xml"] = []byte(sampleReport)

	ui := &recordingUI{}
	wf := NewWorkflow(fs, ui)

	err := wf.AnalyzeCoverage(context.Background(), CoverageArgs{Report: "jacoco.xml"})
	require.NoError(t, err)

	require.Equal(t, 1, ui.coverageCalls)
	require.NotEmpty(t, ui.overall)
	require.Len(t, ui.packages, 1)
	require.Equal(t, "com.example.util", ui.packages[0].Name)
}

func TestWorkflow_AnalyzeCoverage_MissingReport(t *testing.T) {
	wf := NewWorkflow(newFakeFS(), &recordingUI{})

	err := wf.AnalyzeCoverage(context.Background(), CoverageArgs{Report: "missing.xml"})
	require.Error(t, err)

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "missing.xml", notFound.Path)
}

func TestWorkflow_IdentifyUncovered(t *testing.T) {
	fs := newFakeFS()
	fs.files["jacoco.xml"] = []byte(sampleReport)

	ui := &recordingUI{}
	wf := NewWorkflow(fs, ui)

	err := wf.IdentifyUncovered(context.Background(), UncoveredArgs{
		Report:    "jacoco.xml",
		Threshold: 50.0,
		Limit:     20,
	})
	require.NoError(t, err)

	// capitalize sits exactly at 50% and is excluded; reverse is at 20%.
	require.Equal(t, 1, ui.uncoveredTotal)
	require.Len(t, ui.uncovered, 1)
	require.Equal(t, "reverse", ui.uncovered[0].Method)
	require.Equal(t, 8, ui.uncovered[0].LinesMissed)
}

func TestWorkflow_ScanSmells_ResultsInInputOrder(t *testing.T) {
	fs := newFakeFS()
	fs.files["A.java"] = []byte("int a = 100;")
	fs.files["B.java"] = []byte("// clean")

	ui := &recordingUI{}
	wf := NewWorkflow(fs, ui)

	err := wf.ScanSmells(context.Background(), SmellArgs{Paths: []m.Path{"A.java", "B.java"}})
	require.NoError(t, err)

	require.Equal(t, []string{"A.java", "B.java"}, ui.smellPaths)
	require.Len(t, ui.smells[0], 1)
	require.Equal(t, m.SmellMagicNumber, ui.smells[0][0].Kind)
	require.Empty(t, ui.smells[1])
}

func TestWorkflow_ScanSmells_MissingFile(t *testing.T) {
	wf := NewWorkflow(newFakeFS(), &recordingUI{})

	err := wf.ScanSmells(context.Background(), SmellArgs{Paths: []m.Path{"gone.java"}})
	require.Error(t, err)

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestWorkflow_InspectClass(t *testing.T) {
	fs := newFakeFS()
	fs.files["com/example/util/StringHelper.java"] = []byte(sampleJavaClass)

	ui := &recordingUI{}
	wf := NewWorkflow(fs, ui)

	err := wf.InspectClass(context.Background(), InspectArgs{Path: "com/example/util/StringHelper.java"})
	require.NoError(t, err)

	require.Equal(t, "StringHelper", ui.classReport.Class)
	require.Len(t, ui.classReport.Methods, 3)
}

func TestWorkflow_GenerateTemplate(t *testing.T) {
	ui := &recordingUI{}
	wf := NewWorkflow(newFakeFS(), ui)

	err := wf.GenerateTemplate(context.Background(), TemplateArgs{
		Path:   "com/example/util/StringHelper.java",
		Method: "capitalize",
	})
	require.NoError(t, err)

	require.Len(t, ui.texts, 1)
	require.Contains(t, ui.texts[0], "StringHelper.capitalize")
	require.Contains(t, ui.texts[0], "public class StringHelperTest {")
}

func TestWorkflow_BoundaryCases(t *testing.T) {
	fs := newFakeFS()
	fs.files["ranges.yaml"] = []byte("amount:\n  min: 0\n  max: 10\n")

	ui := &recordingUI{}
	wf := NewWorkflow(fs, ui)

	err := wf.BoundaryCases(context.Background(), BoundaryArgs{
		Path:   "com/example/Order.java",
		Method: "applyDiscount",
		Spec:   "ranges.yaml",
	})
	require.NoError(t, err)

	require.Equal(t, "Order.applyDiscount", ui.boundaryMethod)
	require.Equal(t, []string{"amount"}, ui.boundaryParams)
	require.Len(t, ui.boundaryCases, 7)
}

func TestWorkflow_BoundaryCases_InvalidSpec(t *testing.T) {
	fs := newFakeFS()
	fs.files["ranges.yaml"] = []byte("- not\n- a\n- mapping\n")

	wf := NewWorkflow(fs, &recordingUI{})

	err := wf.BoundaryCases(context.Background(), BoundaryArgs{
		Path:   "Order.java",
		Method: "applyDiscount",
		Spec:   "ranges.yaml",
	})
	require.Error(t, err)

	var invalid *InvalidSpecificationError
	require.ErrorAs(t, err, &invalid)
}

func TestWorkflow_EquivalenceCases(t *testing.T) {
	fs := newFakeFS()
	fs.files["classes.yaml"] = []byte("valid:\n  - positive\ninvalid:\n  - negative\n")

	ui := &recordingUI{}
	wf := NewWorkflow(fs, ui)

	err := wf.EquivalenceCases(context.Background(), EquivalenceArgs{
		Path:   "com/example/Order.java",
		Method: "applyDiscount",
		Spec:   "classes.yaml",
	})
	require.NoError(t, err)

	require.Equal(t, "Order.applyDiscount", ui.partitionMethod)
	require.Len(t, ui.partitionGroups, 2)
	require.Equal(t, "valid", ui.partitionGroups[0].Name)
}
