// Package controller provides output adapters for displaying analysis
// results: canonical report rendering, a plain printer, and a TUI pager.
package controller

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"

	m "covlens.dev/pkg/covlens/internal/model"
)

// Reports share a fixed-width header/divider so repeated calls with the
// same input are byte-identical.
const reportRuleWidth = 60

func reportHeader(title string) string {
	return title + "\n" + strings.Repeat("=", reportRuleWidth) + "\n\n"
}

func reportDivider() string {
	return strings.Repeat("-", reportRuleWidth) + "\n"
}

// RenderCoverageReport produces the overall and package-level coverage
// report text.
func RenderCoverageReport(overall []m.CounterRow, packages []m.PackageRow) string {
	var b strings.Builder

	b.WriteString(reportHeader("JaCoCo Coverage Analysis"))
	b.WriteString(renderCounterTable(overall))

	b.WriteString("\nPackage-Level Coverage\n")
	b.WriteString(reportDivider())

	for _, pkg := range packages {
		fmt.Fprintf(&b, "\n%s\n", pkg.Name)
		fmt.Fprintf(&b, "  Line Coverage: %6.2f%% (%d/%d)\n", pkg.Percent, pkg.Covered, pkg.Total)
	}

	return b.String()
}

func renderCounterTable(rows []m.CounterRow) string {
	var buffer bytes.Buffer

	table := tablewriter.NewWriter(&buffer)
	table.SetHeader([]string{"Counter", "Covered", "Missed", "Total", "Coverage"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})

	for _, row := range rows {
		table.Append([]string{
			string(row.Kind),
			fmt.Sprintf("%d", row.Covered),
			fmt.Sprintf("%d", row.Missed),
			fmt.Sprintf("%d", row.Total()),
			fmt.Sprintf("%.2f%%", row.Percent),
		})
	}

	table.Render()

	return buffer.String()
}

// RenderUncoveredReport produces the under-tested method listing. Only the
// given items are enumerated; totalFound covers the remainder summary.
func RenderUncoveredReport(items []m.UncoveredItem, totalFound int, threshold float64) string {
	var b strings.Builder

	b.WriteString(reportHeader("Uncovered Code Analysis"))
	fmt.Fprintf(&b, "Found %d methods with <%.0f%% coverage\n\n", totalFound, threshold)

	b.WriteString("Top Priority Methods to Test:\n")
	b.WriteString(reportDivider())

	for i, item := range items {
		fmt.Fprintf(&b, "\n%d. %s.%s.%s\n", i+1, item.Package, item.Class, item.Method)
		fmt.Fprintf(&b, "   Coverage: %.1f%% | Lines Missed: %d\n", item.CoveragePercent, item.LinesMissed)
	}

	if remainder := totalFound - len(items); remainder > 0 {
		fmt.Fprintf(&b, "\n... and %d more methods\n", remainder)
	}

	return b.String()
}

// RenderSmellReport produces the code-smell listing for one file.
func RenderSmellReport(path string, smells []m.CodeSmell) string {
	var b strings.Builder

	b.WriteString(reportHeader("Code Smell Detection: " + path))

	if len(smells) == 0 {
		b.WriteString("No obvious code smells detected. Code appears clean!\n")
		return b.String()
	}

	fmt.Fprintf(&b, "Found %d potential code smell(s):\n\n", len(smells))

	for i, smell := range smells {
		fmt.Fprintf(&b, "%d. %s (%s)\n", i+1, smell.Kind, smell.Severity)
		fmt.Fprintf(&b, "   Location: %s\n", smell.Location)
		fmt.Fprintf(&b, "   Suggestion: %s\n\n", smell.Suggestion)
	}

	return b.String()
}

// RenderBoundaryReport produces the boundary-value case listing for a
// method. qualifiedMethod is Class.method; params lists parameter names in
// specification order.
func RenderBoundaryReport(qualifiedMethod string, params []string, cases []m.BoundaryCase) string {
	var b strings.Builder

	b.WriteString(reportHeader("Boundary Value Test Cases"))
	fmt.Fprintf(&b, "Method: %s\n", qualifiedMethod)
	fmt.Fprintf(&b, "Parameters: [%s]\n\n", strings.Join(params, ", "))

	b.WriteString("Generated Test Cases:\n")
	b.WriteString(reportDivider())

	for i, c := range cases {
		fmt.Fprintf(&b, "\n%d. %s\n", i+1, c.Name)
		fmt.Fprintf(&b, "   Input: {%s: %s}\n", c.Param, c.Value)
		fmt.Fprintf(&b, "   Expected: %s\n", c.Expectation)
	}

	return b.String()
}

// RenderEquivalenceReport produces the equivalence-class enumeration for a
// method, one representative-test recommendation per partition label.
func RenderEquivalenceReport(qualifiedMethod string, groups []m.PartitionGroup) string {
	var b strings.Builder

	b.WriteString(reportHeader("Equivalence Class Partitioning"))
	fmt.Fprintf(&b, "Method: %s\n\n", qualifiedMethod)

	b.WriteString("Test Cases:\n")
	b.WriteString(reportDivider())

	for _, group := range groups {
		fmt.Fprintf(&b, "\n%s Classes:\n", strings.ToUpper(group.Name))

		for _, label := range group.Labels {
			fmt.Fprintf(&b, "  - Test %s input\n", label)
		}
	}

	b.WriteString("\n\nRecommendation: Generate at least one test case from each equivalence class\n")
	b.WriteString("to ensure comprehensive coverage with minimal redundancy.\n")

	return b.String()
}

// RenderClassReport produces the Java class inspection report.
func RenderClassReport(report m.ClassReport) string {
	var b strings.Builder

	b.WriteString(reportHeader("Java Class Analysis: " + report.Path))

	if report.Package != "" {
		fmt.Fprintf(&b, "Package: %s\n\n", report.Package)
	}

	if report.Class != "" {
		fmt.Fprintf(&b, "Class: %s\n\n", report.Class)
	}

	if len(report.Methods) > 0 {
		b.WriteString("Public Methods:\n")
		b.WriteString(reportDivider())

		for _, method := range report.Methods {
			fmt.Fprintf(&b, "\n  %s %s(%s)\n", method.ReturnType, method.Name, method.Params)
		}
	}

	b.WriteString("\n\nTest Generation Recommendations:\n")
	b.WriteString(reportDivider())
	fmt.Fprintf(&b, "- Found %d public methods to test\n", len(report.Methods))
	b.WriteString("- Consider edge cases: null inputs, empty strings, boundary values\n")
	b.WriteString("- Test exception handling where applicable\n")
	b.WriteString("- Verify return values and state changes\n")

	return b.String()
}

// RenderTemplateReport wraps a generated JUnit template.
func RenderTemplateReport(className, methodName, template string) string {
	var b strings.Builder

	b.WriteString(reportHeader("JUnit Test Template"))
	fmt.Fprintf(&b, "Generated test template for %s.%s\n\n", className, methodName)

	b.WriteString("Template Code:\n")
	b.WriteString(reportDivider())
	b.WriteString(template)

	return b.String()
}

// Output tails keep command transcripts bounded in tool results.
const (
	mavenStdoutTail = 2000
	mavenStderrTail = 1000
)

// RenderMavenReport summarizes a Maven test run plus report generation.
func RenderMavenReport(testExit, reportExit int, testStdout, testStderr, reportStdout string) string {
	var b strings.Builder

	b.WriteString("Maven Test Execution\n")
	b.WriteString(strings.Repeat("=", reportRuleWidth) + "\n")
	fmt.Fprintf(&b, "Test Exit Code: %d\n", testExit)
	fmt.Fprintf(&b, "JaCoCo Exit Code: %d\n\n", reportExit)

	b.WriteString("TEST STDOUT:\n" + tail(testStdout, mavenStdoutTail))

	if testExit != 0 {
		b.WriteString("\n\nTEST STDERR:\n" + tail(testStderr, mavenStderrTail))
	}

	b.WriteString("\n\nJACOCO REPORT:\n" + tail(reportStdout, mavenStderrTail))

	return b.String()
}

// tail returns at most n trailing bytes of s.
func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}

	return s[len(s)-n:]
}

// RenderGitStatusReport formats classified porcelain output.
func RenderGitStatusReport(summary m.GitStatusSummary) string {
	var b strings.Builder

	b.WriteString(reportHeader("Git Repository Status"))

	if summary.Clean() {
		b.WriteString("Working tree clean - no changes to commit\n")
		return b.String()
	}

	writeBucket := func(title string, lines []string) {
		if len(lines) == 0 {
			return
		}

		fmt.Fprintf(&b, "%s (%d):\n", title, len(lines))

		for _, line := range lines {
			fmt.Fprintf(&b, "  %s\n", line)
		}

		b.WriteString("\n")
	}

	writeBucket("Staged Changes", summary.Staged)
	writeBucket("Unstaged Changes", summary.Unstaged)
	writeBucket("Untracked Files", summary.Untracked)
	writeBucket("CONFLICTS", summary.Conflicts)

	return b.String()
}

// addAllDisplayLimit bounds the staged-file listing after an add-all.
const addAllDisplayLimit = 30

// RenderGitAddReport confirms what got staged.
func RenderGitAddReport(staged []string) string {
	var b strings.Builder

	b.WriteString(reportHeader("Git Add All"))
	fmt.Fprintf(&b, "Successfully staged %d file(s)\n\n", len(staged))

	if len(staged) == 0 {
		return b.String()
	}

	b.WriteString("Staged files:\n")

	shown := staged
	if len(shown) > addAllDisplayLimit {
		shown = shown[:addAllDisplayLimit]
	}

	for _, line := range shown {
		fmt.Fprintf(&b, "  %s\n", line)
	}

	if rest := len(staged) - len(shown); rest > 0 {
		fmt.Fprintf(&b, "  ... and %d more files\n", rest)
	}

	return b.String()
}

// RenderGitActionReport wraps the transcript of a single git action such as
// a commit, push, or pull-request creation.
func RenderGitActionReport(title, body string) string {
	return reportHeader(title) + body
}
