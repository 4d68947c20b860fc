package dispatch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"covlens.dev/pkg/covlens/internal/controller"
	"covlens.dev/pkg/covlens/internal/domain"
	m "covlens.dev/pkg/covlens/internal/model"
)

// textError renders a failure as a tool result. Tool handlers always return
// text; downstream consumers only render strings, so no structured fault
// may escape.
func textError(format string, args ...any) *mcp.CallToolResult {
	return mcp.NewToolResultText("Error: " + fmt.Sprintf(format, args...))
}

// resolveReportPath applies the configured default and makes relative
// report paths project-relative.
func (d toolDeps) resolveReportPath(argPath string) string {
	path := argPath
	if path == "" {
		path = d.cfg.ReportPath
	}

	if !filepath.IsAbs(path) {
		path = filepath.Join(d.cfg.ProjectPath, path)
	}

	return path
}

// resolveSourcePath locates a Java source file given a path relative to the
// project's main source root.
func (d toolDeps) resolveSourcePath(classPath string) string {
	if filepath.IsAbs(classPath) {
		return classPath
	}

	return filepath.Join(d.cfg.ProjectPath, "src", "main", "java", classPath)
}

func (d toolDeps) readSource(classPath string) ([]byte, string, *mcp.CallToolResult) {
	fullPath := d.resolveSourcePath(classPath)

	exists, err := d.fs.Exists(m.Path(fullPath))
	if err != nil {
		return nil, "", textError("reading %s: %v", fullPath, err)
	}

	if !exists {
		return nil, "", textError("File not found at %s", fullPath)
	}

	source, err := d.fs.ReadFile(m.Path(fullPath))
	if err != nil {
		return nil, "", textError("reading %s: %v", fullPath, err)
	}

	return source, fullPath, nil
}

// ---------------------------------------------------------------------------
// Calculator
// ---------------------------------------------------------------------------

type calculatorTool struct{}

func newCalculatorTool() calculatorTool {
	return calculatorTool{}
}

func (calculatorTool) Definition() mcp.Tool {
	return mcp.NewTool("calculator",
		mcp.WithDescription("Evaluate a mathematical expression, e.g. \"2 + 2\" or \"sqrt(16)\"."),
		mcp.WithString("expression", mcp.Required(), mcp.Description("Expression to evaluate")),
	)
}

func (calculatorTool) Handle(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	expression, err := request.RequireString("expression")
	if err != nil {
		return textError("%v", err), nil
	}

	value, err := domain.Evaluate(expression)
	if err != nil {
		return textError("evaluating expression: %v", err), nil
	}

	return mcp.NewToolResultText(domain.FormatResult(value)), nil
}

// ---------------------------------------------------------------------------
// Maven
// ---------------------------------------------------------------------------

type mavenTool struct {
	deps toolDeps
}

func newMavenTool(deps toolDeps) mavenTool {
	return mavenTool{deps: deps}
}

func (mavenTool) Definition() mcp.Tool {
	return mcp.NewTool("run_maven_tests",
		mcp.WithDescription("Run the Maven test suite and generate the JaCoCo coverage report. Tests continue even if some fail so the report is still produced."),
		mcp.WithString("project_path", mcp.Description("Path to the Maven project (defaults to the configured project)")),
	)
}

func (t mavenTool) Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	projectPath := request.GetString("project_path", t.deps.cfg.ProjectPath)

	testResult, err := t.deps.build.RunTests(ctx, projectPath)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return textError("Maven test execution timed out after 5 minutes"), nil
		}

		return textError("running Maven tests: %v", err), nil
	}

	reportResult, err := t.deps.build.GenerateCoverageReport(ctx, projectPath)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return textError("JaCoCo report generation timed out"), nil
		}

		return textError("generating coverage report: %v", err), nil
	}

	text := controller.RenderMavenReport(
		testResult.ExitCode, reportResult.ExitCode,
		testResult.Stdout, testResult.Stderr, reportResult.Stdout,
	)

	return mcp.NewToolResultText(text), nil
}

// ---------------------------------------------------------------------------
// Coverage analysis
// ---------------------------------------------------------------------------

type coverageTool struct {
	deps toolDeps
}

func newCoverageTool(deps toolDeps) coverageTool {
	return coverageTool{deps: deps}
}

func (coverageTool) Definition() mcp.Tool {
	return mcp.NewTool("analyze_coverage",
		mcp.WithDescription("Parse the JaCoCo coverage report and summarize line, branch, and method coverage overall and per package."),
		mcp.WithString("report_path", mcp.Description("Path to the JaCoCo XML report (defaults to the configured location)")),
	)
}

func (t coverageTool) Handle(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path := t.deps.resolveReportPath(request.GetString("report_path", ""))

	root, errResult := t.deps.loadReport(path)
	if errResult != nil {
		return errResult, nil
	}

	text := controller.RenderCoverageReport(domain.RankOverall(root), domain.RankByPackage(root))

	return mcp.NewToolResultText(text), nil
}

func (d toolDeps) loadReport(path string) (*m.ScopeNode, *mcp.CallToolResult) {
	root, err := domain.LoadReport(d.fs, m.Path(path))
	if err != nil {
		var notFound *domain.NotFoundError
		if errors.As(err, &notFound) {
			return nil, textError("Coverage report not found. Run 'run_maven_tests' first.")
		}

		return nil, textError("analyzing coverage: %v", err)
	}

	return root, nil
}

// ---------------------------------------------------------------------------
// Uncovered code
// ---------------------------------------------------------------------------

type uncoveredTool struct {
	deps toolDeps
}

func newUncoveredTool(deps toolDeps) uncoveredTool {
	return uncoveredTool{deps: deps}
}

func (uncoveredTool) Definition() mcp.Tool {
	return mcp.NewTool("identify_uncovered_code",
		mcp.WithDescription("Identify methods with low line coverage, ranked most-urgent first."),
		mcp.WithString("report_path", mcp.Description("Path to the JaCoCo XML report (defaults to the configured location)")),
		mcp.WithNumber("threshold", mcp.Description("Coverage percent cutoff; methods strictly below it are listed (default 50)")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of methods to enumerate (default 20)")),
	)
}

func (t uncoveredTool) Handle(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path := t.deps.resolveReportPath(request.GetString("report_path", ""))
	threshold := request.GetFloat("threshold", t.deps.cfg.Threshold)
	limit := request.GetInt("limit", t.deps.cfg.Limit)

	root, errResult := t.deps.loadReport(path)
	if errResult != nil {
		return errResult, nil
	}

	items, total := domain.RankUncovered(root, threshold, limit)

	return mcp.NewToolResultText(controller.RenderUncoveredReport(items, total, threshold)), nil
}

// ---------------------------------------------------------------------------
// Git automation
// ---------------------------------------------------------------------------

type gitStatusTool struct {
	deps toolDeps
}

func newGitStatusTool(deps toolDeps) gitStatusTool {
	return gitStatusTool{deps: deps}
}

func (gitStatusTool) Definition() mcp.Tool {
	return mcp.NewTool("git_status",
		mcp.WithDescription("Show repository status: staged, unstaged, untracked, and conflicted files."),
		mcp.WithString("repo_path", mcp.Description("Path to the repository (defaults to the configured project)")),
	)
}

func (t gitStatusTool) Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	repoPath := request.GetString("repo_path", t.deps.cfg.ProjectPath)

	result, err := t.deps.git.Status(ctx, repoPath)
	if err != nil {
		return textError("executing git status: %v", err), nil
	}

	if result.ExitCode != 0 {
		return textError("getting git status: %s", strings.TrimSpace(result.Stderr)), nil
	}

	summary := domain.ClassifyGitStatus(result.Stdout)

	return mcp.NewToolResultText(controller.RenderGitStatusReport(summary)), nil
}

type gitAddTool struct {
	deps toolDeps
}

func newGitAddTool(deps toolDeps) gitAddTool {
	return gitAddTool{deps: deps}
}

func (gitAddTool) Definition() mcp.Tool {
	return mcp.NewTool("git_add_all",
		mcp.WithDescription("Stage all changes in the repository."),
		mcp.WithString("repo_path", mcp.Description("Path to the repository (defaults to the configured project)")),
	)
}

func (t gitAddTool) Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	repoPath := request.GetString("repo_path", t.deps.cfg.ProjectPath)

	addResult, err := t.deps.git.AddAll(ctx, repoPath)
	if err != nil {
		return textError("staging files: %v", err), nil
	}

	if addResult.ExitCode != 0 {
		return textError("staging files: %s", strings.TrimSpace(addResult.Stderr)), nil
	}

	statusResult, err := t.deps.git.Status(ctx, repoPath)
	if err != nil {
		return textError("confirming staged files: %v", err), nil
	}

	staged := domain.ClassifyGitStatus(statusResult.Stdout).Staged

	return mcp.NewToolResultText(controller.RenderGitAddReport(staged)), nil
}

type gitCommitTool struct {
	deps toolDeps
}

func newGitCommitTool(deps toolDeps) gitCommitTool {
	return gitCommitTool{deps: deps}
}

func (gitCommitTool) Definition() mcp.Tool {
	return mcp.NewTool("git_commit",
		mcp.WithDescription("Create a commit with the given message."),
		mcp.WithString("message", mcp.Required(), mcp.Description("Commit message")),
		mcp.WithString("repo_path", mcp.Description("Path to the repository (defaults to the configured project)")),
	)
}

func (t gitCommitTool) Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	message, err := request.RequireString("message")
	if err != nil {
		return textError("%v", err), nil
	}

	repoPath := request.GetString("repo_path", t.deps.cfg.ProjectPath)

	result, err := t.deps.git.Commit(ctx, repoPath, message)
	if err != nil {
		return textError("creating commit: %v", err), nil
	}

	if result.ExitCode != 0 {
		return textError("creating commit: %s", strings.TrimSpace(result.Stderr)), nil
	}

	return mcp.NewToolResultText(controller.RenderGitActionReport("Git Commit", result.Stdout)), nil
}

type gitPushTool struct {
	deps toolDeps
}

func newGitPushTool(deps toolDeps) gitPushTool {
	return gitPushTool{deps: deps}
}

func (gitPushTool) Definition() mcp.Tool {
	return mcp.NewTool("git_push",
		mcp.WithDescription("Push commits to a remote."),
		mcp.WithString("remote", mcp.Description("Remote name (default: origin)")),
		mcp.WithString("branch", mcp.Description("Branch name (defaults to the current branch)")),
		mcp.WithString("repo_path", mcp.Description("Path to the repository (defaults to the configured project)")),
	)
}

func (t gitPushTool) Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	repoPath := request.GetString("repo_path", t.deps.cfg.ProjectPath)
	remote := request.GetString("remote", "origin")

	branch := request.GetString("branch", "")
	if branch == "" {
		current, err := t.deps.git.CurrentBranch(ctx, repoPath)
		if err != nil {
			return textError("pushing to remote: %v", err), nil
		}

		branch = current
	}

	result, err := t.deps.git.Push(ctx, repoPath, remote, branch)
	if err != nil {
		return textError("pushing to remote: %v", err), nil
	}

	if result.ExitCode != 0 {
		return textError("pushing to remote: %s", strings.TrimSpace(result.Stderr)), nil
	}

	body := fmt.Sprintf("Successfully pushed to %s/%s\n\n", remote, branch)
	if result.Stdout != "" {
		body += result.Stdout
	} else {
		body += result.Stderr
	}

	return mcp.NewToolResultText(controller.RenderGitActionReport("Git Push", body)), nil
}

type gitPullRequestTool struct {
	deps toolDeps
}

func newGitPullRequestTool(deps toolDeps) gitPullRequestTool {
	return gitPullRequestTool{deps: deps}
}

func (gitPullRequestTool) Definition() mcp.Tool {
	return mcp.NewTool("git_pull_request",
		mcp.WithDescription("Open a pull request through the GitHub CLI."),
		mcp.WithString("title", mcp.Required(), mcp.Description("Pull request title")),
		mcp.WithString("body", mcp.Required(), mcp.Description("Pull request description")),
		mcp.WithString("base", mcp.Description("Base branch (default: main)")),
		mcp.WithString("repo_path", mcp.Description("Path to the repository (defaults to the configured project)")),
	)
}

func (t gitPullRequestTool) Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := request.RequireString("title")
	if err != nil {
		return textError("%v", err), nil
	}

	body, err := request.RequireString("body")
	if err != nil {
		return textError("%v", err), nil
	}

	repoPath := request.GetString("repo_path", t.deps.cfg.ProjectPath)
	base := request.GetString("base", "main")

	result, err := t.deps.git.CreatePullRequest(ctx, repoPath, title, body, base)
	if err != nil {
		return textError("%v", err), nil
	}

	if result.ExitCode != 0 {
		return textError("creating pull request: %s", strings.TrimSpace(result.Stderr)), nil
	}

	return mcp.NewToolResultText(controller.RenderGitActionReport("Pull Request Created", result.Stdout)), nil
}

// ---------------------------------------------------------------------------
// Class inspection and test generation
// ---------------------------------------------------------------------------

type inspectClassTool struct {
	deps toolDeps
}

func newInspectClassTool(deps toolDeps) inspectClassTool {
	return inspectClassTool{deps: deps}
}

func (inspectClassTool) Definition() mcp.Tool {
	return mcp.NewTool("analyze_java_class",
		mcp.WithDescription("Extract package, class name, and public method signatures from a Java source file."),
		mcp.WithString("class_path", mcp.Required(), mcp.Description("Source path relative to src/main/java")),
	)
}

func (t inspectClassTool) Handle(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	classPath, err := request.RequireString("class_path")
	if err != nil {
		return textError("%v", err), nil
	}

	source, _, errResult := t.deps.readSource(classPath)
	if errResult != nil {
		return errResult, nil
	}

	report := domain.InspectClass(classPath, source)

	return mcp.NewToolResultText(controller.RenderClassReport(report)), nil
}

type testTemplateTool struct {
	deps toolDeps
}

func newTestTemplateTool(deps toolDeps) testTemplateTool {
	return testTemplateTool{deps: deps}
}

func (testTemplateTool) Definition() mcp.Tool {
	return mcp.NewTool("generate_test_template",
		mcp.WithDescription("Generate a JUnit test skeleton for a specific method."),
		mcp.WithString("class_path", mcp.Required(), mcp.Description("Source path relative to src/main/java")),
		mcp.WithString("method_name", mcp.Required(), mcp.Description("Method to generate tests for")),
	)
}

func (t testTemplateTool) Handle(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	classPath, err := request.RequireString("class_path")
	if err != nil {
		return textError("%v", err), nil
	}

	methodName, err := request.RequireString("method_name")
	if err != nil {
		return textError("%v", err), nil
	}

	template := domain.TestTemplate(classPath, methodName)
	text := controller.RenderTemplateReport(domain.ClassName(classPath), methodName, template)

	return mcp.NewToolResultText(text), nil
}

type boundaryTool struct {
	deps toolDeps
}

func newBoundaryTool(deps toolDeps) boundaryTool {
	return boundaryTool{deps: deps}
}

func (boundaryTool) Definition() mcp.Tool {
	return mcp.NewTool("generate_boundary_value_tests",
		mcp.WithDescription("Generate boundary value analysis test cases from declared parameter ranges."),
		mcp.WithString("class_path", mcp.Required(), mcp.Description("Source path relative to src/main/java")),
		mcp.WithString("method_name", mcp.Required(), mcp.Description("Method under test")),
		mcp.WithString("param_ranges", mcp.Required(), mcp.Description(`JSON parameter ranges, e.g. {"amount": {"min": 0, "max": 100, "type": "int"}}`)),
	)
}

func (t boundaryTool) Handle(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	classPath, err := request.RequireString("class_path")
	if err != nil {
		return textError("%v", err), nil
	}

	methodName, err := request.RequireString("method_name")
	if err != nil {
		return textError("%v", err), nil
	}

	ranges, err := request.RequireString("param_ranges")
	if err != nil {
		return textError("%v", err), nil
	}

	specs, err := domain.ParseParameterSpecsJSON([]byte(ranges))
	if err != nil {
		return textError("generating boundary value tests: %v", err), nil
	}

	cases := domain.SynthesizeBoundary(methodName, specs)

	params := make([]string, 0, len(specs))
	for _, spec := range specs {
		params = append(params, spec.Name)
	}

	qualified := domain.ClassName(classPath) + "." + methodName

	return mcp.NewToolResultText(controller.RenderBoundaryReport(qualified, params, cases)), nil
}

type equivalenceTool struct {
	deps toolDeps
}

func newEquivalenceTool(deps toolDeps) equivalenceTool {
	return equivalenceTool{deps: deps}
}

func (equivalenceTool) Definition() mcp.Tool {
	return mcp.NewTool("generate_equivalence_class_tests",
		mcp.WithDescription("Generate equivalence class partitioning test recommendations."),
		mcp.WithString("class_path", mcp.Required(), mcp.Description("Source path relative to src/main/java")),
		mcp.WithString("method_name", mcp.Required(), mcp.Description("Method under test")),
		mcp.WithString("equivalence_classes", mcp.Required(), mcp.Description(`JSON partition groups, e.g. {"valid": ["positive", "zero"], "invalid": ["negative"]}`)),
	)
}

func (t equivalenceTool) Handle(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	classPath, err := request.RequireString("class_path")
	if err != nil {
		return textError("%v", err), nil
	}

	methodName, err := request.RequireString("method_name")
	if err != nil {
		return textError("%v", err), nil
	}

	classes, err := request.RequireString("equivalence_classes")
	if err != nil {
		return textError("%v", err), nil
	}

	groups, err := domain.ParsePartitionGroupsJSON([]byte(classes))
	if err != nil {
		return textError("generating equivalence class tests: %v", err), nil
	}

	qualified := domain.ClassName(classPath) + "." + methodName
	text := controller.RenderEquivalenceReport(qualified, domain.SynthesizeEquivalence(groups))

	return mcp.NewToolResultText(text), nil
}

// ---------------------------------------------------------------------------
// Code smells
// ---------------------------------------------------------------------------

type smellTool struct {
	deps toolDeps
}

func newSmellTool(deps toolDeps) smellTool {
	return smellTool{deps: deps}
}

func (smellTool) Definition() mcp.Tool {
	return mcp.NewTool("detect_code_smells",
		mcp.WithDescription("Detect long methods, oversized files, magic numbers, and duplicated lines in a Java source file."),
		mcp.WithString("class_path", mcp.Required(), mcp.Description("Source path relative to src/main/java")),
	)
}

func (t smellTool) Handle(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	classPath, err := request.RequireString("class_path")
	if err != nil {
		return textError("%v", err), nil
	}

	source, _, errResult := t.deps.readSource(classPath)
	if errResult != nil {
		return errResult, nil
	}

	smells := domain.ScanSmells(source)

	return mcp.NewToolResultText(controller.RenderSmellReport(classPath, smells)), nil
}
