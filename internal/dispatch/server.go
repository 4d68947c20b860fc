// Package dispatch wires the analysis operations into an MCP tool server.
//
// This is the composition root: it creates the concrete adapters and
// registers every tool on the server. No analysis logic lives here; the
// handlers translate between tool arguments and the domain, and convert
// every failure into a diagnostic text result. No typed error ever crosses
// the tool boundary.
package dispatch

import (
	"github.com/mark3labs/mcp-go/server"

	"covlens.dev/pkg/covlens/internal/adapter"
)

// Config carries the defaults tools fall back to when a call omits the
// corresponding argument.
type Config struct {
	// ProjectPath is the Maven project analyzed and the default repo for
	// git operations.
	ProjectPath string
	// ReportPath is the JaCoCo XML report location. Relative paths
	// resolve against ProjectPath.
	ReportPath string
	// Threshold is the uncovered-method coverage cutoff in percent.
	Threshold float64
	// Limit caps the number of uncovered methods enumerated per report.
	Limit int
}

const serverInstructions = `Covlens analyzes Java test coverage and synthesizes targeted test
specifications: JaCoCo report analysis, under-tested method ranking,
boundary-value and equivalence-class test-case generation, heuristic code
smell detection, plus Maven and Git automation.`

// New creates the MCP server with all tools registered. This is the single
// place where dependencies are resolved.
func New(version string, cfg Config) *server.MCPServer {
	s := server.NewMCPServer(
		"covlens",
		version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions),
	)

	deps := toolDeps{
		cfg:   cfg,
		fs:    adapter.NewLocalSourceFSAdapter(),
		build: adapter.NewLocalBuildRunnerAdapter(),
		git:   adapter.NewLocalGitAdapter(),
	}

	registerTools(s, deps)

	return s
}

// ServeStdio runs the server over stdin/stdout until the client disconnects.
func ServeStdio(s *server.MCPServer) error {
	return server.ServeStdio(s)
}

// toolDeps bundles the collaborators the tool handlers share.
type toolDeps struct {
	cfg   Config
	fs    adapter.SourceFSAdapter
	build adapter.BuildRunnerAdapter
	git   adapter.GitAdapter
}

func registerTools(s *server.MCPServer, deps toolDeps) {
	calculator := newCalculatorTool()
	s.AddTool(calculator.Definition(), calculator.Handle)

	maven := newMavenTool(deps)
	s.AddTool(maven.Definition(), maven.Handle)

	coverage := newCoverageTool(deps)
	s.AddTool(coverage.Definition(), coverage.Handle)

	uncovered := newUncoveredTool(deps)
	s.AddTool(uncovered.Definition(), uncovered.Handle)

	gitStatus := newGitStatusTool(deps)
	s.AddTool(gitStatus.Definition(), gitStatus.Handle)

	gitAdd := newGitAddTool(deps)
	s.AddTool(gitAdd.Definition(), gitAdd.Handle)

	gitCommit := newGitCommitTool(deps)
	s.AddTool(gitCommit.Definition(), gitCommit.Handle)

	gitPush := newGitPushTool(deps)
	s.AddTool(gitPush.Definition(), gitPush.Handle)

	gitPR := newGitPullRequestTool(deps)
	s.AddTool(gitPR.Definition(), gitPR.Handle)

	inspect := newInspectClassTool(deps)
	s.AddTool(inspect.Definition(), inspect.Handle)

	template := newTestTemplateTool(deps)
	s.AddTool(template.Definition(), template.Handle)

	boundary := newBoundaryTool(deps)
	s.AddTool(boundary.Definition(), boundary.Handle)

	equivalence := newEquivalenceTool(deps)
	s.AddTool(equivalence.Definition(), equivalence.Handle)

	smells := newSmellTool(deps)
	s.AddTool(smells.Definition(), smells.Handle)
}
