package adapter

import (
	"context"
	"time"
)

// BuildRunnerAdapter abstracts Maven execution for test runs and coverage
// report generation.
type BuildRunnerAdapter interface {
	// RunTests runs the project's test suite. Test failures do not abort
	// the run, so the coverage artifact is still produced.
	RunTests(ctx context.Context, projectPath string) (CommandResult, error)

	// GenerateCoverageReport produces the JaCoCo XML report from the
	// execution data of a previous test run.
	GenerateCoverageReport(ctx context.Context, projectPath string) (CommandResult, error)
}

// LocalBuildRunnerAdapter provides a concrete implementation using os/exec.
type LocalBuildRunnerAdapter struct {
	testTimeout   time.Duration
	reportTimeout time.Duration
	run           commandRunner
}

// NewLocalBuildRunnerAdapter constructs a LocalBuildRunnerAdapter with the
// default timeouts: five minutes for the test run, one minute for report
// generation.
func NewLocalBuildRunnerAdapter() *LocalBuildRunnerAdapter {
	return &LocalBuildRunnerAdapter{
		testTimeout:   5 * time.Minute,
		reportTimeout: time.Minute,
		run:           runLocalCommand,
	}
}

// RunTests runs 'mvn clean test' with test failures ignored.
func (a *LocalBuildRunnerAdapter) RunTests(ctx context.Context, projectPath string) (CommandResult, error) {
	ctx, cancel := context.WithTimeout(ctx, a.testTimeout)
	defer cancel()

	return a.run(ctx, projectPath, "mvn", "clean", "test", "-Dmaven.test.failure.ignore=true")
}

// GenerateCoverageReport runs 'mvn jacoco:report'.
func (a *LocalBuildRunnerAdapter) GenerateCoverageReport(ctx context.Context, projectPath string) (CommandResult, error) {
	ctx, cancel := context.WithTimeout(ctx, a.reportTimeout)
	defer cancel()

	return a.run(ctx, projectPath, "mvn", "jacoco:report")
}
