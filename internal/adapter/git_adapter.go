package adapter

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// GitAdapter abstracts the version-control operations exposed as tools.
type GitAdapter interface {
	Status(ctx context.Context, repoPath string) (CommandResult, error)
	AddAll(ctx context.Context, repoPath string) (CommandResult, error)
	Commit(ctx context.Context, repoPath, message string) (CommandResult, error)
	CurrentBranch(ctx context.Context, repoPath string) (string, error)
	Push(ctx context.Context, repoPath, remote, branch string) (CommandResult, error)
	CreatePullRequest(ctx context.Context, repoPath, title, body, base string) (CommandResult, error)
}

// LocalGitAdapter shells out to git and the GitHub CLI.
type LocalGitAdapter struct {
	run commandRunner
}

// NewLocalGitAdapter constructs a LocalGitAdapter.
func NewLocalGitAdapter() *LocalGitAdapter {
	return &LocalGitAdapter{run: runLocalCommand}
}

// Status returns porcelain status output for classification by the caller.
func (a *LocalGitAdapter) Status(ctx context.Context, repoPath string) (CommandResult, error) {
	return a.run(ctx, repoPath, "git", "status", "--porcelain")
}

// AddAll stages every change in the working tree.
func (a *LocalGitAdapter) AddAll(ctx context.Context, repoPath string) (CommandResult, error) {
	return a.run(ctx, repoPath, "git", "add", "-A")
}

// Commit creates a commit with the given message.
func (a *LocalGitAdapter) Commit(ctx context.Context, repoPath, message string) (CommandResult, error) {
	return a.run(ctx, repoPath, "git", "commit", "-m", message)
}

// CurrentBranch resolves the checked-out branch name.
func (a *LocalGitAdapter) CurrentBranch(ctx context.Context, repoPath string) (string, error) {
	result, err := a.run(ctx, repoPath, "git", "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", err
	}

	if result.ExitCode != 0 {
		return "", fmt.Errorf("resolve current branch: %s", strings.TrimSpace(result.Stderr))
	}

	return strings.TrimSpace(result.Stdout), nil
}

// Push pushes the branch to the remote.
func (a *LocalGitAdapter) Push(ctx context.Context, repoPath, remote, branch string) (CommandResult, error) {
	return a.run(ctx, repoPath, "git", "push", remote, branch)
}

// CreatePullRequest opens a review request through the GitHub CLI.
func (a *LocalGitAdapter) CreatePullRequest(ctx context.Context, repoPath, title, body, base string) (CommandResult, error) {
	if _, err := exec.LookPath("gh"); err != nil {
		return CommandResult{}, fmt.Errorf("GitHub CLI (gh) not found. Install from https://cli.github.com/")
	}

	return a.run(ctx, repoPath, "gh", "pr", "create", "--base", base, "--title", title, "--body", body)
}
