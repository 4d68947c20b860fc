package adapter

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// CommandResult holds the outcome of one external command.
type CommandResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// commandRunner is the seam between adapters and os/exec, injectable in
// tests.
type commandRunner func(ctx context.Context, dir, name string, args ...string) (CommandResult, error)

// runLocalCommand executes a command in dir, capturing stdout and stderr
// separately. A non-zero exit is not an error here; callers inspect the
// exit code. Context cancellation and spawn failures are.
func runLocalCommand(ctx context.Context, dir, name string, args ...string) (CommandResult, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result := CommandResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && ctx.Err() == nil {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}

		if ctx.Err() != nil {
			return result, ctx.Err()
		}

		return result, err
	}

	return result, nil
}
