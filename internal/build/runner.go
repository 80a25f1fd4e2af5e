package build

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
)

// External command invocation.
type Command struct {
	Name string   // Executable, resolved through PATH.
	Args []string // Arguments after the executable.
	Dir  string   // Working directory. Empty means the current directory.
}

// Outcome of a command that ran to completion.
type Result struct {
	ExitCode int
}

// Runs a command synchronously.
//
// Run returns an error only when the command could not be started or
// waited on. A command that ran and failed is reported through
// [Result.ExitCode].
type Runner interface {
	Run(ctx context.Context, cmd Command) (Result, error)
}

// Runs commands as child processes of the current process.
type ExecRunner struct {
	Stdout io.Writer // Receives the child's stdout. Nil discards it.
	Stderr io.Writer // Receives the child's stderr. Nil discards it.
}

// Starts the command and blocks until it exits or ctx is cancelled.
func (r ExecRunner) Run(ctx context.Context, cmd Command) (Result, error) {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir
	c.Stdout = r.Stdout
	c.Stderr = r.Stderr

	err := c.Run()
	if err == nil {
		return Result{}, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && ctx.Err() == nil {
		return Result{ExitCode: exitErr.ExitCode()}, nil
	}

	if ctx.Err() != nil {
		return Result{}, fmt.Errorf("%s: %w", cmd.Name, ctx.Err())
	}
	return Result{}, err
}
