package build

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
)

// Runs the release build command for a project.
type Builder struct {
	runner  Runner
	dir     string
	command []string
}

// Creates a [Builder] that runs command in dir.
//
// The first element of command is the executable; the rest are its
// arguments.
func New(runner Runner, dir string, command []string) *Builder {
	return &Builder{
		runner:  runner,
		dir:     dir,
		command: slices.Clone(command),
	}
}

// Runs the build and blocks until it finishes.
//
// Returns nil only if the command exited with status zero.
func (b *Builder) Build(ctx context.Context) error {
	if len(b.command) == 0 {
		return fmt.Errorf("%w: no build command", ErrBuild)
	}

	slog.Info("building release", "command", b.command, "dir", b.dir)

	res, err := b.runner.Run(ctx, Command{
		Name: b.command[0],
		Args: b.command[1:],
		Dir:  b.dir,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuild, err)
	}

	if res.ExitCode != 0 {
		return &Error{Command: slices.Clone(b.command), ExitCode: res.ExitCode}
	}

	slog.Debug("release build finished")
	return nil
}
