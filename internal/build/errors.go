package build

import (
	"errors"
	"fmt"
)

var (
	ErrBuild = errors.New("build failed")
)

// Returned when the build command exits with a non-zero status.
type Error struct {
	Command  []string
	ExitCode int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v exited with status %d", e.Command, e.ExitCode)
}

// Reports the error as an [ErrBuild].
func (e *Error) Unwrap() error {
	return ErrBuild
}
