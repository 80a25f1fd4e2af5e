package main

import (
	"log/slog"
	"os"

	"github.com/supersnake/pack/internal"
	"github.com/supersnake/pack/internal/cli"
)

// The entry point for supersnake-pack.
//
// Installs a logger seeded from build-time linker flags, then executes the
// root command. Any error is logged and the process exits with status 1.
func main() {
	slog.SetDefault(cli.NewLogger(os.Stderr))

	slog.Debug("build", "version", internal.VersionString())

	slog.Debug("supersnake-pack is running",
		"pid", os.Getpid(),
		"cwd", cwd(),
		"args", os.Args,
	)

	if err := cli.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

// Returns the current working directory or "(unknown)".
func cwd() string {
	cwd, err := os.Getwd()
	if err != nil {
		return "(unknown)"
	}
	return cwd
}
