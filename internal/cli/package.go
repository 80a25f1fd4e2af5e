package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/supersnake/pack/internal/build"
	"github.com/supersnake/pack/internal/config"
	"github.com/supersnake/pack/internal/paths"
	"github.com/supersnake/pack/internal/platform"
	"github.com/supersnake/pack/internal/release"
)

// Represents the 'supersnake-pack package' command.
type PackageCmd struct{}

// Executes the package command.
//
// The build tool's own output goes to stderr so that stdout carries only
// the name of the created archive.
func (c *PackageCmd) Run(ctx context.Context) error {
	cfg, err := loadConfig(RootCmd.Config)
	if err != nil {
		return err
	}

	return runPackage(ctx, os.Stdout, release.Options{
		Config:   cfg,
		Dir:      RootCmd.Dir,
		Runner:   build.ExecRunner{Stdout: os.Stderr, Stderr: os.Stderr},
		Platform: platform.Host{},
	})
}

// Runs the pipeline and reports the created archive on w.
func runPackage(ctx context.Context, w io.Writer, opts release.Options) error {
	res, err := release.Run(ctx, opts)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "Created %s\n", res.Name)
	return err
}

// Loads settings from the explicit path, else from the user settings file,
// else returns the defaults.
func loadConfig(explicit string) (config.Config, error) {
	path := explicit
	if path == "" {
		found, err := paths.ExistingSettings()
		if err != nil {
			return config.Config{}, fmt.Errorf("%w: %w", config.ErrConfig, err)
		}
		path = found
	}

	if path == "" {
		return config.Default(), nil
	}

	slog.Debug("loading settings", "path", path)
	return config.Load(path)
}
