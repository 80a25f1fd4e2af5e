package release

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/supersnake/pack/internal/archive"
	"github.com/supersnake/pack/internal/build"
	"github.com/supersnake/pack/internal/config"
	"github.com/supersnake/pack/internal/manifest"
	"github.com/supersnake/pack/internal/platform"
)

// Controls a packaging run.
type Options struct {
	Config   config.Config     // Project layout and build command.
	Dir      string            // Project directory. Empty means the current directory.
	Runner   build.Runner      // Executes the build command.
	Platform platform.Provider // Describes the host for archive naming.
}

// Returned after a successful run.
type Result struct {
	Name    string              // Archive file name.
	Version string              // Version read from the manifest.
	Host    platform.Descriptor // Platform the archive was named for.
	Archive *archive.Result     // Details of the written archive.
}

// Builds the project and packages it into a release archive.
func Run(ctx context.Context, opts Options) (*Result, error) {
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dir := opts.Dir
	if dir == "" {
		dir = "."
	}

	if err := build.New(opts.Runner, dir, cfg.BuildCommand).Build(ctx); err != nil {
		return nil, err
	}

	version, err := manifest.Version(resolve(dir, cfg.Manifest))
	if err != nil {
		return nil, err
	}

	host, err := opts.Platform.Detect()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", platform.ErrDetect, err)
	}

	name := archive.Name(cfg.Product, version, host)

	slog.Info("packaging release", "version", version, "platform", host.String(), "archive", name)

	res, err := archive.Assemble(ctx, filepath.Join(dir, name), archive.Sources{
		Product:           cfg.Product,
		ReleaseDir:        resolve(dir, cfg.ReleaseDir),
		ConfigFile:        resolve(dir, cfg.ConfigFile),
		AssetsDir:         resolve(dir, cfg.AssetsDir),
		RequireExecutable: cfg.RequireExecutable,
	})
	if err != nil {
		return nil, err
	}

	return &Result{
		Name:    name,
		Version: version,
		Host:    host,
		Archive: res,
	}, nil
}

// Joins a configured path onto the project directory.
//
// Absolute paths are kept and empty paths stay empty, which disables the
// corresponding optional input.
func resolve(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}
