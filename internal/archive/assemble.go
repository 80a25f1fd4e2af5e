package archive

import (
	"context"
	_ "crypto/sha256"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"

	"github.com/opencontainers/go-digest"
	"github.com/supersnake/pack/internal/paths"
)

// Entry name prefix for the assets tree.
const AssetsPrefix = "assets"

// Extension of the Windows executable variant.
const windowsExt = ".exe"

// Inputs of an archive. Empty optional paths disable their step.
type Sources struct {
	Product           string // Base name of the release executable.
	ReleaseDir        string // Directory holding the release executable.
	ConfigFile        string // Optional file placed at the archive root.
	AssetsDir         string // Optional directory placed under assets/.
	RequireExecutable bool   // Fail instead of skipping a missing executable.
}

// Describes a written archive.
type Result struct {
	Path    string        // Output file.
	Entries []string      // Entry names in write order.
	Digest  digest.Digest // Digest of the complete archive file.
}

// Creates the archive at path, replacing any existing file.
//
// The executable is looked up as ReleaseDir/Product, then as
// ReleaseDir/Product.exe; the first one found is stored at the root under
// its file name. The config file, if present, is stored at the root under
// its base name. Every regular file below AssetsDir is stored as
// assets/<relative path>.
//
// On failure the partially written output file is removed.
func Assemble(ctx context.Context, path string, src Sources) (res *Result, err error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, paths.DefaultFileMode)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrArchive, err)
	}

	w := newWriter(f)

	defer func() {
		if err == nil {
			return
		}
		f.Close()
		if rmErr := os.Remove(path); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
			slog.Warn("could not remove partial archive", "path", path, "error", rmErr)
		}
	}()

	if err := addExecutable(w, src); err != nil {
		return nil, err
	}

	if err := addConfig(w, src.ConfigFile); err != nil {
		return nil, err
	}

	if err := addAssets(ctx, w, src.AssetsDir); err != nil {
		return nil, err
	}

	if err := w.close(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrArchive, err)
	}

	dgst, err := fileDigest(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrArchive, err)
	}

	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrArchive, err)
	}

	slog.Info("archive assembled", "path", path, "entries", len(w.entries), "digest", dgst)

	return &Result{Path: path, Entries: w.entries, Digest: dgst}, nil
}

// Stores the first executable variant that exists.
func addExecutable(w *writer, src Sources) error {
	for _, name := range []string{src.Product, src.Product + windowsExt} {
		hostPath := filepath.Join(src.ReleaseDir, name)

		ok, err := isRegularFile(hostPath)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrArchive, err)
		}
		if !ok {
			continue
		}

		return w.addFile(hostPath, name)
	}

	if src.RequireExecutable {
		return fmt.Errorf("%w: %w: %s in %s", ErrArchive, ErrMissingExecutable, src.Product, src.ReleaseDir)
	}

	slog.Warn("no release executable found, archive will not contain one", "dir", src.ReleaseDir, "product", src.Product)
	return nil
}

// Stores the config file at the root, if it exists.
func addConfig(w *writer, hostPath string) error {
	if hostPath == "" {
		return nil
	}

	ok, err := isRegularFile(hostPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrArchive, err)
	}
	if !ok {
		slog.Debug("no config file", "path", hostPath)
		return nil
	}

	return w.addFile(hostPath, filepath.Base(hostPath))
}

// Walks the assets directory, storing each file under [AssetsPrefix].
//
// Directories produce no entries of their own. The root may be a symbolic
// link to a directory. Symbolic links to regular files are followed; other
// non-regular files are skipped.
func addAssets(ctx context.Context, w *writer, root string) error {
	if root == "" {
		return nil
	}

	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Debug("no assets directory", "path", root)
			return nil
		}
		return fmt.Errorf("%w: %w", ErrArchive, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: assets path %s is not a directory", ErrArchive, root)
	}

	// WalkDir does not descend through a symlinked root.
	root, err = filepath.EvalSymlinks(root)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrArchive, err)
	}

	err = filepath.WalkDir(root, func(hostPath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ok, err := isRegularFile(hostPath)
		if err != nil {
			return err
		}
		if !ok {
			slog.Debug("skipping non-regular asset", "path", hostPath)
			return nil
		}

		rel, err := filepath.Rel(root, hostPath)
		if err != nil {
			return err
		}

		return w.addFile(hostPath, path.Join(AssetsPrefix, filepath.ToSlash(rel)))
	})
	if err != nil && !errors.Is(err, ErrArchive) {
		return fmt.Errorf("%w: %w", ErrArchive, err)
	}
	return err
}

// Reports whether hostPath names a regular file, following symlinks.
// A missing path is not an error.
func isRegularFile(hostPath string) (bool, error) {
	info, err := os.Stat(hostPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

// Digests the file from its start.
func fileDigest(f *os.File) (digest.Digest, error) {
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return digest.FromReader(f)
}
