package archive

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/klauspost/compress/zip"
)

// Wraps a zip writer, tracking entry names.
type writer struct {
	zw      *zip.Writer
	entries []string
	seen    map[string]struct{}
}

func newWriter(w io.Writer) *writer {
	return &writer{
		zw:   zip.NewWriter(w),
		seen: make(map[string]struct{}),
	}
}

// Copies a host file into the archive under name.
//
// The entry keeps the file's mode and modification time.
func (w *writer) addFile(hostPath, name string) error {
	if _, ok := w.seen[name]; ok {
		return fmt.Errorf("%w: %w: %s", ErrArchive, ErrDuplicateEntry, name)
	}

	f, err := os.Open(hostPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrArchive, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrArchive, err)
	}

	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrArchive, err)
	}
	header.Name = name
	header.Method = zip.Deflate

	dst, err := w.zw.CreateHeader(header)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrArchive, err)
	}

	if _, err := io.Copy(dst, f); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrArchive, hostPath, err)
	}

	w.seen[name] = struct{}{}
	w.entries = append(w.entries, name)

	slog.Debug("added entry", "name", name, "src", hostPath, "size", info.Size())
	return nil
}

// Writes the central directory.
func (w *writer) close() error {
	return w.zw.Close()
}
