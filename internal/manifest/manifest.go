package manifest

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/BurntSushi/toml"
)

// Subset of Cargo.toml consulted for packaging.
type document struct {
	Package *struct {
		Version any `toml:"version"`
	} `toml:"package"`
}

// Reads the manifest at path and returns its package.version.
//
// The file must exist, be valid TOML, and hold a non-empty string at
// package.version. No default version is substituted.
func Version(path string) (string, error) {
	var doc document
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return "", fmt.Errorf("%w: %w", ErrMetadata, err)
	}

	if doc.Package == nil {
		return "", fmt.Errorf("%w: %s: missing [package] table", ErrMetadata, path)
	}

	raw, ok := doc.Package.Version.(string)
	if !ok {
		if doc.Package.Version == nil {
			return "", fmt.Errorf("%w: %s: missing package.version", ErrMetadata, path)
		}
		return "", fmt.Errorf("%w: %s: package.version is %T, want string", ErrMetadata, path, doc.Package.Version)
	}

	version := StripQuotes(raw)
	if version == "" {
		return "", fmt.Errorf("%w: %s: package.version is empty", ErrMetadata, path)
	}

	slog.Debug("resolved version", "manifest", path, "version", version)
	return version, nil
}

// Removes one pair of surrounding double quotes.
//
// The input is returned unchanged unless it both starts and ends with '"'.
func StripQuotes(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}
	return s
}
