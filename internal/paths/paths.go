package paths

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (

	// Name used for directory naming.
	toolName = "supersnake-pack"

	// Base name of the user settings file.
	settingsFile = "config.toml"

	// Default permission mode for created files.
	DefaultFileMode os.FileMode = 0644
)

// Path to the user settings file, whether or not it exists.
//
//	Linux:   $XDG_CONFIG_HOME/supersnake-pack/config.toml
//	macOS:   ~/Library/Application Support/supersnake-pack/config.toml
//	Windows: %LOCALAPPDATA%\supersnake-pack\config.toml
func Settings() string {
	return filepath.Join(xdg.ConfigHome, toolName, settingsFile)
}

// Returns the user settings path if the file exists, or "" otherwise.
//
// Errors other than non-existence are returned so a settings file that
// cannot be read is not silently ignored.
func ExistingSettings() (string, error) {
	path := Settings()
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return path, nil
}
