package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Packaging settings. Paths are relative to the working directory.
type Config struct {
	Product           string   `toml:"product"`            // Executable and archive name prefix.
	Manifest          string   `toml:"manifest"`           // Project metadata file.
	ReleaseDir        string   `toml:"release_dir"`        // Build output directory.
	ConfigFile        string   `toml:"config_file"`        // Optional game config bundled at the root.
	AssetsDir         string   `toml:"assets_dir"`         // Optional assets tree bundled under assets/.
	BuildCommand      []string `toml:"build_command"`      // Release build invocation.
	RequireExecutable bool     `toml:"require_executable"` // Fail when no executable was built.
}

// Returns the settings for the supersnake cargo project.
func Default() Config {
	return Config{
		Product:      "supersnake",
		Manifest:     "Cargo.toml",
		ReleaseDir:   "target/release",
		ConfigFile:   "config.json",
		AssetsDir:    "assets",
		BuildCommand: []string{"cargo", "build", "--release"},
	}
}

// Reads a TOML settings file over the defaults.
//
// Unknown keys are rejected so a misspelled setting does not silently fall
// back to its default.
func Load(path string) (Config, error) {
	cfg := Default()

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: %s: unknown keys %s", ErrConfig, path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Checks that every required setting is present.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Product) == "" {
		errs = append(errs, errors.New("product is empty"))
	}
	if strings.TrimSpace(c.Manifest) == "" {
		errs = append(errs, errors.New("manifest is empty"))
	}
	if strings.TrimSpace(c.ReleaseDir) == "" {
		errs = append(errs, errors.New("release_dir is empty"))
	}
	if len(c.BuildCommand) == 0 || strings.TrimSpace(c.BuildCommand[0]) == "" {
		errs = append(errs, errors.New("build_command is empty"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrConfig, errors.Join(errs...))
	}
	return nil
}
