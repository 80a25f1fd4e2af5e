package release

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/supersnake/pack/internal/archive"
	"github.com/supersnake/pack/internal/build"
	"github.com/supersnake/pack/internal/config"
	"github.com/supersnake/pack/internal/manifest"
	"github.com/supersnake/pack/internal/platform"
)

// Stands in for cargo: records the call and optionally writes the
// executable the real build would produce.
type fakeCargo struct {
	exitCode int
	produce  map[string]string
	calls    int
}

func (f *fakeCargo) Run(ctx context.Context, cmd build.Command) (build.Result, error) {
	f.calls++
	for name, body := range f.produce {
		p := filepath.Join(cmd.Dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			return build.Result{}, err
		}
		if err := os.WriteFile(p, []byte(body), 0755); err != nil {
			return build.Result{}, err
		}
	}
	return build.Result{ExitCode: f.exitCode}, nil
}

type failingPlatform struct{}

func (failingPlatform) Detect() (platform.Descriptor, error) {
	return platform.Descriptor{}, errors.New("uname unavailable")
}

var linuxHost = platform.Static{Arch: "x86_64", OS: "Linux"}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
}

const cargoToml = "[package]\nname = \"supersnake\"\nversion = \"0.3.1\"\nedition = \"2021\"\n"

func TestRun(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Cargo.toml"), cargoToml)
	cargo := &fakeCargo{produce: map[string]string{"target/release/supersnake": "ELF"}}

	res, err := Run(context.Background(), Options{
		Config:   config.Default(),
		Dir:      dir,
		Runner:   cargo,
		Platform: linuxHost,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Name != "supersnake_0.3.1_x86_64_linux.zip" {
		t.Errorf("Name = %q, want %q", res.Name, "supersnake_0.3.1_x86_64_linux.zip")
	}
	if res.Version != "0.3.1" {
		t.Errorf("Version = %q, want %q", res.Version, "0.3.1")
	}
	if diff := cmp.Diff([]string{"supersnake"}, res.Archive.Entries); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
	if want := filepath.Join(dir, res.Name); res.Archive.Path != want {
		t.Errorf("Archive.Path = %q, want %q", res.Archive.Path, want)
	}
	if _, err := os.Stat(res.Archive.Path); err != nil {
		t.Errorf("archive not written: %v", err)
	}
	if cargo.calls != 1 {
		t.Errorf("build ran %d times, want 1", cargo.calls)
	}
}

func TestRunFullLayout(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Cargo.toml"), cargoToml)
	writeFile(t, filepath.Join(dir, "config.json"), "{}")
	writeFile(t, filepath.Join(dir, "assets", "sounds", "jump.wav"), "RIFF")
	writeFile(t, filepath.Join(dir, "assets", "images", "icon.png"), "PNG")
	cargo := &fakeCargo{produce: map[string]string{"target/release/supersnake.exe": "MZ"}}

	res, err := Run(context.Background(), Options{
		Config:   config.Default(),
		Dir:      dir,
		Runner:   cargo,
		Platform: platform.Static{Arch: "AMD64", OS: "Windows"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Name != "supersnake_0.3.1_AMD64_windows.zip" {
		t.Errorf("Name = %q", res.Name)
	}
	want := []string{"supersnake.exe", "config.json", "assets/images/icon.png", "assets/sounds/jump.wav"}
	if diff := cmp.Diff(want, res.Archive.Entries); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestRunBuildFailure(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Cargo.toml"), cargoToml)

	_, err := Run(context.Background(), Options{
		Config:   config.Default(),
		Dir:      dir,
		Runner:   &fakeCargo{exitCode: 101},
		Platform: linuxHost,
	})
	if !errors.Is(err, build.ErrBuild) {
		t.Fatalf("err = %v, want ErrBuild", err)
	}
	assertNoArchives(t, dir)
}

func TestRunMetadataFailure(t *testing.T) {
	dir := t.TempDir()

	_, err := Run(context.Background(), Options{
		Config:   config.Default(),
		Dir:      dir,
		Runner:   &fakeCargo{},
		Platform: linuxHost,
	})
	if !errors.Is(err, manifest.ErrMetadata) {
		t.Fatalf("err = %v, want ErrMetadata", err)
	}
	assertNoArchives(t, dir)
}

func TestRunPlatformFailure(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Cargo.toml"), cargoToml)

	_, err := Run(context.Background(), Options{
		Config:   config.Default(),
		Dir:      dir,
		Runner:   &fakeCargo{},
		Platform: failingPlatform{},
	})
	if !errors.Is(err, platform.ErrDetect) {
		t.Fatalf("err = %v, want ErrDetect", err)
	}
	assertNoArchives(t, dir)
}

func TestRunRequireExecutable(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Cargo.toml"), cargoToml)
	cfg := config.Default()
	cfg.RequireExecutable = true

	_, err := Run(context.Background(), Options{
		Config:   cfg,
		Dir:      dir,
		Runner:   &fakeCargo{},
		Platform: linuxHost,
	})
	if !errors.Is(err, archive.ErrMissingExecutable) {
		t.Fatalf("err = %v, want ErrMissingExecutable", err)
	}
	assertNoArchives(t, dir)
}

func TestRunInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.BuildCommand = nil
	cargo := &fakeCargo{}

	_, err := Run(context.Background(), Options{
		Config:   cfg,
		Dir:      t.TempDir(),
		Runner:   cargo,
		Platform: linuxHost,
	})
	if !errors.Is(err, config.ErrConfig) {
		t.Fatalf("err = %v, want ErrConfig", err)
	}
	if cargo.calls != 0 {
		t.Errorf("build ran %d times, want 0", cargo.calls)
	}
}

func TestResolve(t *testing.T) {
	abs, err := filepath.Abs("assets")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		dir, p, want string
	}{
		{"proj", "Cargo.toml", filepath.Join("proj", "Cargo.toml")},
		{"proj", "", ""},
		{"proj", abs, abs},
	}
	for _, tt := range tests {
		if got := resolve(tt.dir, tt.p); got != tt.want {
			t.Errorf("resolve(%q, %q) = %q, want %q", tt.dir, tt.p, got, tt.want)
		}
	}
}

func assertNoArchives(t *testing.T, dir string) {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, "*.zip"))
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 0 {
		t.Errorf("unexpected archives: %v", matches)
	}
}
