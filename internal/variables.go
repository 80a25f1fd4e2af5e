package internal

import (
	"fmt"
	"runtime"
	"strings"
)

// Name of the packaging tool, used for logging groups and config paths.
const Name = "supersnake-pack"

const (
	undefined  = "(undefined)"
	localBuild = "(local)"
	mainBranch = "main"
)

// Set via -ldflags "-X github.com/supersnake/pack/internal.version=...".
var (
	version   = ""
	stage     = ""
	gitCommit = ""

	rawQuiet   = "false"
	rawDebug   = "false"
	rawVerbose = "false"
)

// Returns the tool version without a leading "v", or "(undefined)".
func Version() string {
	v := strings.ToLower(strings.TrimSpace(version))
	if v == "" {
		return undefined
	}
	return strings.TrimPrefix(v, "v")
}

// Returns true unless version, stage, and commit were all injected.
func IsLocal() bool {
	for _, v := range []string{version, stage, gitCommit} {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}

// Returns "(local)" for developer builds, or
// "<version>[+<stage>] <commit> [<goos>/<goarch>]" for pipeline builds.
// The stage suffix is omitted for the main branch.
func VersionString() string {
	if IsLocal() {
		return localBuild
	}

	suffix := ""
	if s := strings.ToLower(strings.TrimSpace(stage)); s != mainBranch {
		suffix = "+" + s
	}

	return fmt.Sprintf("%s%s %s [%s/%s]",
		Version(), suffix, strings.TrimSpace(gitCommit), runtime.GOOS, runtime.GOARCH)
}
