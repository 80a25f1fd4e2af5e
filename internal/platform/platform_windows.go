//go:build windows

package platform

import (
	"os"
	"runtime"
	"strings"
)

// Reads the processor architecture from the environment.
//
// PROCESSOR_ARCHITEW6432 is set for 32-bit processes on 64-bit hosts and
// names the host's real architecture.
func detect() (Descriptor, error) {
	arch := os.Getenv("PROCESSOR_ARCHITEW6432")
	if arch == "" {
		arch = os.Getenv("PROCESSOR_ARCHITECTURE")
	}
	if arch == "" {
		arch = strings.ToUpper(runtime.GOARCH)
	}
	return Descriptor{Arch: arch, OS: "Windows"}, nil
}
