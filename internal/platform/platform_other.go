//go:build !unix && !windows

package platform

import "runtime"

func detect() (Descriptor, error) {
	return Descriptor{Arch: runtime.GOARCH, OS: runtime.GOOS}, nil
}
