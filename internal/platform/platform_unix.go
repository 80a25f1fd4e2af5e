//go:build unix

package platform

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Reads machine and sysname from uname(2).
func detect() (Descriptor, error) {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return Descriptor{}, fmt.Errorf("uname: %w", err)
	}
	return Descriptor{
		Arch: unix.ByteSliceToString(u.Machine[:]),
		OS:   unix.ByteSliceToString(u.Sysname[:]),
	}, nil
}
