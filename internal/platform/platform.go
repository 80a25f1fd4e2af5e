package platform

import "fmt"

// Host architecture and OS name pair.
type Descriptor struct {
	Arch string // Raw machine architecture, e.g. "x86_64".
	OS   string // Kernel name as reported by the host, e.g. "Linux".
}

func (d Descriptor) String() string {
	return fmt.Sprintf("%s/%s", d.OS, d.Arch)
}

// Supplies the platform descriptor for a packaging run.
type Provider interface {
	Detect() (Descriptor, error)
}

// Provider that always returns the same descriptor.
type Static Descriptor

// Returns the fixed descriptor.
func (s Static) Detect() (Descriptor, error) {
	return Descriptor(s), nil
}

// Provider that queries the running host.
type Host struct{}

// Returns the descriptor of the running host.
func (Host) Detect() (Descriptor, error) {
	return detect()
}
