// Package platform describes the host the release is packaged on.
//
// The architecture is reported as the host names it (for example "x86_64"
// or "arm64" from uname, "AMD64" from Windows), not as Go's GOARCH. The OS
// name is the kernel's own name ("Linux", "Darwin", "Windows"); callers
// lower-case it where needed.
package platform
