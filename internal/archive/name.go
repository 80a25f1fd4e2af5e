package archive

import (
	"fmt"
	"strings"

	"github.com/supersnake/pack/internal/platform"
)

// Returns "{product}_{version}_{arch}_{os}.zip" with the OS name
// lower-cased. The version and architecture are used verbatim.
func Name(product, version string, host platform.Descriptor) string {
	return fmt.Sprintf("%s_%s_%s_%s.zip", product, version, host.Arch, strings.ToLower(host.OS))
}
