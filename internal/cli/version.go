package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/supersnake/pack/internal"
)

// Represents the 'supersnake-pack version' command.
type VersionCmd struct{}

// Prints the tool's build version.
func (c *VersionCmd) Run(ctx context.Context) error {
	return printVersion(os.Stdout)
}

func printVersion(w io.Writer) error {
	_, err := fmt.Fprintln(w, internal.VersionString())
	return err
}
