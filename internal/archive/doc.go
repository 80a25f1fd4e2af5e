// Package archive names and assembles the release ZIP.
//
// An archive holds at most one executable and one config file at its root,
// and the assets tree re-rooted under "assets/". The assets directory is
// walked and streamed straight into the output; no intermediate archive is
// written. Missing inputs are skipped rather than treated as errors, with
// the exception of the executable when [Sources.RequireExecutable] is set.
//
// Example usage:
//
//	name := archive.Name("supersnake", "0.3.1", platform.Descriptor{Arch: "x86_64", OS: "Linux"})
//	res, err := archive.Assemble(ctx, name, archive.Sources{
//	    Product:    "supersnake",
//	    ReleaseDir: "target/release",
//	    ConfigFile: "config.json",
//	    AssetsDir:  "assets",
//	})
//	if err != nil {
//	    return err
//	}
package archive
