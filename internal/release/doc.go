// Package release runs the packaging pipeline.
//
// A run builds the project, reads its version, names the archive after the
// version and host platform, and assembles the archive in the project
// directory. The stages run in that order and the first failure aborts the
// run; nothing is retried.
//
// Example usage:
//
//	res, err := release.Run(ctx, release.Options{
//	    Config:   config.Default(),
//	    Dir:      ".",
//	    Runner:   build.ExecRunner{Stdout: os.Stderr, Stderr: os.Stderr},
//	    Platform: platform.Host{},
//	})
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("Created %s\n", res.Name)
package release
