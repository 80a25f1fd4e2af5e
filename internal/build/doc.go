// Package build runs the project's release build.
//
// The build tool is a black box: the command is started in the project
// directory, its output is forwarded, and only its exit status is
// interpreted. A non-zero status aborts packaging with an [Error] wrapping
// [ErrBuild]. Nothing is retried and no earlier build output is reused.
//
// Example usage:
//
//	b := build.New(build.ExecRunner{Stdout: os.Stderr, Stderr: os.Stderr},
//	    ".", []string{"cargo", "build", "--release"})
//	if err := b.Build(ctx); err != nil {
//	    return err
//	}
package build
