package archive

import "errors"

var (
	ErrArchive           = errors.New("archive assembly failed")
	ErrMissingExecutable = errors.New("release executable not found")
	ErrDuplicateEntry    = errors.New("duplicate archive entry")
)
