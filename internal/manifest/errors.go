package manifest

import "errors"

var (
	ErrMetadata = errors.New("project metadata error")
)
