package platform

import "errors"

var (
	ErrDetect = errors.New("platform detection failed")
)
