package internal

import (
	"strconv"
	"sync/atomic"
)

var (
	quietMode   atomic.Bool
	debugMode   atomic.Bool
	verboseMode atomic.Bool
)

// Seeds the output modes from linker flags.
//
// Unparseable values leave the mode disabled.
func init() {
	seed(&quietMode, rawQuiet)
	seed(&debugMode, rawDebug)
	seed(&verboseMode, rawVerbose)
}

func seed(mode *atomic.Bool, raw string) {
	if v, err := strconv.ParseBool(raw); err == nil {
		mode.Store(v)
	}
}

// Whether informational output is suppressed.
func IsQuiet() bool {
	return quietMode.Load()
}

// Whether debug records are emitted.
func IsDebug() bool {
	return debugMode.Load()
}

// Whether records carry their full attribute set.
func IsVerbose() bool {
	return verboseMode.Load()
}

// Overrides the linker defaults after flags are parsed.
func SetModes(quiet, debug, verbose bool) {
	quietMode.Store(quiet || quietMode.Load())
	debugMode.Store(debug || debugMode.Load())
	verboseMode.Store(verbose || verboseMode.Load())
}
