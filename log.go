package questionbank

import "log"

var verbose bool

// SetVerbose toggles debug logging for the whole package.
func SetVerbose(on bool) {
	verbose = on
}

// Verbosef logs only when verbose mode is enabled.
func Verbosef(format string, v ...interface{}) {
	if verbose {
		log.Printf(format, v...)
	}
}
