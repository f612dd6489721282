package util

import "log"

var flagEnableTrace bool = false

func EnableTrace() {
	flagEnableTrace = true
}

func DisableTrace() {
	flagEnableTrace = false
}

func TraceEnabled() bool {
	return flagEnableTrace
}

func Trace(format string, v ...interface{}) {
	if flagEnableTrace {
		log.Printf(format, v...)
	}
}

// Warn is for failures that are reported but do not stop the program.
func Warn(format string, v ...interface{}) {
	log.Printf("warning: "+format, v...)
}
