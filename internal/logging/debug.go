package logging

import (
	"fmt"
	"os"
	"strings"
)

// DebugEnabled returns true if debug mode is enabled via the TF_DEBUG
// environment variable
func DebugEnabled() bool {
	return os.Getenv("TF_DEBUG") != ""
}

// Debugf logs a formatted message at debug level
func Debugf(format string, args ...interface{}) {
	Get().Debug().Msgf(format, args...)
}

// Debugln logs its arguments space-separated at debug level
func Debugln(args ...interface{}) {
	Get().Debug().Msg(strings.TrimSuffix(fmt.Sprintln(args...), "\n"))
}
