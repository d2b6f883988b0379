// Package logging wires up the engine's diagnostic (non-protocol)
// logger: engine.toml load failures, command-file open failures, and
// errors returned by the UCI session or its search goroutine. UCI
// protocol traffic itself goes
// straight to stdout via fmt, never through this logger.
//
// Grounded on frankkopp-FrankyGo's use of github.com/op/go-logging for
// the same stdout/stderr separation between protocol output and
// engine diagnostics.
package logging

import (
	"os"

	logging "github.com/op/go-logging"
)

var log = logging.MustGetLogger("meneldor")

func init() {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatter := logging.MustStringFormatter(
		`%{time:15:04:05.000} %{level:.4s} %{shortfunc}: %{message}`,
	)
	formatted := logging.NewBackendFormatter(backend, formatter)
	logging.SetBackend(formatted)
}

// Log returns the package-wide diagnostic logger.
func Log() *logging.Logger {
	return log
}
