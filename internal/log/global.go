package log

import "sync"

var (
	globalMu sync.Mutex
	global   *Logger
)

// SetDefaultLogger installs logger as the process-wide default. The CLI
// calls this once after config and flags are resolved; passing nil resets
// to lazy defaults.
func SetDefaultLogger(logger *Logger) {
	globalMu.Lock()
	global = logger
	globalMu.Unlock()
}

// DefaultLogger returns the process-wide default, creating one from
// DefaultConfig on first use if nothing was installed.
func DefaultLogger() *Logger {
	globalMu.Lock()
	defer globalMu.Unlock()

	if global == nil {
		global = Default()
	}
	return global
}
