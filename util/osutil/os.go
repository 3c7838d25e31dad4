package osutil

import (
	"github.com/petermattis/goid"
	"github.com/tebeka/atexit"
)

// package variables are initialised by runtime.main, i.e. on the main goroutine
var mainGoroutineID = goid.Get()

// Notify is set up before init returns so that a termination signal arriving
// at any point after package initialisation runs the handlers.
func init() {
	go listenEndSignalAndRunHandler(notifyEndSignals())
}

func RegisterProgramTerminationHandler(f func()) {
	atexit.Register(f)
}

// Exit runs the program termination handlers and then terminates the process.
// Returning from main does not run them.
func Exit(code int) {
	atexit.Exit(code)
}

// IsMainGoroutine reports whether the caller runs on the goroutine the process
// started with.
func IsMainGoroutine() bool {
	return goid.Get() == mainGoroutineID
}
