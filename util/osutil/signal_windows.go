package osutil

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/tebeka/atexit"
)

func notifyEndSignals() chan os.Signal {
	end := make(chan os.Signal, 1)
	signal.Notify(end,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGHUP,
	)
	return end
}

func listenEndSignalAndRunHandler(end chan os.Signal) {
	<-end
	signal.Stop(end)
	// https://pkg.go.dev/os#Process.Signal
	// Sending Interrupt on Windows is not implemented.
	atexit.Exit(1)
}
