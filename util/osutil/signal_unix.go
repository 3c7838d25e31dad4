//go:build unix

package osutil

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/tebeka/atexit"
)

const signalBaseCode = 128

func notifyEndSignals() chan os.Signal {
	end := make(chan os.Signal, 1)
	signal.Notify(end,
		// https://www.gnu.org/software/libc/manual/html_node/Termination-Signals.html
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGHUP,
	)
	return end
}

func listenEndSignalAndRunHandler(end chan os.Signal) {
	sig := <-end
	signal.Stop(end)
	atexit.Exit(exitCode(sig))
}

func exitCode(sig os.Signal) int {
	if s, ok := sig.(syscall.Signal); ok {
		return signalBaseCode + int(s)
	}
	return 1
}
