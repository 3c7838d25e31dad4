package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/mdobak/go-xerrors"
	"github.com/ringo-is-a-color/exithook/util/osutil"
)

var defaultLogger atomic.Pointer[slog.Logger]

// New returns a text logger writing to w, at debug level when verbose.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// SetDefault installs the logger shared by every component that was not given
// its own one.
func SetDefault(l *slog.Logger) {
	defaultLogger.Store(l)
}

// Default returns the logger installed with SetDefault, or slog's default
// logger before that.
func Default() *slog.Logger {
	if l := defaultLogger.Load(); l != nil {
		return l
	}
	return slog.Default()
}

func Debug(msg string, args ...any) {
	Default().Debug(msg, args...)
}

func WarnWithError(msg string, err error, args ...any) {
	Default().Warn(msg, append(args, "err", err)...)
	printStackTrace(err)
}

func Fatal(msg string, err error, args ...any) {
	Default().Error(msg, append(args, "err", err)...)
	osutil.Exit(1)
}

func printStackTrace(err error) {
	// skip first stack trace which used in 'github.com/ringo-is-a-color/exithook/util/errors' package
	stacktrace := xerrors.StackTrace(err)
	if len(stacktrace) > 1 {
		fmt.Fprint(os.Stderr, stacktrace[1:])
	} else if len(stacktrace) == 1 {
		fmt.Fprint(os.Stderr, stacktrace)
	}
}
