// Package dispatch decides which exit handler runs when a program, a function
// or a goroutine finishes.
package dispatch

import (
	"github.com/ringo-is-a-color/exithook/util/log"
	"github.com/ringo-is-a-color/exithook/util/osutil"
)

type Logger interface {
	Info(msg string, args ...any)
}

// Config holds the handlers of a Dispatcher. Every field is optional.
type Config struct {
	Program  func()
	Function func()
	Thread   func()
	// Logger receives the "<Label> is exiting" message when no handler applies.
	// Defaults to log.Default().
	Logger Logger
	// IsPrimary reports whether the caller runs on the main goroutine.
	// Defaults to osutil.IsMainGoroutine.
	IsPrimary func() bool
}

// Dispatcher is immutable once created.
type Dispatcher struct {
	program   func()
	function  func()
	thread    func()
	logger    Logger
	isPrimary func() bool
}

func New(config Config) *Dispatcher {
	d := &Dispatcher{
		program:   config.Program,
		function:  config.Function,
		thread:    config.Thread,
		logger:    config.Logger,
		isPrimary: config.IsPrimary,
	}
	if d.logger == nil {
		d.logger = log.Default()
	}
	if d.isPrimary == nil {
		d.isPrimary = osutil.IsMainGoroutine
	}
	return d
}

// HandleExit invokes exactly one handler, by priority program, function (on
// the main goroutine only) and thread, or logs the exiting entity when none
// applies. A panicking handler is not recovered.
func (d *Dispatcher) HandleExit() {
	switch {
	case d.program != nil:
		d.program()
	case d.function != nil && d.isPrimary():
		d.function()
	case d.thread != nil:
		d.thread()
	default:
		d.logger.Info(d.ExitingEntity().Label() + " is exiting")
	}
}

// ExitingEntity classifies the caller for the fallback log message. It may
// disagree with the branch HandleExit takes: a function handler on a
// non-main goroutine is still classified as Function.
func (d *Dispatcher) ExitingEntity() Entity {
	if d.isPrimary() {
		return Program
	}
	if d.function != nil {
		return Function
	}
	return Thread
}

func (d *Dispatcher) HasHandler() bool {
	return d.program != nil || d.function != nil || d.thread != nil
}
