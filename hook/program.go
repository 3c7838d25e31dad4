// Package hook attaches exit handlers to the end of the program, of a function
// call or of a goroutine.
package hook

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/ringo-is-a-color/exithook/dispatch"
	"github.com/ringo-is-a-color/exithook/util/errors"
	"github.com/ringo-is-a-color/exithook/util/log"
	"github.com/ringo-is-a-color/exithook/util/osutil"
	"golang.org/x/exp/slices"
)

var (
	ErrAlreadyCancelled = errors.New("the exit hook is already cancelled")
	ErrAlreadyRun       = errors.New("the exit hook has already run")
)

// Registration is a program exit hook registered with RegisterProgramExit.
type Registration struct {
	id         uuid.UUID
	dispatcher *dispatch.Dispatcher
	state      atomic.Int32
}

const (
	statePending int32 = iota
	stateRan
	stateCancelled
)

func (r *Registration) ID() uuid.UUID {
	return r.id
}

func (r *Registration) Dispatcher() *dispatch.Dispatcher {
	return r.dispatcher
}

// Cancel removes the hook so that it does not run at program termination.
func (r *Registration) Cancel() error {
	if !r.state.CompareAndSwap(statePending, stateCancelled) {
		if r.state.Load() == stateRan {
			return errors.WithStack(ErrAlreadyRun)
		}
		return errors.WithStack(ErrAlreadyCancelled)
	}
	programHooks.Lock()
	programHooks.registrations = slices.DeleteFunc(programHooks.registrations, func(other *Registration) bool {
		return other == r
	})
	programHooks.Unlock()
	log.Debug("exit hook cancelled", "id", r.id)
	return nil
}

func (r *Registration) run() {
	if !r.state.CompareAndSwap(statePending, stateRan) {
		return
	}
	defer func() {
		if p := recover(); p != nil {
			log.WarnWithError("the program exit hook panicked", errors.FromPanic(p), "id", r.id)
		}
	}()
	r.dispatcher.HandleExit()
}

var programHooks struct {
	sync.Mutex
	registrations []*Registration
	installed     bool
}

// RegisterProgramExit arranges for handler to run once when the program
// terminates through osutil.Exit or a termination signal. Hooks run in the
// reverse order of their registration.
func RegisterProgramExit(handler func(), opts ...Option) *Registration {
	r := &Registration{
		id:         uuid.New(),
		dispatcher: newDispatcher(dispatch.Config{Program: handler}, opts),
	}

	programHooks.Lock()
	programHooks.registrations = append(programHooks.registrations, r)
	if !programHooks.installed {
		programHooks.installed = true
		osutil.RegisterProgramTerminationHandler(RunProgramExitHooks)
	}
	programHooks.Unlock()

	log.Debug("exit hook registered", "id", r.id)
	return r
}

// RunProgramExitHooks runs the pending program exit hooks, last registered
// first. A hook that panics is logged and the remaining hooks still run.
func RunProgramExitHooks() {
	programHooks.Lock()
	registrations := programHooks.registrations
	programHooks.registrations = nil
	programHooks.Unlock()

	for i := len(registrations) - 1; i >= 0; i-- {
		registrations[i].run()
	}
}
