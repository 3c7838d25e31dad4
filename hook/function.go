package hook

import (
	"github.com/ringo-is-a-color/exithook/dispatch"
)

// WrapFunctionExit returns a function that calls fn and then dispatches a
// function exit with handler as the function handler. The handler runs only
// when the wrapped function is called on the main goroutine; elsewhere the
// dispatcher logs "Function is exiting".
func WrapFunctionExit(fn func(), handler func(), opts ...Option) func() {
	d := newDispatcher(dispatch.Config{Function: handler}, opts)
	return func() {
		defer d.HandleExit()
		fn()
	}
}
