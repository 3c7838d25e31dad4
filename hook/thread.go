package hook

import (
	"github.com/ringo-is-a-color/exithook/dispatch"
)

// GoThreadExit runs fn on a new goroutine and dispatches a thread exit with
// handler as the thread handler on that goroutine once fn returns. The
// returned channel is closed after the dispatch.
func GoThreadExit(fn func(), handler func(), opts ...Option) <-chan struct{} {
	d := newDispatcher(dispatch.Config{Thread: handler}, opts)
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer d.HandleExit()
		fn()
	}()
	return done
}
