package hook

import (
	"github.com/ringo-is-a-color/exithook/dispatch"
)

type Option func(config *dispatch.Config)

func WithLogger(logger dispatch.Logger) Option {
	return func(config *dispatch.Config) {
		config.Logger = logger
	}
}

// WithPrimaryCheck replaces the main goroutine check of the dispatcher.
func WithPrimaryCheck(isPrimary func() bool) Option {
	return func(config *dispatch.Config) {
		config.IsPrimary = isPrimary
	}
}

func newDispatcher(config dispatch.Config, opts []Option) *dispatch.Dispatcher {
	for _, opt := range opts {
		opt(&config)
	}
	return dispatch.New(config)
}
