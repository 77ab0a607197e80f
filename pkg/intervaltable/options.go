package intervaltable

import (
	"github.com/go-logr/logr"
)

type Option func(*options)

type options struct {
	logger logr.Logger
}

func defaultOptions() *options {
	return &options{logger: logr.Discard()}
}

// WithLogger sets the logger used for claim and release events.
func WithLogger(l logr.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
