package list

import (
	"github.com/fzft/go-dlist/log"
	"go.uber.org/zap"
)

type Option func(*options)

type options struct {
	logger   *zap.Logger
	capacity int
}

// WithLogger sets the logger used for rejected indices and invariant failures.
// Lists default to log.Logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithCapacity pre-sizes the node arena for n elements.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: log.Logger}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	return o
}
