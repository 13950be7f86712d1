package huffman

import (
	"github.com/op/go-logging"
)

// Option configures a Codec under construction.
type Option func(*options)

type options struct {
	logger *logging.Logger
}

func defaultOptions() options {
	return options{logger: log}
}

// WithLogger directs a Codec's diagnostics to the given logger instead of
// the package logger.  A nil logger restores the default.
func WithLogger(logger *logging.Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = log
		}
		o.logger = logger
	}
}
