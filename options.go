package overlay

import "log/slog"

// options holds registry configuration shared by every type instantiation.
type options struct {
	logger *slog.Logger
}

// Option configures a Registry.
type Option func(*options)

// WithLogger sets the logger used for registry diagnostics.
// A nil logger restores the package default.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func applyOptions(opts []Option) options {
	o := options{logger: defaultLogger}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
