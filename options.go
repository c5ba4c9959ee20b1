package intset

import "log/slog"

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	capacity         int
}

// Option configures an IntSet.
//
// Options travel with the set: Clone and the copying algebra methods
// hand them to the sets they return.
type Option func(*options)

// WithLogger configures structured logging of storage resizes.
//
// Example:
//
//	logger := intset.NewJSONLogger(slog.LevelDebug)
//	s := intset.New(intset.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetrics configures a MetricsCollector.
//
// If nil is passed, metrics are discarded.
func WithMetrics(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithCapacity reserves storage for elements up to maxElement so that
// pushes below it do not reallocate. The set stays empty.
func WithCapacity(maxElement int) Option {
	return func(o *options) {
		o.capacity = maxElement
	}
}

func defaultOptions() options {
	return options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
