package vecmask

import (
	"log/slog"
)

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	checked          bool
}

// Option configures Mask constructor behavior.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &vecmask.BasicMetricsCollector{}
//	m := vecmask.New(1_000_000, vecmask.WithMetricsCollector(metrics))
//	// ...
//	stats := metrics.GetStats()
//	fmt.Printf("Deletes: %d, Scans: %d\n", stats.DeleteCount, stats.ScanCount)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := vecmask.NewJSONLogger(slog.LevelInfo)
//	m := vecmask.New(1_000_000, vecmask.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
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

// WithChecks enables regime assertions on the underlying bitset.
// A bulk operation racing single-bit mutation then panics instead of
// silently losing updates. Intended for tests.
func WithChecks() Option {
	return func(o *options) {
		o.checked = true
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	return o
}
