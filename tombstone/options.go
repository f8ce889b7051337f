package tombstone

import (
	"io"
	"log/slog"
)

// Option defines a configuration option for the Tracker.
type Option func(*Tracker)

// WithLogger sets the logger for the tracker.
func WithLogger(l *slog.Logger) Option {
	return func(t *Tracker) {
		if l != nil {
			t.logger = l
		}
	}
}

// WithMetricsObserver sets the metrics observer for the tracker.
func WithMetricsObserver(observer MetricsObserver) Option {
	return func(t *Tracker) {
		if observer != nil {
			t.metrics = observer
		}
	}
}

// WithChecks builds the underlying bitset with regime assertions enabled.
// Useful in tests to catch bulk work racing single-bit mutation.
func WithChecks() Option {
	return func(t *Tracker) {
		t.checked = true
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
