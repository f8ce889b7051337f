package tombstone

import "time"

// MetricsObserver defines the interface for observing tracker events.
type MetricsObserver interface {
	// OnMark is called after MarkDeleted; changed is false if the id was already deleted.
	OnMark(changed bool)

	// OnRestore is called after Restore; changed is false if the id was not deleted.
	OnRestore(changed bool)

	// OnSnapshot is called when a frozen snapshot is taken.
	OnSnapshot(duration time.Duration, deleted int)

	// OnMerge is called when a mask is merged in.
	OnMerge(duration time.Duration, err error)
}

// NoopMetricsObserver is a no-op implementation of MetricsObserver.
type NoopMetricsObserver struct{}

func (o *NoopMetricsObserver) OnMark(changed bool)                            {}
func (o *NoopMetricsObserver) OnRestore(changed bool)                         {}
func (o *NoopMetricsObserver) OnSnapshot(duration time.Duration, deleted int) {}
func (o *NoopMetricsObserver) OnMerge(duration time.Duration, err error)      {}
