package tombstone

import "errors"

var (
	// ErrOutOfRange is returned when an id is not below the tracker size.
	ErrOutOfRange = errors.New("tombstone: id out of range")

	// ErrSizeMismatch is returned when a merged mask differs in size from the tracker.
	ErrSizeMismatch = errors.New("tombstone: size mismatch")
)
