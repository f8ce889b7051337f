package vecmask

import (
	"errors"
	"fmt"

	"github.com/hupe1980/vecmask/tombstone"
)

var (
	// ErrOutOfRange is returned when an id is not below the mask size.
	ErrOutOfRange = errors.New("id out of range")
)

// ErrSizeMismatch indicates that a merged exclusion mask does not cover
// exactly as many ids as the Mask.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrSizeMismatch struct {
	Expected uint32
	Actual   uint32
	cause    error
}

func (e *ErrSizeMismatch) Error() string {
	return fmt.Sprintf("size mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *ErrSizeMismatch) Unwrap() error { return e.cause }

func (m *Mask) translateError(err error, actual uint32) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, tombstone.ErrOutOfRange) {
		return fmt.Errorf("%w: %w", ErrOutOfRange, err)
	}
	if errors.Is(err, tombstone.ErrSizeMismatch) {
		return &ErrSizeMismatch{Expected: m.tracker.Size(), Actual: actual, cause: err}
	}

	return err
}
