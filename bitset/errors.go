package bitset

import (
	"errors"
	"fmt"
)

var (
	// ErrShortBuffer is returned when a source buffer holds fewer bytes than the bit count requires.
	ErrShortBuffer = errors.New("bitset: source buffer too short")

	// ErrOutOfRange is returned when an imported id does not fit the bitset.
	ErrOutOfRange = errors.New("bitset: id out of range")

	// ErrFrozen is raised by checked bitsets when a single-bit mutation hits a frozen bitset.
	ErrFrozen = errors.New("bitset: mutation of frozen bitset")

	// ErrNotFrozen is raised by checked bitsets when a bulk operation runs outside the frozen regime.
	ErrNotFrozen = errors.New("bitset: bulk operation on unfrozen bitset")
)

// SizeMismatchError reports bulk operands of different logical size.
type SizeMismatchError struct {
	Left  uint32
	Right uint32
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("bitset: size mismatch: %d != %d", e.Left, e.Right)
}
