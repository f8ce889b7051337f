package bitset

type options struct {
	fill    byte
	checked bool
}

// Option configures Bitset construction.
type Option func(*options)

// WithFill broadcasts b across every byte of the storage at construction.
// Ignored by FromBytes and the interop constructors.
func WithFill(b byte) Option {
	return func(o *options) {
		o.fill = b
	}
}

// WithChecks enables the regime and size assertions.
//
// A checked bitset panics when Set or Clear hit it while frozen, when a bulk
// operation or Count runs while it is not frozen, and when bulk operands
// differ in size. Each check costs a branch (and an atomic load for the
// regime) per call; unchecked bitsets skip them entirely.
func WithChecks() Option {
	return func(o *options) {
		o.checked = true
	}
}

func applyOptions(optFns []Option) options {
	o := options{}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
