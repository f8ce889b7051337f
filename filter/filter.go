package filter

import (
	"github.com/hupe1980/vecmask/bitset"
)

// Filter decides whether a candidate id participates in a search.
type Filter interface {
	// Matches reports whether id is accepted.
	Matches(id uint32) bool

	// MatchesBatch writes Matches(ids[i]) into out[i]. len(out) must be >= len(ids).
	MatchesBatch(ids []uint32, out []bool)
}

// Exclusion rejects every id whose bit is set in the underlying view.
type Exclusion struct {
	view bitset.View
}

// Exclude returns a filter that rejects the ids set in v.
//
// Ids at or beyond v.Size() are accepted, and a null view accepts everything.
// If v borrows a live Bitset, mutations of that bitset show through.
func Exclude(v bitset.View) *Exclusion {
	return &Exclusion{view: v}
}

// View returns the exclusion mask.
func (e *Exclusion) View() bitset.View {
	return e.view
}

// Active reports whether the filter can reject anything.
func (e *Exclusion) Active() bool {
	return e.view.Active()
}

func (e *Exclusion) Matches(id uint32) bool {
	return !e.view.Test(id)
}

func (e *Exclusion) MatchesBatch(ids []uint32, out []bool) {
	if !e.view.Active() {
		for i := range ids {
			out[i] = true
		}
		return
	}
	for i, id := range ids {
		out[i] = !e.view.Test(id)
	}
}

// Func adapts a predicate to Filter.
type Func func(id uint32) bool

func (f Func) Matches(id uint32) bool {
	return f(id)
}

func (f Func) MatchesBatch(ids []uint32, out []bool) {
	for i, id := range ids {
		out[i] = f(id)
	}
}

// All returns a filter that accepts every id.
func All() Filter {
	return Exclude(bitset.View{})
}
