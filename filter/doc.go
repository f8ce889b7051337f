// Package filter is the consumer side of an exclusion mask: it decides which
// candidate ids a search visits.
//
// The convention is that a set bit means "excluded". A null or empty view
// excludes nothing:
//
//	f := filter.Exclude(tracker.Snapshot())
//	err := filter.Scan(ctx, numRows, f, func(id uint32) bool {
//	    // score candidate id
//	    return true
//	})
package filter
