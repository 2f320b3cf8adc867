package tdigest

import "fmt"

// Budget models the max_centroids configuration knob: either a hard cap on
// the number of centroids a digest may retain, or no cap at all. It is a
// tagged variant rather than a bare uint32 so that "unbounded" is
// representable without a sentinel magic number.
type Budget struct {
	bounded bool
	limit   uint32
}

// minBoundedCentroids is the smallest configurable bounded budget. A digest
// must be able to hold its two protected endpoint singletons plus at least
// one interior cluster; anything smaller cannot honor its own cap once both
// extremes are distinct values (see engine.Compact's endpoint protection).
const minBoundedCentroids = 3

// Bounded returns a Budget capping the digest at n centroids. Bounded
// itself stores n verbatim; callers that hand a Budget to New, FromValues,
// or SetMaxCentroids get ErrDomain back if n is below minBoundedCentroids.
func Bounded(n uint32) Budget {
	return Budget{bounded: true, limit: n}
}

// validate rejects a bounded budget too small to ever hold both protected
// endpoints and an interior cluster at once.
func (b Budget) validate() error {
	if b.bounded && b.limit < minBoundedCentroids {
		return fmt.Errorf("%w: bounded budget of %d is below the minimum of %d", ErrDomain, b.limit, minBoundedCentroids)
	}
	return nil
}

// Unbounded returns a Budget that never triggers compaction on size alone;
// only exact-tie fusion happens.
func Unbounded() Budget {
	return Budget{bounded: false}
}

// IsBounded reports whether b caps the centroid count.
func (b Budget) IsBounded() bool {
	return b.bounded
}

// Limit returns the configured cap. It is meaningless when IsBounded is
// false.
func (b Budget) Limit() uint32 {
	return b.limit
}

func (b Budget) String() string {
	if !b.bounded {
		return "unbounded"
	}
	return fmt.Sprintf("bounded(%d)", b.limit)
}

// combine implements the "unbounded dominates" rule used by Merge and
// MergeAll: if either side carries no cap, the result carries none either;
// otherwise the result is capped at the larger of the two limits, since a
// merge should never become less accurate than either of its inputs by
// virtue only of merging.
func combine(a, b Budget) Budget {
	if !a.bounded || !b.bounded {
		return Unbounded()
	}
	if a.limit >= b.limit {
		return a
	}
	return b
}
