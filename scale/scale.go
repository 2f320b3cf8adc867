// Package scale provides the monotone scale functions used to bound
// centroid granularity as a function of position within a t-digest.
//
// A scale function stretches the quantile axis near q=0 and q=1 so that the
// compaction engine keeps more, smaller centroids in the tails and fewer,
// larger centroids near the median. Two families are offered; both satisfy
// the contract documented on Func.
package scale

import "math"

// Func maps a cumulative quantile position q in [0,1] and a compression
// parameter delta to a bounded index space k(q, delta).
//
// Implementations must be strictly increasing in q on [0,1], continuous,
// symmetric about q=0.5 (k(q,d) - k(0.5,d) == k(0.5,d) - k(1-q,d)), and
// satisfy k(0,d)=0 and k(1,d)=delta (or constants yielding equivalent budget
// arithmetic).
type Func interface {
	K(q, delta float64) float64
	Name() string
}

// K1 is the canonical arcsin-family scale function:
// k(q, delta) = (delta / (2*pi)) * asin(2q - 1).
type K1 struct{}

// K returns the scale value for quantile position q under budget delta.
func (K1) K(q, delta float64) float64 {
	return (delta / (2 * math.Pi)) * math.Asin(2*q-1)
}

// Name identifies the scale function for diagnostics and doc references.
func (K1) Name() string { return "k1" }

// K2 is a log-family scale function, offered as an equivalent monotone
// alternative to K1 per the scale-function choice left open by the digest's
// accuracy contract: k(q, delta) = delta * sign(q-0.5) * log(1 + 2*n*|q-0.5|)
// / log(1 + n), where n is a fixed steepness constant chosen so K2 matches
// K1's tail emphasis reasonably closely.
type K2 struct{}

const k2Steepness = 20.0

// K returns the scale value for quantile position q under budget delta.
func (K2) K(q, delta float64) float64 {
	d := q - 0.5
	sign := 1.0
	if d < 0 {
		sign = -1.0
		d = -d
	}
	return delta * sign * math.Log1p(2*k2Steepness*d) / math.Log1p(k2Steepness)
}

// Name identifies the scale function for diagnostics and doc references.
func (K2) Name() string { return "k2" }

// Default is the scale function used when a Digest is not configured with
// an explicit one.
func Default() Func { return K1{} }

// CanMerge reports whether two adjacent clusters whose combined extent runs
// from cumulative weight position qLo to qHi (both fractions of total
// weight, qLo <= qHi) may be combined under budget delta.
//
// When bounded is false (the digest's max_centroids is "unbounded"), the
// predicate is always false: no scale-bounded merging occurs, matching the
// unbounded-budget contract.
//
// Ties are resolved in favor of merging (<=, not <): this keeps centroid
// counts monotone-non-increasing under repeated compaction with the same
// budget.
func CanMerge(qLo, qHi, delta float64, fn Func, bounded bool) bool {
	if !bounded {
		return false
	}
	return fn.K(qHi, delta)-fn.K(qLo, delta) <= 1
}
