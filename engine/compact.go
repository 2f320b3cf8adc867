// Package engine implements the t-digest compaction algorithm: folding any
// number of source centroid lists (an existing digest's centroids, foreign
// centroids from a merge, or singleton batches from raw observations) into a
// single centroid sequence honoring a scale-function-bounded size budget.
//
// This is deliberately a pure, allocation-light function over
// []centroid.Centroid rather than a method on any digest type: it knows
// nothing about Digest, exact aggregates, or errors — callers own
// validating their inputs and wiring the result back into a store.
package engine

import (
	"sort"

	"github.com/hpillai/tdigest/centroid"
	"github.com/hpillai/tdigest/scale"
)

// Compact merges the given source centroid lists into a single sequence.
//
// When bounded is true, delta is the configured max_centroids (as a
// float64), and adjacent clusters are absorbed under fn's scale-bounded size
// predicate at the delta that effectiveDelta derives from it. When bounded
// is false, only centroids whose
// means are bitwise equal are fused (delta and fn are ignored).
//
// minValue and maxValue are the digest's exact running extremes; a source
// centroid at the smallest (respectively largest) mean equal to minValue
// (maxValue) with weight exactly 1 is protected from absorption, so it
// survives compaction as its own singleton centroid.
func Compact(sources [][]centroid.Centroid, bounded bool, delta float64, fn scale.Func, minValue, maxValue float64) []centroid.Centroid {
	buf := concat(sources)
	sort.SliceStable(buf, func(i, j int) bool { return buf[i].Mean < buf[j].Mean })

	var total float64
	for _, c := range buf {
		total += c.Weight
	}
	if total == 0 {
		return nil
	}

	if !bounded {
		return fuseExactTies(buf)
	}
	return compactBounded(buf, total, delta, fn, minValue, maxValue)
}

func concat(sources [][]centroid.Centroid) []centroid.Centroid {
	n := 0
	for _, src := range sources {
		n += len(src)
	}
	buf := make([]centroid.Centroid, 0, n)
	for _, src := range sources {
		buf = append(buf, src...)
	}
	return buf
}

func compactBounded(buf []centroid.Centroid, total, budget float64, fn scale.Func, minValue, maxValue float64) []centroid.Centroid {
	n := len(buf)
	out := make([]centroid.Centroid, 0, n)

	firstProtected := buf[0].Mean == minValue && buf[0].Weight == 1
	lastProtected := buf[n-1].Mean == maxValue && buf[n-1].Weight == 1
	delta := effectiveDelta(budget, firstProtected, lastProtected, fn)

	pending := buf[0]
	pendingIsUntouchedFirst := true
	emitted := 0.0

	for i := 1; i < n; i++ {
		cand := buf[i]

		qHi := (emitted + pending.Weight + cand.Weight) / total
		qLo := emitted / total

		pendingProtected := pendingIsUntouchedFirst && firstProtected
		candProtected := i == n-1 && lastProtected

		if !pendingProtected && !candProtected && scale.CanMerge(qLo, qHi, delta, fn, true) {
			pending = absorb(pending, cand)
			pendingIsUntouchedFirst = false
			continue
		}

		out = append(out, pending)
		emitted += pending.Weight
		pending = cand
		pendingIsUntouchedFirst = false
	}
	out = append(out, pending)
	return out
}

// effectiveDelta derives fn's delta argument from the public max_centroids
// budget.
//
// The two protected singleton endpoints (when present) each occupy a
// centroid slot without ever competing for one under the scale-bound
// predicate, so budget must be corrected by the count of protected
// endpoints before it is handed to the scale function — otherwise a
// digest with, say, max_centroids=3 and two protected extremes would
// have only the same k-range available to it as a digest with no
// protected extremes, and would overshoot the budget by exactly the
// number of protected endpoints.
//
// fn.K(1,1)-fn.K(0,1) is fn's full k-range for a unit delta; since K is
// linear in delta, dividing the corrected budget by that width yields the
// delta under which fn's actual k-range spans exactly the corrected
// budget, regardless of which scale function is in use (K1's range of 0.5
// reduces to the familiar 2*effective; K2's range of 2 instead halves it).
func effectiveDelta(budget float64, firstProtected, lastProtected bool, fn scale.Func) float64 {
	protected := 0.0
	if firstProtected {
		protected++
	}
	if lastProtected {
		protected++
	}
	effective := budget - protected
	if effective < 1 {
		effective = 1
	}
	width := fn.K(1, 1) - fn.K(0, 1)
	if width <= 0 {
		width = 1
	}
	return effective / width
}

// absorb combines two clusters using the incremental weighted-mean update,
// which is numerically stable for repeated accumulation (spec: bounds
// accumulated error to O(n*eps) rather than O(n^2*eps)).
func absorb(pending, cand centroid.Centroid) centroid.Centroid {
	newWeight := pending.Weight + cand.Weight
	newMean := pending.Mean + (cand.Weight/newWeight)*(cand.Mean-pending.Mean)
	return centroid.Centroid{Mean: newMean, Weight: newWeight}
}

// fuseExactTies fuses only centroids whose means are bitwise equal, used
// when the digest carries no compaction budget. No interpolation loss
// occurs: fused means are unchanged, only weights sum.
func fuseExactTies(buf []centroid.Centroid) []centroid.Centroid {
	if len(buf) == 0 {
		return nil
	}
	out := make([]centroid.Centroid, 0, len(buf))
	pending := buf[0]
	for i := 1; i < len(buf); i++ {
		cand := buf[i]
		if cand.Mean == pending.Mean {
			pending.Weight += cand.Weight
			continue
		}
		out = append(out, pending)
		pending = cand
	}
	out = append(out, pending)
	return out
}
