package tdigest

import (
	"fmt"
	"math"

	"github.com/hpillai/tdigest/centroid"
)

// midpoint returns the cumulative-weight midpoint of centroid i: the
// weight below it plus half its own weight, per the cumulative-position
// definition every query in this file interpolates against.
func midpoint(s centroid.Store, i int) float64 {
	return s.PrefixWeight(i) + s.At(i).Weight/2
}

// Quantile returns an estimate of the value at cumulative probability q.
func (d *Digest) Quantile(q float64) (float64, error) {
	if math.IsNaN(q) || q < 0 || q > 1 {
		return 0, fmt.Errorf("%w: quantile %v not in [0,1]", ErrDomain, q)
	}
	if d.total == 0 {
		return 0, fmt.Errorf("%w: quantile on empty digest", ErrEmptyDigest)
	}
	if q == 0 {
		return d.min, nil
	}
	if q == 1 {
		return d.max, nil
	}

	n := d.store.Len()
	target := q * d.total

	if n == 1 {
		return d.store.At(0).Mean, nil
	}

	firstMid := midpoint(d.store, 0)
	lastMid := midpoint(d.store, n-1)

	if target <= firstMid {
		return interpolate(0, d.min, firstMid, d.store.At(0).Mean, target), nil
	}
	if target >= lastMid {
		return interpolate(lastMid, d.store.At(n-1).Mean, d.total, d.max, target), nil
	}

	lo, hi := bracket(d.store, target)
	mLo, mHi := midpoint(d.store, lo), midpoint(d.store, hi)
	if mLo == mHi {
		return d.store.At(lo).Mean, nil
	}
	return interpolate(mLo, d.store.At(lo).Mean, mHi, d.store.At(hi).Mean, target), nil
}

// bracket finds adjacent centroid indices (lo, hi = lo+1) whose midpoints
// bracket target, via binary search over prefix weight.
func bracket(s centroid.Store, target float64) (int, int) {
	n := s.Len()
	lo, hi := 0, n-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if midpoint(s, mid) <= target {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo, hi
}

// interpolate linearly interpolates y at position x between (x0,y0) and
// (x1,y1), returning y0 when the interval collapses to a point (singleton
// endpoint protection: never divide by zero).
func interpolate(x0, y0, x1, y1, x float64) float64 {
	if x1 == x0 {
		return y0
	}
	frac := (x - x0) / (x1 - x0)
	return y0 + frac*(y1-y0)
}

// Percentile is Quantile(p/100).
func (d *Digest) Percentile(p float64) (float64, error) {
	return d.Quantile(p / 100)
}

// Median is Quantile(0.5).
func (d *Digest) Median() (float64, error) {
	return d.Quantile(0.5)
}

// IQR returns Quantile(0.75) - Quantile(0.25).
func (d *Digest) IQR() (float64, error) {
	q75, err := d.Quantile(0.75)
	if err != nil {
		return 0, err
	}
	q25, err := d.Quantile(0.25)
	if err != nil {
		return 0, err
	}
	return q75 - q25, nil
}

// Min returns the exact minimum ingested value.
func (d *Digest) Min() (float64, error) {
	if d.total == 0 {
		return 0, fmt.Errorf("%w: min on empty digest", ErrEmptyDigest)
	}
	return d.min, nil
}

// Max returns the exact maximum ingested value.
func (d *Digest) Max() (float64, error) {
	if d.total == 0 {
		return 0, fmt.Errorf("%w: max on empty digest", ErrEmptyDigest)
	}
	return d.max, nil
}

// CDF returns an estimate of P(X <= x).
func (d *Digest) CDF(x float64) (float64, error) {
	if d.total == 0 {
		return 0, fmt.Errorf("%w: cdf on empty digest", ErrEmptyDigest)
	}
	if x <= d.min {
		return 0, nil
	}
	if x >= d.max {
		return 1, nil
	}

	n := d.store.Len()
	if n == 1 {
		return 0.5, nil
	}

	firstMean := d.store.At(0).Mean
	lastMean := d.store.At(n - 1).Mean
	firstMid := midpoint(d.store, 0)
	lastMid := midpoint(d.store, n-1)

	if x <= firstMean {
		return interpolate(d.min, 0, firstMean, firstMid, x) / d.total, nil
	}
	if x >= lastMean {
		return interpolate(lastMean, lastMid, d.max, d.total, x) / d.total, nil
	}

	lo, hi := bracketByMean(d.store, x)
	mLo, mHi := d.store.At(lo).Mean, d.store.At(hi).Mean
	wLo, wHi := midpoint(d.store, lo), midpoint(d.store, hi)
	if mLo == mHi {
		return wLo / d.total, nil
	}
	return interpolate(mLo, wLo, mHi, wHi, x) / d.total, nil
}

func bracketByMean(s centroid.Store, x float64) (int, int) {
	n := s.Len()
	lo, hi := 0, n-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if s.At(mid).Mean <= x {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo, hi
}

// Probability returns CDF(x2) - CDF(x1). No ordering is required between
// x1 and x2; a negative result signals x2 < x1.
func (d *Digest) Probability(x1, x2 float64) (float64, error) {
	c1, err := d.CDF(x1)
	if err != nil {
		return 0, err
	}
	c2, err := d.CDF(x2)
	if err != nil {
		return 0, err
	}
	return c2 - c1, nil
}

// Mean returns the exact arithmetic mean of all ingested values.
func (d *Digest) Mean() (float64, error) {
	if d.total == 0 {
		return 0, fmt.Errorf("%w: mean on empty digest", ErrEmptyDigest)
	}
	return d.sum / d.total, nil
}

// TrimmedMean approximates the mean of observations whose rank lies in
// [q1, q2]: each centroid contributes its mean times the part of its
// cumulative-weight interval that overlaps [q1*W, q2*W], and the sum is
// divided by the covered weight. Centroids are treated as constant over
// their interval; there is no interpolation between neighboring means.
func (d *Digest) TrimmedMean(q1, q2 float64) (float64, error) {
	if math.IsNaN(q1) || math.IsNaN(q2) || q1 < 0 || q2 > 1 || q1 >= q2 {
		return 0, fmt.Errorf("%w: trimmed_mean requires 0<=q1<q2<=1, got %v,%v", ErrDomain, q1, q2)
	}
	if d.total == 0 {
		return 0, fmt.Errorf("%w: trimmed_mean on empty digest", ErrEmptyDigest)
	}

	lo := q1 * d.total
	hi := q2 * d.total

	var weightedSum, coveredWeight float64
	cursor := 0.0
	d.store.ForEach(func(i int, c centroid.Centroid) bool {
		lowEdge := cursor
		highEdge := cursor + c.Weight
		cursor = highEdge

		overlap := math.Min(highEdge, hi) - math.Max(lowEdge, lo)
		if overlap > 0 {
			weightedSum += overlap * c.Mean
			coveredWeight += overlap
		}
		return true
	})

	if coveredWeight == 0 {
		return d.sum / d.total, nil
	}
	return weightedSum / coveredWeight, nil
}
