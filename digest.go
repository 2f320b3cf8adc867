package tdigest

import (
	"fmt"
	"math"

	"github.com/hpillai/tdigest/centroid"
	"github.com/hpillai/tdigest/engine"
	"github.com/hpillai/tdigest/scale"
)

// Digest is a compact, mergeable summary of a stream of real-valued
// observations. The zero value is not usable; construct one with New or
// FromValues.
type Digest struct {
	store   centroid.Store
	total   float64
	sum     float64
	min     float64
	max     float64
	budget  Budget
	scaleFn scale.Func
}

// New creates an empty digest, defaulting to a max_centroids budget of 100
// and the K1 scale function. Options override either.
func New(opts ...Option) (*Digest, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Digest{
		store:   centroid.NewStore(nil),
		budget:  cfg.budget,
		scaleFn: cfg.scaleFn,
	}, nil
}

// FromValues constructs a digest and ingests vs in a single compression
// pass.
func FromValues(vs []float64, opts ...Option) (*Digest, error) {
	d, err := New(opts...)
	if err != nil {
		return nil, err
	}
	if err := d.BatchUpdate(vs); err != nil {
		return nil, err
	}
	return d, nil
}

// Update ingests a single value. Equivalent to BatchUpdate([]float64{v}).
func (d *Digest) Update(v float64) error {
	return d.BatchUpdate([]float64{v})
}

// BatchUpdate ingests vs, updating the exact aggregates and running one
// compression pass over the combined centroid set. An empty vs is a no-op.
// If any value is rejected (NaN), the digest is left completely unchanged
// — the exact-aggregate update and the compression pass only run once
// every value has been validated.
func (d *Digest) BatchUpdate(vs []float64) error {
	if len(vs) == 0 {
		return nil
	}
	T().Debugf("tdigest: batch_update of %d values", len(vs))
	for _, v := range vs {
		if math.IsNaN(v) {
			err := fmt.Errorf("%w: NaN value at ingestion", ErrDomain)
			T().Errorf("tdigest: batch_update rejected: %v", err)
			return err
		}
	}

	newTotal := d.total
	newSum := d.sum
	newMin := d.min
	newMax := d.max
	for i, v := range vs {
		newTotal++
		newSum += v
		if d.total == 0 && i == 0 {
			newMin, newMax = v, v
		} else {
			if v < newMin {
				newMin = v
			}
			if v > newMax {
				newMax = v
			}
		}
	}

	incoming := make([]centroid.Centroid, len(vs))
	for i, v := range vs {
		incoming[i] = centroid.Centroid{Mean: v, Weight: 1}
	}

	sources := [][]centroid.Centroid{d.store.Slice(), incoming}
	out := engine.Compact(sources, d.budget.IsBounded(), float64(d.budget.Limit()), d.scaleFn, newMin, newMax)

	d.store.Replace(out)
	d.total = newTotal
	d.sum = newSum
	d.min = newMin
	d.max = newMax
	return nil
}

// MaxCentroids returns the configured budget.
func (d *Digest) MaxCentroids() Budget {
	return d.budget
}

// SetMaxCentroids reconfigures the budget. It does not retroactively
// recompress the current centroid list; call Compress to enforce a
// tightened budget immediately. Returns ErrDomain, leaving d unchanged, if
// b is bounded below the minimum viable budget.
func (d *Digest) SetMaxCentroids(b Budget) error {
	if err := b.validate(); err != nil {
		return err
	}
	d.budget = b
	return nil
}

// NValues returns the exact count of ingested observations.
func (d *Digest) NValues() float64 {
	return d.total
}

// NCentroids returns the number of centroids currently retained.
func (d *Digest) NCentroids() int {
	return d.store.Len()
}

// Len is an alias for NCentroids, so a Digest satisfies the usual
// container-length convention.
func (d *Digest) Len() int {
	return d.NCentroids()
}

// Copy returns a deep, independent copy of d.
func (d *Digest) Copy() *Digest {
	cp := *d
	cp.store = d.store.Clone()
	return &cp
}

// Equal reports whether d and other carry identical centroid lists (exact
// IEEE-754 equality, in order) and the same max_centroids configuration.
func (d *Digest) Equal(other *Digest) bool {
	if other == nil {
		return false
	}
	if d.budget != other.budget {
		return false
	}
	if d.store.Len() != other.store.Len() {
		return false
	}
	equal := true
	d.store.ForEach(func(i int, c centroid.Centroid) bool {
		oc := other.store.At(i)
		if c.Mean != oc.Mean || c.Weight != oc.Weight {
			equal = false
			return false
		}
		return true
	})
	return equal
}
