package tdigest

import (
	"fmt"
	"math"
	"sort"

	"github.com/hpillai/tdigest/centroid"
)

// WireCentroid is the on-the-wire shape of a single centroid.
type WireCentroid struct {
	Mean   float64 `json:"m"`
	Weight float64 `json:"c"`
}

// Wire is the serialization contract for a Digest: a budget plus a flat,
// not-necessarily-sorted list of centroids. MaxCentroids is a pointer so
// that the JSON field can be omitted or explicit null to mean unbounded.
type Wire struct {
	MaxCentroids *uint32        `json:"max_centroids"`
	Centroids    []WireCentroid `json:"centroids"`
}

// ToDict renders d into its wire representation.
func (d *Digest) ToDict() Wire {
	var w Wire
	if d.budget.IsBounded() {
		limit := d.budget.Limit()
		w.MaxCentroids = &limit
	}
	w.Centroids = make([]WireCentroid, 0, d.store.Len())
	d.store.ForEach(func(_ int, c centroid.Centroid) bool {
		w.Centroids = append(w.Centroids, WireCentroid{Mean: c.Mean, Weight: c.Weight})
		return true
	})
	return w
}

// FromDict reconstructs a Digest from its wire representation.
//
// The reconstruction is lossy by construction: min_value and max_value are
// taken as the smallest and largest centroid means, sum_value as
// Σ(mean*weight), and total_weight as Σweight — the best recoverable
// estimate, per the documented reconstruction quirk. Mean() on the result
// is therefore an estimate unless every centroid happens to be a
// singleton.
func FromDict(w Wire) (*Digest, error) {
	T().Debugf("tdigest: from_dict with %d centroids", len(w.Centroids))
	if w.Centroids == nil {
		err := fmt.Errorf("%w: missing centroids", ErrMalformedInput)
		T().Errorf("tdigest: from_dict rejected: %v", err)
		return nil, err
	}

	cs := make([]centroid.Centroid, len(w.Centroids))
	for i, wc := range w.Centroids {
		if math.IsNaN(wc.Weight) || math.IsInf(wc.Weight, 0) || wc.Weight <= 0 {
			err := fmt.Errorf("%w: centroid %d has non-positive weight %v", ErrMalformedInput, i, wc.Weight)
			T().Errorf("tdigest: from_dict rejected: %v", err)
			return nil, err
		}
		if math.IsNaN(wc.Mean) {
			err := fmt.Errorf("%w: centroid %d has NaN mean", ErrMalformedInput, i)
			T().Errorf("tdigest: from_dict rejected: %v", err)
			return nil, err
		}
		cs[i] = centroid.Centroid{Mean: wc.Mean, Weight: wc.Weight}
	}
	sort.SliceStable(cs, func(i, j int) bool { return cs[i].Mean < cs[j].Mean })

	budget := Unbounded()
	if w.MaxCentroids != nil {
		budget = Bounded(*w.MaxCentroids)
		if err := budget.validate(); err != nil {
			err = fmt.Errorf("%w: max_centroids %d: %v", ErrMalformedInput, *w.MaxCentroids, err)
			T().Errorf("tdigest: from_dict rejected: %v", err)
			return nil, err
		}
	}

	var total, sum float64
	for _, c := range cs {
		total += c.Weight
		sum += c.Mean * c.Weight
	}

	d := &Digest{
		store:   centroid.NewStore(cs),
		total:   total,
		sum:     sum,
		budget:  budget,
		scaleFn: defaultConfig().scaleFn,
	}
	if len(cs) > 0 {
		d.min = cs[0].Mean
		d.max = cs[len(cs)-1].Mean
	}
	return d, nil
}
