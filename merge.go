package tdigest

import (
	"fmt"
	"math"

	"github.com/hpillai/tdigest/centroid"
	"github.com/hpillai/tdigest/engine"
)

// Merge combines d and other into a new digest. The result's budget is the
// larger of the two, with unbounded dominating any integer (see Budget's
// combine rule); exact aggregates are combined exactly; the centroid lists
// are unioned and recompressed once under the new budget. Neither d nor
// other is modified. Returns ErrTypeMismatch if other is nil.
func (d *Digest) Merge(other *Digest) (*Digest, error) {
	if other == nil {
		return nil, fmt.Errorf("%w: merge target is nil", ErrTypeMismatch)
	}
	T().Debugf("tdigest: merge of digests with %d and %d centroids", d.NCentroids(), other.NCentroids())
	budget := combine(d.budget, other.budget)
	result := mergeInto(d, other, budget)
	return result, nil
}

// MergeInplace folds other's contribution into d, replacing d's centroid
// list and aggregates. d's own max_centroids setting is unchanged. other is
// only read, never mutated or retained. Returns ErrTypeMismatch, leaving d
// unchanged, if other is nil.
func (d *Digest) MergeInplace(other *Digest) error {
	if other == nil {
		return fmt.Errorf("%w: merge target is nil", ErrTypeMismatch)
	}
	T().Debugf("tdigest: merge_inplace of %d centroids into %d", other.NCentroids(), d.NCentroids())
	merged := mergeInto(d, other, d.budget)
	*d = *merged
	return nil
}

// mergeInto builds the combined digest under the given budget, sharing the
// aggregate-combination and compaction logic between Merge and
// MergeInplace.
func mergeInto(a, b *Digest, budget Budget) *Digest {
	total := a.total + b.total
	sum := a.sum + b.sum

	var min, max float64
	switch {
	case a.total == 0:
		min, max = b.min, b.max
	case b.total == 0:
		min, max = a.min, a.max
	default:
		min = math.Min(a.min, b.min)
		max = math.Max(a.max, b.max)
	}

	sources := [][]centroid.Centroid{a.store.Slice(), b.store.Slice()}
	out := engine.Compact(sources, budget.IsBounded(), float64(budget.Limit()), a.scaleFn, min, max)

	return &Digest{
		store:   centroid.NewStore(out),
		total:   total,
		sum:     sum,
		min:     min,
		max:     max,
		budget:  budget,
		scaleFn: a.scaleFn,
	}
}

// MergeAll folds every digest in ds into a single new digest via one
// batched compaction pass over the concatenation of all their centroid
// lists, rather than a chain of pairwise merges. Unless overridden by
// WithMaxCentroids/WithUnbounded in opts, the combined budget follows the
// same "unbounded dominates the largest integer" rule as Merge, taken over
// every digest in ds. An empty ds yields an empty digest carrying the
// resolved (or default-unbounded, if ds is empty and opts supplies none)
// budget. Returns ErrTypeMismatch if any entry of ds is nil.
func MergeAll(ds []*Digest, opts ...Option) (*Digest, error) {
	T().Debugf("tdigest: merge_all of %d digests", len(ds))
	for i, d := range ds {
		if d == nil {
			return nil, fmt.Errorf("%w: digest %d is nil", ErrTypeMismatch, i)
		}
	}
	if len(ds) == 0 {
		cfg := config{budget: Unbounded(), scaleFn: defaultConfig().scaleFn}
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

	resolved := ds[0].budget
	for _, d := range ds[1:] {
		resolved = combine(resolved, d.budget)
	}
	cfg := config{budget: resolved, scaleFn: ds[0].scaleFn}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	resolved = cfg.budget

	var total, sum float64
	var min, max float64
	haveExtremes := false
	sources := make([][]centroid.Centroid, 0, len(ds))
	for _, d := range ds {
		total += d.total
		sum += d.sum
		sources = append(sources, d.store.Slice())
		if d.total == 0 {
			continue
		}
		if !haveExtremes {
			min, max = d.min, d.max
			haveExtremes = true
			continue
		}
		min = math.Min(min, d.min)
		max = math.Max(max, d.max)
	}

	fn := cfg.scaleFn
	out := engine.Compact(sources, resolved.IsBounded(), float64(resolved.Limit()), fn, min, max)

	return &Digest{
		store:   centroid.NewStore(out),
		total:   total,
		sum:     sum,
		min:     min,
		max:     max,
		budget:  resolved,
		scaleFn: fn,
	}, nil
}
