package engine

import (
	"fmt"

	"github.com/hpillai/tdigest/centroid"
)

// Check validates the structural invariants a compacted centroid sequence
// must satisfy. It is intentionally strict and is meant for use in tests
// after every mutating digest operation.
func Check(cs []centroid.Centroid, bounded bool, maxCentroids uint32, totalWeight float64) error {
	if bounded && uint32(len(cs)) > maxCentroids {
		return fmt.Errorf("%w: %d centroids exceeds budget %d", ErrInvariant, len(cs), maxCentroids)
	}
	var sum float64
	for i, c := range cs {
		if c.Weight <= 0 {
			return fmt.Errorf("%w: centroid %d has non-positive weight %v", ErrInvariant, i, c.Weight)
		}
		if i > 0 && cs[i-1].Mean > c.Mean {
			return fmt.Errorf("%w: centroid %d mean %v precedes centroid %d mean %v",
				ErrInvariant, i-1, cs[i-1].Mean, i, c.Mean)
		}
		sum += c.Weight
	}
	if diff := sum - totalWeight; diff > 1e-6*totalWeight || diff < -1e-6*totalWeight {
		return fmt.Errorf("%w: centroid weights sum to %v, want %v", ErrInvariant, sum, totalWeight)
	}
	return nil
}
