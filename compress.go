package tdigest

import (
	"github.com/hpillai/tdigest/centroid"
	"github.com/hpillai/tdigest/engine"
)

// Compress forces a compression pass at a temporary budget of
// max(k, min(n_values, 3)), then restores the digest's previously
// configured max_centroids. The floor of 3 guarantees quantile
// interpolation always has at least three anchor points once there is any
// meaningful amount of data, even when the caller asks for a smaller k.
func (d *Digest) Compress(k uint32) error {
	T().Debugf("tdigest: compress to %d", k)
	floor := d.total
	if floor > 3 {
		floor = 3
	}
	temp := float64(k)
	if temp < floor {
		temp = floor
	}

	out := engine.Compact([][]centroid.Centroid{d.store.Slice()}, true, temp, d.scaleFn, d.min, d.max)
	d.store.Replace(out)
	return nil
}
