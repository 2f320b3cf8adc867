package tdigest

import (
	"fmt"

	"github.com/hpillai/tdigest/scale"
)

// config collects the values Option functions fill in before New validates
// and freezes them into a Digest.
type config struct {
	budget  Budget
	scaleFn scale.Func
}

func defaultConfig() config {
	return config{
		budget:  Bounded(100),
		scaleFn: scale.Default(),
	}
}

func (c config) validate() error {
	if c.scaleFn == nil {
		return fmt.Errorf("%w: scale function is required", ErrDomain)
	}
	return c.budget.validate()
}

// Option configures a Digest at construction time.
type Option func(*config)

// WithMaxCentroids caps the digest at n centroids.
func WithMaxCentroids(n uint32) Option {
	return func(c *config) {
		c.budget = Bounded(n)
	}
}

// WithUnbounded removes the centroid cap; the digest degrades toward exact
// storage as more distinct values arrive.
func WithUnbounded() Option {
	return func(c *config) {
		c.budget = Unbounded()
	}
}

// WithScaleFunc selects the scale function governing how aggressively
// centroids near the median are merged relative to the tails. Defaults to
// scale.K1.
func WithScaleFunc(fn scale.Func) Option {
	return func(c *config) {
		c.scaleFn = fn
	}
}
