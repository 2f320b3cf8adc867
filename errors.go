package tdigest

import "errors"

// ErrDomain is returned when a value or query argument falls outside the
// domain the operation accepts (a NaN observation, a quantile or
// probability outside [0,1]). Infinite observations are accepted.
var ErrDomain = errors.New("tdigest: value outside allowed domain")

// ErrEmptyDigest is returned by queries that are undefined on a digest that
// has ingested no observations (Min, Max, Mean, Quantile, CDF, and so on).
var ErrEmptyDigest = errors.New("tdigest: digest is empty")

// ErrTypeMismatch is returned by Merge, MergeInplace, and MergeAll when a
// merge operand is nil or otherwise not a usable digest.
var ErrTypeMismatch = errors.New("tdigest: incompatible digest configuration")

// ErrMalformedInput is returned by FromDict when the wire representation is
// missing required fields or carries a non-positive centroid weight.
var ErrMalformedInput = errors.New("tdigest: malformed serialized digest")
