package engine

import "errors"

// ErrInvariant signals that a compacted centroid sequence violates a
// structural invariant (sortedness, weight conservation, or the size
// budget). It is only ever produced by Check, which exists for tests.
var ErrInvariant = errors.New("engine: invariant violation")
