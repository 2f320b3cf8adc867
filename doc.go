/*
Package tdigest provides approximate rank and quantile statistics over
unbounded streams of real-valued observations.

A Digest maintains a compact summary of everything it has ingested — a
t-digest, after Ted Dunning's "Computing Extremely Accurate Quantiles Using
t-Digests" — that supports:

  - online ingestion of individual values or batches,
  - lossless merging of independently built digests,
  - quantile, inverse-CDF, interval-probability, and trimmed-mean queries.

Memory is bounded by a configurable centroid budget (Budget), and accuracy
is deliberately biased toward the distribution's tails: a scale function
(package scale) stretches the quantile axis near q=0 and q=1 so that the
compaction engine (package engine) keeps many small centroids at the
extremes and few, large ones near the median.

# Concurrency

A Digest is a mutable value owned exclusively by its constructor until
handed off or shared read-only. Read-only queries (Quantile, CDF, Mean, and
friends) are reentrant and safe to call concurrently from multiple
goroutines provided no writer (Update, BatchUpdate, Merge, MergeInplace,
Compress) is active concurrently. The package does no internal locking;
callers sharing a Digest across goroutines must synchronize externally.

# Serialization

ToDict/FromDict implement the wire contract: a max_centroids budget plus a
flat list of (mean, weight) pairs. Reconstructing from that list is lossy —
FromDict recomputes min/max/sum/count from the centroids themselves, so
Mean() on a reconstructed digest is an estimate unless every centroid
happens to be a singleton. This mirrors ingestion-time exactness being
unrecoverable once observations have been folded into weighted centroids.
*/
package tdigest

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer, following the package-level tracing
// hook style used throughout this module's lineage: mutating operations
// call T().Debugf/T().Errorf around the work they do, and callers who want
// diagnostics wire up gtrace.CoreTracer (see the schuko/tracing package)
// before using the digest.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
