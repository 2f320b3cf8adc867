// Package centroid holds the ordered sequence of weighted means that a
// t-digest compresses observations into.
//
// A Store is deliberately dumb: it knows how to stay sorted, how to report
// cumulative weight, and how to hand its contents to the compaction engine
// and back. It has no notion of quantiles, scale functions, or budgets —
// those live in the tdigest and engine packages, which treat a Store as an
// ordered slice with a monoid (sum of weights) attached.
package centroid

import "sort"

// Centroid is a weighted point summarizing Weight observations near Mean.
//
// A singleton centroid (Weight == 1) may carry an exact ingested sample; the
// compaction engine protects the two extremal singletons so that Min/Max
// stay exact.
type Centroid struct {
	Mean   float64
	Weight float64
}

// Store is an ordered, non-decreasing-by-Mean sequence of centroids.
//
// The zero value is an empty store ready to use.
type Store struct {
	c []Centroid
}

// NewStore wraps an already-sorted slice of centroids without copying it.
// Callers that don't own the slice exclusively should use FromSorted instead.
func NewStore(sorted []Centroid) Store {
	return Store{c: sorted}
}

// FromSorted copies a sorted slice of centroids into a new Store.
func FromSorted(sorted []Centroid) Store {
	cp := make([]Centroid, len(sorted))
	copy(cp, sorted)
	return Store{c: cp}
}

// Len returns the number of centroids in the store.
func (s Store) Len() int { return len(s.c) }

// At returns the i-th centroid. It panics if i is out of range, matching
// slice semantics — callers are expected to guard with Len.
func (s Store) At(i int) Centroid { return s.c[i] }

// ForEach visits every centroid in order. The visitor must not retain the
// Centroid value beyond the call (it is a copy, so retaining is harmless,
// but mutating the store during iteration is not supported).
func (s Store) ForEach(visit func(i int, c Centroid) bool) {
	for i, c := range s.c {
		if !visit(i, c) {
			return
		}
	}
}

// Slice exposes the backing centroids as a read-only slice. Callers must not
// mutate the returned slice.
func (s Store) Slice() []Centroid { return s.c }

// Replace performs the wholesale swap-in used by the compaction engine at
// the end of a compression pass. The slice must already be sorted by Mean.
func (s *Store) Replace(sorted []Centroid) { s.c = sorted }

// Append adds a centroid to the end of the store without checking sort
// order. It exists only to stage centroids before a Sort call — no other
// Store method assumes the sequence is sorted mid-build.
func (s *Store) Append(c Centroid) { s.c = append(s.c, c) }

// Sort restores non-decreasing-by-Mean order using a stable sort, so
// centroids with equal means keep their relative input order (spec:
// "ties keep their input order").
func (s *Store) Sort() {
	sort.SliceStable(s.c, func(i, j int) bool { return s.c[i].Mean < s.c[j].Mean })
}

// Clone returns a deep copy of the store, used by Digest.Copy.
func (s Store) Clone() Store {
	return FromSorted(s.c)
}

// TotalWeight sums the weight of every centroid in the store.
func (s Store) TotalWeight() float64 {
	var total float64
	for _, c := range s.c {
		total += c.Weight
	}
	return total
}

// PrefixWeight returns the cumulative weight of all centroids strictly
// before index i. PrefixWeight(0) is 0; PrefixWeight(Len()) equals
// TotalWeight().
func (s Store) PrefixWeight(i int) float64 {
	var total float64
	for _, c := range s.c[:i] {
		total += c.Weight
	}
	return total
}
