// File: fixed.go
// Role: insertion-sorted bounded top-K list.
package candidate

import "github.com/katalvlaran/kdtree/point"

// FixedList holds up to K entries in ascending DistSqr order. Push always
// costs O(K), regardless of whether the new entry is admitted, which makes
// it a good fit for small, compile-time-ish K on a hot query path.
type FixedList[S point.Scalar] struct {
	entries []Entry[S]
}

// NewFixedList returns a FixedList with k slots, all initialized to
// (initialRadius^2, -1).
func NewFixedList[S point.Scalar](k int, initialRadius S) (*FixedList[S], error) {
	if k <= 0 {
		return nil, ErrNonPositiveK
	}

	r2 := initialRadius * initialRadius
	entries := make([]Entry[S], k)
	for i := range entries {
		entries[i] = Entry[S]{DistSqr: r2, ID: -1}
	}

	return &FixedList[S]{entries: entries}, nil
}

// Push performs a single pairwise min/max sweep across all K slots: at each
// slot, the smaller of (running candidate, resident entry) stays resident
// and the larger becomes the new running candidate. This both inserts v in
// sorted position and evicts the previous largest entry in one O(K) pass.
func (f *FixedList[S]) Push(distSqr S, id int) {
	v := Entry[S]{DistSqr: distSqr, ID: id}
	for i := range f.entries {
		if less(v, f.entries[i]) {
			v, f.entries[i] = f.entries[i], v
		}
	}
}

// MaxRadiusSqr returns the last slot's DistSqr, the current admission
// threshold.
func (f *FixedList[S]) MaxRadiusSqr() S {
	return f.entries[len(f.entries)-1].DistSqr
}

// Entries returns the backing slice, already in ascending DistSqr order.
func (f *FixedList[S]) Entries() []Entry[S] {
	return f.entries
}
