// File: heap.go
// Role: max-heap bounded top-K list.
package candidate

import "github.com/katalvlaran/kdtree/point"

// HeapList holds up to K entries as a max-heap keyed by DistSqr, so the
// root (index 0) is always the current worst admitted candidate. Push is
// O(log K): a no-op if the new entry doesn't beat the root, otherwise a
// sift-down that replaces the root and settles the new entry into place.
type HeapList[S point.Scalar] struct {
	entries []Entry[S]
}

// NewHeapList returns a HeapList with k slots, all initialized to
// (initialRadius^2, -1); any permutation of equal keys is a valid max-heap.
func NewHeapList[S point.Scalar](k int, initialRadius S) (*HeapList[S], error) {
	if k <= 0 {
		return nil, ErrNonPositiveK
	}

	r2 := initialRadius * initialRadius
	entries := make([]Entry[S], k)
	for i := range entries {
		entries[i] = Entry[S]{DistSqr: r2, ID: -1}
	}

	return &HeapList[S]{entries: entries}, nil
}

// Push admits (distSqr, id) if it beats the current root (the worst
// admitted candidate), sifting the new entry down against the larger of
// each pair of children until it finds its resting place.
func (h *HeapList[S]) Push(distSqr S, id int) {
	e := Entry[S]{DistSqr: distSqr, ID: id}
	k := len(h.entries)
	if !less(e, h.entries[0]) {
		return
	}

	pos := 0
	for {
		firstChild := 2*pos + 1
		largestChild := k // sentinel: no child
		var largestValue Entry[S]
		if firstChild < k {
			largestChild = firstChild
			largestValue = h.entries[firstChild]
		}

		secondChild := firstChild + 1
		if secondChild < k && less(largestValue, h.entries[secondChild]) {
			largestChild = secondChild
			largestValue = h.entries[secondChild]
		}

		if largestChild == k || less(largestValue, e) {
			h.entries[pos] = e
			break
		}

		h.entries[pos] = largestValue
		pos = largestChild
	}
}

// MaxRadiusSqr returns the root's DistSqr, the current admission threshold.
func (h *HeapList[S]) MaxRadiusSqr() S {
	return h.entries[0].DistSqr
}

// Entries returns the backing slice in max-heap order (entries[0] is the
// worst admitted candidate, not the best).
func (h *HeapList[S]) Entries() []Entry[S] {
	return h.entries
}
