package candidate

import (
	"errors"

	"github.com/katalvlaran/kdtree/point"
)

// ErrNonPositiveK indicates a candidate list was constructed with K <= 0.
var ErrNonPositiveK = errors.New("candidate: K must be positive")

// Entry is one admitted (or placeholder) candidate: a squared distance and
// the index of the point it refers to, or -1 for an unfilled slot.
type Entry[S point.Scalar] struct {
	DistSqr S
	ID      int
}

// List is the shared contract both FixedList and HeapList satisfy. Package
// query's traversal is written against this interface so it works
// identically regardless of which admission strategy the caller picked.
type List[S point.Scalar] interface {
	// Push admits (distSqr, id) if it beats the current worst candidate.
	Push(distSqr S, id int)

	// MaxRadiusSqr returns the current admission threshold: the squared
	// distance of the worst admitted candidate, or the initial squared
	// radius if fewer than K candidates have been admitted yet.
	MaxRadiusSqr() S

	// Entries returns the backing slice of up to K entries. Its order is
	// ascending by DistSqr for FixedList and max-heap order for HeapList;
	// callers that need a sorted result should sort a copy.
	Entries() []Entry[S]
}

// less orders entries by DistSqr first, then by ID — the tie-break rule
// both List implementations use. An unfilled slot (ID -1) sorts after every
// real candidate at the same DistSqr.
func less[S point.Scalar](a, b Entry[S]) bool {
	if a.DistSqr != b.DistSqr {
		return a.DistSqr < b.DistSqr
	}
	if a.ID == -1 || b.ID == -1 {
		return b.ID == -1 && a.ID != -1
	}
	return a.ID < b.ID
}
