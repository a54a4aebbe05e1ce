// File: build.go
// Role: in-place left-balanced k-d tree construction.
// Determinism:
//   - Ties on the splitting coordinate keep the current order of the
//     working copy (sort.SliceStable), so Build is deterministic for a given
//     input order. When no two points share a value on a split dimension,
//     the result depends only on the set of points, so running Build again
//     on an already-built array reproduces the same array; with such ties,
//     the tied points can come out in a different arrangement.
package tree

import (
	"sort"

	"github.com/katalvlaran/kdtree/point"
)

// Build rearranges points[0:N) in place so it satisfies both the
// left-balanced layout invariant and the k-d invariant, splitting
// on dimension level(i) % dims at every node i. It is a no-op for N==0 and
// leaves a single point untouched for N==1.
//
// Build allocates one working copy of points for sorting scratch and
// releases it before returning; points itself receives the final
// implicit-array tree order.
//
// Complexity: O(N log^2 N) time (a full sort at every level across all
// subtrees at that level), O(N) extra memory.
func Build[S point.Scalar](points []point.Point[S], dims int) error {
	if dims < 1 {
		return ErrDimsNonPositive
	}

	n := len(points)
	if n <= 1 {
		return nil
	}

	if err := checkCoordLengths(points, dims); err != nil {
		return err
	}

	working := make([]point.Point[S], n)
	copy(working, points)

	place(points, working, dims, 0, 0, 0, n)

	return nil
}

// place fills the subtree rooted at implicit-array index tgt, drawing its
// points from working[begin:end), writing the chosen pivot into dst[tgt]
// and recursing on the left and right slot ranges.
func place[S point.Scalar](dst, working []point.Point[S], dims, tgt, level, begin, end int) {
	n := len(dst)
	if tgt >= n {
		return
	}

	if end-begin == 1 {
		dst[tgt] = working[begin]
		return
	}

	d := level % dims
	segment := working[begin:end]
	sort.SliceStable(segment, func(i, j int) bool {
		return segment[i].Coord(d) < segment[j].Coord(d)
	})

	pivot := begin + SubtreeSize(LeftChild(tgt), n)
	dst[tgt] = working[pivot]

	place(dst, working, dims, LeftChild(tgt), level+1, begin, pivot)
	place(dst, working, dims, RightChild(tgt), level+1, pivot+1, end)
}

// checkCoordLengths reports ErrShortPoint if any point has fewer than dims
// coordinates, so a malformed array fails fast with a sentinel error
// instead of panicking deep inside place's recursion.
func checkCoordLengths[S point.Scalar](points []point.Point[S], dims int) error {
	for i := range points {
		if len(points[i].Coords) < dims {
			return ErrShortPoint
		}
	}

	return nil
}
