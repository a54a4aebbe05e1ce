// File: knn.go
// Role: k-nearest-neighbors, the bounded top-K stackless traversal.
package query

import (
	"github.com/katalvlaran/kdtree/candidate"
	"github.com/katalvlaran/kdtree/point"
	"github.com/katalvlaran/kdtree/tree"
)

// KNN walks points, pushing every point within the current admission
// radius into list, and returns the final MaxRadiusSqr: the squared
// distance of the K-th neighbor if K were found within list's initial
// radius, otherwise that initial squared radius unchanged. If points is
// empty, list is left untouched.
//
// Concurrency: read-only over points; safe to call concurrently from many
// goroutines against the same built array, each with its own list and q.
func KNN[S point.Scalar](list candidate.List[S], q point.Point[S], points []point.Point[S], dims int) S {
	maxRadiusSqr := list.MaxRadiusSqr()

	n := len(points)
	if n == 0 {
		return maxRadiusSqr
	}

	prev, curr := -1, 0
	for {
		parent := (curr+1)/2 - 1
		if curr >= n {
			// Phantom child: bounce straight back to the parent.
			prev, curr = curr, parent
			continue
		}

		child := tree.LeftChild(curr)
		fromChild := prev >= child
		if !fromChild {
			distSqr := point.SqrDistance(q, points[curr], dims)
			if distSqr <= maxRadiusSqr {
				list.Push(distSqr, curr)
				maxRadiusSqr = list.MaxRadiusSqr()
			}
		}

		d := tree.Level(curr) % dims
		delta := q.Coord(d) - points[curr].Coord(d)
		side := 0
		if delta > 0 {
			side = 1
		}
		closeChild := tree.LeftChild(curr) + side
		farChild := tree.RightChild(curr) - side

		var next int
		switch prev {
		case closeChild:
			if farChild < n && delta*delta <= maxRadiusSqr {
				next = farChild
			} else {
				next = parent
			}
		case farChild:
			next = parent
		default:
			if child < n {
				next = closeChild
			} else {
				next = parent
			}
		}

		if next == -1 {
			return maxRadiusSqr
		}
		prev, curr = curr, next
	}
}
