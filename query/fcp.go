// File: fcp.go
// Role: find-closest-point, the single-nearest-neighbor stackless traversal.
package query

import (
	"github.com/katalvlaran/kdtree/point"
	"github.com/katalvlaran/kdtree/tree"
)

// FCP returns the index in points of the point closest to q under
// Euclidean distance, restricted to points within maxRadius. It returns
// -1 if points is empty or if maxRadius is finite and no point falls
// inside it. Pass math.Inf(1) for an unbounded search.
//
// Concurrency: read-only over points; safe to call concurrently from many
// goroutines against the same built array, each with its own q.
func FCP[S point.Scalar](q point.Point[S], points []point.Point[S], dims int, maxRadius S) (int, error) {
	if maxRadius < 0 {
		return -1, ErrNegativeRadius
	}

	n := len(points)
	if n == 0 {
		return -1, nil
	}

	bestIdx := -1
	bestDist := maxRadius

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
			dist := point.Distance(q, points[curr], dims)
			if dist < bestDist {
				bestDist = dist
				bestIdx = curr
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
			if farChild < n && absS(delta) < bestDist {
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
			return bestIdx, nil
		}
		prev, curr = curr, next
	}
}

func absS[S point.Scalar](v S) S {
	if v < 0 {
		return -v
	}
	return v
}
