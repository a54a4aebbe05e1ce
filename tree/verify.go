// File: verify.go
// Role: recursive correctness check for a built tree.
// Scope:
//   - This is the one place in the package that recurses; it exists for
//     tests and for validating externally-constructed arrays, never on a
//     query hot path.
package tree

import (
	"strconv"

	"github.com/katalvlaran/kdtree/point"
)

// Check walks points as an implicit left-balanced k-d tree and verifies the
// k-d invariant at every internal node: every node in node i's left subtree
// has coordinate-d <= points[i].Coord(d), and every node in the right
// subtree has coordinate-d >= points[i].Coord(d), where d = Level(i) % dims.
//
// It returns nil if points is a valid k-d tree, or ErrKDInvariantViolated
// wrapped with the offending node/dimension otherwise.
//
// Complexity: O(N log N) total work (each node is visited once per ancestor
// on its root path, and the tree height is O(log N)).
func Check[S point.Scalar](points []point.Point[S], dims int) error {
	if dims < 1 {
		return ErrDimsNonPositive
	}
	if err := checkCoordLengths(points, dims); err != nil {
		return err
	}

	return check(points, dims, 0)
}

func check[S point.Scalar](points []point.Point[S], dims, i int) error {
	n := len(points)
	if i >= n {
		return nil
	}

	d := Level(i) % dims
	v := points[i].Coord(d)

	if !noneAbove(points, dims, LeftChild(i), d, v) {
		return &InvariantError{Node: i, Dim: d, Side: "left"}
	}
	if !noneBelow(points, dims, RightChild(i), d, v) {
		return &InvariantError{Node: i, Dim: d, Side: "right"}
	}

	if err := check(points, dims, LeftChild(i)); err != nil {
		return err
	}

	return check(points, dims, RightChild(i))
}

// noneAbove reports whether every node in the subtree rooted at i has
// coordinate d <= v.
func noneAbove[S point.Scalar](points []point.Point[S], dims, i, d int, v S) bool {
	if i >= len(points) {
		return true
	}

	return points[i].Coord(d) <= v &&
		noneAbove(points, dims, LeftChild(i), d, v) &&
		noneAbove(points, dims, RightChild(i), d, v)
}

// noneBelow reports whether every node in the subtree rooted at i has
// coordinate d >= v.
func noneBelow[S point.Scalar](points []point.Point[S], dims, i, d int, v S) bool {
	if i >= len(points) {
		return true
	}

	return points[i].Coord(d) >= v &&
		noneBelow(points, dims, LeftChild(i), d, v) &&
		noneBelow(points, dims, RightChild(i), d, v)
}

// InvariantError describes which node and dimension violated the k-d
// invariant during Check.
type InvariantError struct {
	Node int
	Dim  int
	Side string // "left" or "right"
}

func (e *InvariantError) Error() string {
	return "tree: " + e.Side + " subtree of node " + strconv.Itoa(e.Node) + " violates dimension " + strconv.Itoa(e.Dim)
}

func (e *InvariantError) Unwrap() error { return ErrKDInvariantViolated }
