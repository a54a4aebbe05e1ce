package tree

import "errors"

// Sentinel errors for tree construction and validation.
var (
	// ErrNegativeSize indicates a negative point count. Build and Check
	// take a slice and never return it; cmd/kdbench returns it for a
	// negative point-count argument.
	ErrNegativeSize = errors.New("tree: point count must be non-negative")

	// ErrDimsNonPositive indicates dims < 1; every point needs at least one coordinate.
	ErrDimsNonPositive = errors.New("tree: dims must be at least 1")

	// ErrShortPoint indicates a point does not carry enough coordinates
	// for the requested dims.
	ErrShortPoint = errors.New("tree: point has fewer coordinates than dims")

	// ErrKDInvariantViolated is returned by Check when some node's
	// subtree contains a coordinate on the wrong side of the node's
	// splitting plane (the "k-d invariant").
	ErrKDInvariantViolated = errors.New("tree: k-d invariant violated")
)
