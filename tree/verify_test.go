package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kdtree/point"
	"github.com/katalvlaran/kdtree/tree"
)

func TestCheck_ValidTree(t *testing.T) {
	pts := []point.Point[float64]{pt(4, 1), pt(1, 4), pt(2, 2), pt(3, 3)}
	require.NoError(t, tree.Build(pts, 2))
	assert.NoError(t, tree.Check(pts, 2))
}

func TestCheck_DetectsCorruption(t *testing.T) {
	pts := []point.Point[float64]{pt(4, 1), pt(1, 4), pt(2, 2), pt(3, 3)}
	require.NoError(t, tree.Build(pts, 2))

	// Corrupt the tree by swapping two nodes so the split invariant breaks.
	pts[0], pts[1] = pts[1], pts[0]

	err := tree.Check(pts, 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, tree.ErrKDInvariantViolated)
}

func TestCheck_RejectsNonPositiveDims(t *testing.T) {
	pts := []point.Point[float64]{pt(1, 1)}
	assert.ErrorIs(t, tree.Check(pts, 0), tree.ErrDimsNonPositive)
}

func TestCheck_RejectsShortPoint(t *testing.T) {
	pts := []point.Point[float64]{pt(1, 2), {Coords: []float64{1}}}
	assert.ErrorIs(t, tree.Check(pts, 2), tree.ErrShortPoint)
}

func TestCheck_EmptyAndSingleton(t *testing.T) {
	assert.NoError(t, tree.Check([]point.Point[float64]{}, 2))
	assert.NoError(t, tree.Check([]point.Point[float64]{pt(1, 1)}, 2))
}
