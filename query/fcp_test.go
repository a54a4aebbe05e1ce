package query_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kdtree/point"
	"github.com/katalvlaran/kdtree/query"
	"github.com/katalvlaran/kdtree/tree"
)

func pt(coords ...float64) point.Point[float64] {
	return point.Point[float64]{Coords: coords}
}

func TestFCP_RejectsNegativeRadius(t *testing.T) {
	pts := []point.Point[float64]{pt(0, 0)}
	_, err := query.FCP(pt(1, 1), pts, 2, -1)
	assert.ErrorIs(t, err, query.ErrNegativeRadius)
}

func TestFCP_EmptyTree(t *testing.T) {
	idx, err := query.FCP(pt(0, 0), nil, 2, math.Inf(1))
	require.NoError(t, err)
	assert.Equal(t, -1, idx)
}

// S1: singleton tree.
func TestFCP_Singleton(t *testing.T) {
	pts := []point.Point[float64]{pt(1, 2, 3, 4)}
	require.NoError(t, tree.Build(pts, 4))

	idx, err := query.FCP(pt(0, 0, 0, 0), pts, 4, math.Inf(1))
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
}

// S2: tiny 4-point, 2-D tree.
func TestFCP_Tiny4Point(t *testing.T) {
	pts := []point.Point[float64]{pt(4, 1), pt(1, 4), pt(2, 2), pt(3, 3)}
	require.NoError(t, tree.Build(pts, 2))
	require.NoError(t, tree.Check(pts, 2))

	idx, err := query.FCP(pt(2.1, 2.1), pts, 2, math.Inf(1))
	require.NoError(t, err)
	assert.Equal(t, pt(2, 2), pts[idx])
}

// S5: phantom-child handling on an incomplete N=2 tree (root has only a
// left child).
func TestFCP_PhantomChild_N2(t *testing.T) {
	pts := []point.Point[float64]{pt(0), pt(10)}
	require.NoError(t, tree.Build(pts, 1))

	idxFor1, err := query.FCP(pt(1), pts, 1, math.Inf(1))
	require.NoError(t, err)
	assert.Equal(t, pt(0), pts[idxFor1])

	idxFor9, err := query.FCP(pt(9), pts, 1, math.Inf(1))
	require.NoError(t, err)
	assert.Equal(t, pt(10), pts[idxFor9])
}

func TestFCP_MaxRadiusExcludesFarPoints(t *testing.T) {
	pts := []point.Point[float64]{pt(0, 0), pt(100, 100)}
	require.NoError(t, tree.Build(pts, 2))

	idx, err := query.FCP(pt(0.5, 0.5), pts, 2, 1.0)
	require.NoError(t, err)
	assert.NotEqual(t, -1, idx)

	idx, err = query.FCP(pt(50, 50), pts, 2, 1.0)
	require.NoError(t, err)
	assert.Equal(t, -1, idx)
}

// S4: FCP equivalence to brute force over random points and queries.
func TestFCP_MatchesBruteForce(t *testing.T) {
	const (
		numPoints  = 173
		numQueries = 10000
		dims       = 4
	)
	rng := rand.New(rand.NewSource(42))

	pts := make([]point.Point[float64], numPoints)
	for i := range pts {
		coords := make([]float64, dims)
		for d := range coords {
			coords[d] = rng.Float64()
		}
		pts[i] = point.Point[float64]{Coords: coords}
	}
	require.NoError(t, tree.Build(pts, dims))
	require.NoError(t, tree.Check(pts, dims))

	for q := 0; q < numQueries; q++ {
		queryCoords := make([]float64, dims)
		for d := range queryCoords {
			queryCoords[d] = rng.Float64()
		}
		qp := point.Point[float64]{Coords: queryCoords}

		idx, err := query.FCP(qp, pts, dims, math.Inf(1))
		require.NoError(t, err)
		require.NotEqual(t, -1, idx)

		got := point.Distance(qp, pts[idx], dims)
		want := math.Inf(1)
		for i := range pts {
			if d := point.Distance(qp, pts[i], dims); d < want {
				want = d
			}
		}
		assert.InDelta(t, want, got, 1e-9)
	}
}
