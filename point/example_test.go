package point_test

import (
	"fmt"

	"github.com/katalvlaran/kdtree/point"
)

// ExampleDistance shows the Euclidean distance between two 2-D points.
func ExampleDistance() {
	a := point.Point[float64]{Coords: []float64{0, 0}}
	b := point.Point[float64]{Coords: []float64{3, 4}}

	fmt.Println(point.Distance(a, b, 2))
	// Output: 5
}

// ExampleSqrDistance shows comparing two points by squared distance, the
// form KNN in package query uses instead of Distance.
func ExampleSqrDistance() {
	origin := point.Point[float64]{Coords: []float64{0, 0, 0}}
	near := point.Point[float64]{Coords: []float64{1, 0, 0}}
	far := point.Point[float64]{Coords: []float64{0, 5, 0}}

	fmt.Println(point.SqrDistance(origin, near, 3) < point.SqrDistance(origin, far, 3))
	// Output: true
}
