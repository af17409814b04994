package batch_test

import (
	"fmt"

	"github.com/katalvlaran/geodist/batch"
	"github.com/katalvlaran/geodist/geom"
)

// ExampleDistances measures two pairs in one call; results keep the input
// order.
func ExampleDistances() {
	a := []geom.Point{geom.MustPoint(0, 0), geom.MustPoint(0, 0)}
	b := []geom.Point{geom.MustPoint(0, 1), geom.MustPoint(0, 2)}

	dists, err := batch.Distances(a, b)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i, d := range dists {
		fmt.Printf("pair %d: %.3f m\n", i, d)
	}

	// Output:
	// pair 0: 111195.080 m
	// pair 1: 222390.160 m
}

// ExampleMap runs a custom pairwise operation through the dispatcher.
func ExampleMap() {
	a := []geom.Point{geom.MustPoint(0, 0)}
	b := []geom.Point{geom.MustPoint(0, 1), geom.MustPoint(0, 2)}

	_, err := batch.Map(a, b, func(p, q geom.Point) (float64, error) {
		return 0, nil
	})
	fmt.Println(err)

	// Output:
	// input lengths differ: 1 vs 2: batch: vectorization error
}
