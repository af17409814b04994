package polygon_test

import (
	"fmt"

	"github.com/katalvlaran/geodist/geom"
	"github.com/katalvlaran/geodist/polygon"
)

// ExampleNewPolygon builds a unit square near the equator and reports its
// spherical area.
func ExampleNewPolygon() {
	ring := []geom.Point{
		geom.MustPoint(0, 0),
		geom.MustPoint(0, 1),
		geom.MustPoint(1, 1),
		geom.MustPoint(1, 0),
		geom.MustPoint(0, 0),
	}

	p, err := polygon.NewPolygon(ring)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("area=%.0f km2\n", p.AreaSquareMeters()/1e6)

	// Output:
	// area=12364 km2
}
