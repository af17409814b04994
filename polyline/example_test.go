package polyline_test

import (
	"fmt"

	"github.com/katalvlaran/geodist/geom"
	"github.com/katalvlaran/geodist/polyline"
)

// ExampleDensify resamples a ~10 km equatorial segment at the default 100 m
// spacing.
func ExampleDensify() {
	verts := []geom.Point{geom.MustPoint(0, 0), geom.MustPoint(0, 0.0899)}

	samples, err := polyline.Densify(verts, polyline.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("samples=%d first=%v\n", len(samples), samples[0])

	// Output:
	// samples=101 first=Point(0, 0)
}

// ExampleHausdorff matches two single-part polylines and reports which
// samples realize the distance.
func ExampleHausdorff() {
	a := [][]geom.Point{{geom.MustPoint(0, 0), geom.MustPoint(0, 2)}}
	b := [][]geom.Point{{geom.MustPoint(0, 0), geom.MustPoint(0, 1)}}

	opts := polyline.Options{MaxSegmentLengthMeters: 1e7, SampleCap: 1000}
	w, err := polyline.Hausdorff(a, b, opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("distance=%.3f source_part=%d source_index=%d\n",
		w.DistanceMeters, w.AToB.SourcePart, w.AToB.SourceIndex)

	// Output:
	// distance=111195.080 source_part=0 source_index=1
}

// ExampleChamferDirected contrasts the two reductions.
func ExampleChamferDirected() {
	a := [][]geom.Point{{geom.MustPoint(0, 0), geom.MustPoint(0, 2)}}
	b := [][]geom.Point{{geom.MustPoint(0, 0), geom.MustPoint(0, 1)}}
	opts := polyline.Options{MaxSegmentLengthMeters: 1e7, SampleCap: 1000}

	mean, _ := polyline.ChamferDirected(a, b, opts, polyline.ReduceMean)
	max, _ := polyline.ChamferDirected(a, b, opts, polyline.ReduceMax)

	fmt.Printf("mean=%.3f witness=%v\n", mean.DistanceMeters, mean.Witness != nil)
	fmt.Printf("max=%.3f witness=%v\n", max.DistanceMeters, max.Witness != nil)

	// Output:
	// mean=55597.540 witness=false
	// max=111195.080 witness=true
}
