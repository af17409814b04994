package polyline_test

import (
	"testing"

	"github.com/katalvlaran/geodist/geom"
	"github.com/katalvlaran/geodist/polyline"
)

func benchTrack(latBase float64) [][]geom.Point {
	part := make([]geom.Point, 0, 20)
	for i := 0; i < 20; i++ {
		part = append(part, geom.MustPoint(latBase+float64(i)*0.001, float64(i)*0.002))
	}

	return [][]geom.Point{part}
}

func BenchmarkDensifyParts(b *testing.B) {
	track := benchTrack(0)
	opts := polyline.Options{MaxSegmentLengthMeters: 50, SampleCap: polyline.DefaultSampleCap}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := polyline.DensifyParts(track, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkHausdorff(b *testing.B) {
	a := benchTrack(0)
	c := benchTrack(0.01)
	opts := polyline.Options{MaxSegmentLengthMeters: 500, SampleCap: polyline.DefaultSampleCap}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := polyline.Hausdorff(a, c, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkChamferMean(b *testing.B) {
	a := benchTrack(0)
	c := benchTrack(0.01)
	opts := polyline.Options{MaxSegmentLengthMeters: 500, SampleCap: polyline.DefaultSampleCap}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := polyline.Chamfer(a, c, opts, polyline.ReduceMean); err != nil {
			b.Fatal(err)
		}
	}
}
