package geodesic_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/geodist/geodesic"
	"github.com/katalvlaran/geodist/geom"
	"github.com/stretchr/testify/assert"
)

// TestDistance_OneDegreeOfEquator pins the canonical value: one degree of
// arc on the mean sphere is 111195.080 m.
func TestDistance_OneDegreeOfEquator(t *testing.T) {
	d := geodesic.Distance(geom.MustPoint(0, 0), geom.MustPoint(0, 1))
	assert.InDelta(t, 111195.080, d, 1e-3)
}

// TestDistance_Reflexive verifies Distance(p, p) == 0 exactly.
func TestDistance_Reflexive(t *testing.T) {
	for _, p := range []geom.Point{
		geom.MustPoint(0, 0),
		geom.MustPoint(51.5007, -0.1246),
		geom.MustPoint(-90, 0),
	} {
		assert.Zero(t, geodesic.Distance(p, p))
	}
}

// TestDistance_Symmetric verifies exact symmetry on a spread of pairs.
func TestDistance_Symmetric(t *testing.T) {
	pairs := [][2]geom.Point{
		{geom.MustPoint(51.5007, -0.1246), geom.MustPoint(48.8584, 2.2945)},
		{geom.MustPoint(-33.8568, 151.2153), geom.MustPoint(40.6892, -74.0445)},
		{geom.MustPoint(89.9, 10), geom.MustPoint(-89.9, -170)},
	}
	for _, pair := range pairs {
		assert.Equal(t,
			geodesic.Distance(pair[0], pair[1]),
			geodesic.Distance(pair[1], pair[0]))
	}
}

// TestDistance_KnownPairs checks a small fixture of city pairs against
// published great-circle values.
func TestDistance_KnownPairs(t *testing.T) {
	// London (Big Ben) to Paris (Eiffel Tower), roughly 340 km.
	london := geom.MustPoint(51.5007, -0.1246)
	paris := geom.MustPoint(48.8584, 2.2945)
	assert.InDelta(t, 340_500, geodesic.Distance(london, paris), 500)

	// Pole to pole is half the circumference.
	half := math.Pi * geodesic.EarthRadiusMeters
	assert.InDelta(t, half,
		geodesic.Distance(geom.MustPoint(90, 0), geom.MustPoint(-90, 0)), 1e-6)
}

// TestWithBearings_EastwardAlongEquator pins the equator scenario: due east
// travel has initial and final bearings of 90.
func TestWithBearings_EastwardAlongEquator(t *testing.T) {
	r := geodesic.WithBearings(geom.MustPoint(0, 0), geom.MustPoint(0, 1))

	assert.InDelta(t, 111195.080, r.DistanceMeters, 1e-3)
	assert.InDelta(t, 90.0, r.InitialBearingDeg, 1e-9)
	assert.InDelta(t, 90.0, r.FinalBearingDeg, 1e-9)
}

// TestWithBearings_CoincidentPoints verifies the 0/0 bearing convention.
func TestWithBearings_CoincidentPoints(t *testing.T) {
	p := geom.MustPoint(12.34, 56.78)
	assert.Equal(t, geodesic.Result{}, geodesic.WithBearings(p, p))
}

// TestWithBearings_NormalizedRange verifies bearings land in [0, 360) for
// every quadrant of travel.
func TestWithBearings_NormalizedRange(t *testing.T) {
	center := geom.MustPoint(45, 45)
	for _, to := range []geom.Point{
		geom.MustPoint(46, 45),
		geom.MustPoint(44, 45),
		geom.MustPoint(45, 46),
		geom.MustPoint(45, 44),
		geom.MustPoint(44, 44),
	} {
		r := geodesic.WithBearings(center, to)
		assert.GreaterOrEqual(t, r.InitialBearingDeg, 0.0)
		assert.Less(t, r.InitialBearingDeg, 360.0)
		assert.GreaterOrEqual(t, r.FinalBearingDeg, 0.0)
		assert.Less(t, r.FinalBearingDeg, 360.0)
	}
}

// TestWithBearings_WestwardIs270 verifies a westward arc along the equator.
func TestWithBearings_WestwardIs270(t *testing.T) {
	r := geodesic.WithBearings(geom.MustPoint(0, 1), geom.MustPoint(0, 0))
	assert.InDelta(t, 270.0, r.InitialBearingDeg, 1e-9)
	assert.InDelta(t, 270.0, r.FinalBearingDeg, 1e-9)
}
