package geodesic

import (
	"math"

	"github.com/katalvlaran/geodist/geom"
)

// EarthRadiusMeters is the mean Earth radius used by the spherical kernels,
// the IUGG mean radius R1 of the WGS84 ellipsoid.
const EarthRadiusMeters = 6_371_008.8

const (
	degToRad = math.Pi / 180.0
	radToDeg = 180.0 / math.Pi
)

// Result carries a distance together with the bearings of the connecting
// geodesic. Bearings are degrees clockwise from true north in [0, 360).
type Result struct {
	// DistanceMeters is the geodesic length between the two points.
	DistanceMeters float64
	// InitialBearingDeg is the departure azimuth at the first point.
	InitialBearingDeg float64
	// FinalBearingDeg is the arrival azimuth at the second point.
	FinalBearingDeg float64
}

// Distance returns the great-circle distance in meters between a and b on
// the mean sphere, via the haversine formula. Symmetric; 0 for coincident
// points.
func Distance(a, b geom.Point) float64 {
	if a == b {
		return 0
	}

	return EarthRadiusMeters * centralAngle(
		a.Lat()*degToRad, a.Lon()*degToRad,
		b.Lat()*degToRad, b.Lon()*degToRad)
}

// WithBearings returns the great-circle distance between a and b together
// with the initial and final bearings of the connecting arc. Coincident
// points yield a zero Result.
func WithBearings(a, b geom.Point) Result {
	if a == b {
		return Result{}
	}

	lat1, lon1 := a.Lat()*degToRad, a.Lon()*degToRad
	lat2, lon2 := b.Lat()*degToRad, b.Lon()*degToRad

	// The final bearing is the reverse arc's initial bearing turned 180°.
	return Result{
		DistanceMeters:    EarthRadiusMeters * centralAngle(lat1, lon1, lat2, lon2),
		InitialBearingDeg: initialBearingDeg(lat1, lon1, lat2, lon2),
		FinalBearingDeg:   normalizeBearingDeg(initialBearingDeg(lat2, lon2, lat1, lon1) + 180.0),
	}
}

// centralAngle returns the haversine central angle in radians between two
// positions given in radians.
func centralAngle(lat1, lon1, lat2, lon2 float64) float64 {
	sinLat := math.Sin((lat2 - lat1) / 2.0)
	sinLon := math.Sin((lon2 - lon1) / 2.0)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon

	// Clamp guards asin against rounding pushing sqrt(h) past 1 for
	// near-antipodal pairs.
	return 2.0 * math.Asin(math.Min(1.0, math.Sqrt(h)))
}

// initialBearingDeg returns the departure azimuth in degrees [0, 360) of the
// great-circle arc from (lat1, lon1) to (lat2, lon2), arguments in radians.
func initialBearingDeg(lat1, lon1, lat2, lon2 float64) float64 {
	dLon := lon2 - lon1
	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)

	return normalizeBearingDeg(math.Atan2(y, x) * radToDeg)
}

// normalizeBearingDeg maps any bearing in degrees onto [0, 360).
func normalizeBearingDeg(deg float64) float64 {
	deg = math.Mod(deg, 360.0)
	if deg < 0 {
		deg += 360.0
	}

	return deg
}
