package geodesic

import (
	"math"

	"github.com/katalvlaran/geodist/geom"
)

// Distance3D returns the straight-line (chord) distance in meters between
// two altitude-carrying points. Positions are mapped to Cartesian space on a
// sphere of radius EarthRadiusMeters plus each point's altitude; the result
// is the Euclidean length of the connecting segment. This is a spherical
// approximation: it cuts through the Earth rather than following the
// surface, and ignores ellipsoidal shape.
func Distance3D(a, b geom.Point3D) float64 {
	if a == b {
		return 0
	}

	ax, ay, az := cartesian(a)
	bx, by, bz := cartesian(b)

	dx, dy, dz := bx-ax, by-ay, bz-az

	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// cartesian maps p onto Earth-centered coordinates at radius
// EarthRadiusMeters + altitude.
func cartesian(p geom.Point3D) (x, y, z float64) {
	r := EarthRadiusMeters + p.Altitude()
	sinLat, cosLat := math.Sincos(p.Lat() * degToRad)
	sinLon, cosLon := math.Sincos(p.Lon() * degToRad)

	return r * cosLat * cosLon, r * cosLat * sinLon, r * sinLat
}
