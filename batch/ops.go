package batch

import (
	"github.com/katalvlaran/geodist/geodesic"
	"github.com/katalvlaran/geodist/geom"
)

// Distances returns the great-circle distance for every aligned point pair.
func Distances(a, b []geom.Point) ([]float64, error) {
	return Map(a, b, func(p, q geom.Point) (float64, error) {
		return geodesic.Distance(p, q), nil
	})
}

// Bearings returns distance plus initial/final bearings for every aligned
// point pair.
func Bearings(a, b []geom.Point) ([]geodesic.Result, error) {
	return Map(a, b, func(p, q geom.Point) (geodesic.Result, error) {
		return geodesic.WithBearings(p, q), nil
	})
}

// DistancesOnEllipsoid returns the ellipsoidal geodesic distance for every
// aligned point pair on e.
func DistancesOnEllipsoid(e geom.Ellipsoid, a, b []geom.Point) ([]float64, error) {
	return Map(a, b, func(p, q geom.Point) (float64, error) {
		return geodesic.DistanceOnEllipsoid(e, p, q), nil
	})
}

// BearingsOnEllipsoid returns the full ellipsoidal solution for every
// aligned point pair on e.
func BearingsOnEllipsoid(e geom.Ellipsoid, a, b []geom.Point) ([]geodesic.Result, error) {
	return Map(a, b, func(p, q geom.Point) (geodesic.Result, error) {
		return geodesic.WithBearingsOnEllipsoid(e, p, q), nil
	})
}

// Distances3D returns the chord distance for every aligned 3D point pair.
func Distances3D(a, b []geom.Point3D) ([]float64, error) {
	return Map(a, b, func(p, q geom.Point3D) (float64, error) {
		return geodesic.Distance3D(p, q), nil
	})
}
