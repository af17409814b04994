// Package geodesic implements the distance and bearing kernels of geodist:
// great-circle math on the mean sphere, Vincenty's inverse method on a
// reference ellipsoid, and a 3D chord distance for altitude-aware points.
//
// What:
//
//   - Distance / WithBearings — haversine distance and initial/final bearings
//     on a sphere of radius EarthRadiusMeters.
//   - DistanceOnEllipsoid / WithBearingsOnEllipsoid — Vincenty inverse on an
//     arbitrary geom.Ellipsoid (WGS84 by default).
//   - Distance3D — straight-line chord between altitude-carrying points,
//     using a spherical Cartesian approximation.
//
// Why no error returns:
//
//	Inputs are geom value types, which are fully validated at construction.
//	The kernels are therefore total functions: every reachable input yields a
//	finite result, coincident points yield 0, and near-antipodal ellipsoid
//	pairs where Vincenty fails to converge fall back to Lambert's
//	flattening-corrected approximation instead of erroring.
//
// Conventions:
//
//   - Distances are meters; bearings are degrees clockwise from true north,
//     normalized to [0, 360).
//   - Coincident points have distance 0 and bearings 0/0.
//   - Distance(a, b) == Distance(b, a) exactly; all kernels are pure and
//     deterministic.
//
// Complexity: every kernel is O(1) per point pair (Vincenty iterates a small
// bounded number of times).
package geodesic
