// Package geom provides the validated, immutable geometry value types that
// the rest of geodist operates on.
//
// What:
//
//   - Point / Point3D — geographic positions in degrees (altitude in meters).
//   - BoundingBox — inclusive lat/lon filter box, antimeridian-aware.
//   - Ellipsoid — oblate ellipsoid axes with a WGS84 factory.
//
// Why:
//
//   - Every constructor validates its input completely; a value either exists
//     and is fully valid, or construction fails with a sentinel error naming
//     the offending field and value. Downstream kernels therefore carry no
//     validation or error paths of their own.
//   - All types are immutable after construction (unexported fields, accessor
//     methods) and comparable with ==, so equality is by coordinate tuple.
//
// Units:
//
//   - Angles are degrees. Distances and axes are meters.
//
// Errors (sentinel, all match ErrInvalidGeometry via errors.Is):
//
//   - ErrInvalidLatitude    — latitude not finite or outside [-90, 90].
//   - ErrInvalidLongitude   — longitude not finite or outside [-180, 180].
//   - ErrInvalidAltitude    — altitude not finite.
//   - ErrInvalidRadius      — radius/axis not finite or not positive.
//   - ErrInvalidEllipsoid   — axes unordered (semi-minor > semi-major).
//   - ErrInvalidBoundingBox — latitude bounds inverted.
//   - ErrInvalidDistance    — distance/length knob not finite or negative.
//
// Antimeridian rule:
//
//	A BoundingBox with MinLon > MaxLon is treated as wrapping the
//	antimeridian: Contains accepts a point when lon ≥ MinLon OR lon ≤ MaxLon.
//	Inverted latitude bounds are always rejected.
package geom
