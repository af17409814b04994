package geom

import (
	"errors"
	"fmt"
)

// ErrInvalidGeometry is the root of the validation error taxonomy. Every
// specific construction error below wraps it, so callers may match either
// the precise kind or the whole family with errors.Is.
var ErrInvalidGeometry = errors.New("geom: invalid geometry")

var (
	// ErrInvalidLatitude indicates a latitude outside [-90, 90] degrees or a
	// non-finite value (NaN, ±Inf).
	ErrInvalidLatitude = fmt.Errorf("%w: invalid latitude", ErrInvalidGeometry)

	// ErrInvalidLongitude indicates a longitude outside [-180, 180] degrees
	// or a non-finite value.
	ErrInvalidLongitude = fmt.Errorf("%w: invalid longitude", ErrInvalidGeometry)

	// ErrInvalidAltitude indicates a non-finite altitude. Any finite value,
	// negative included, is accepted.
	ErrInvalidAltitude = fmt.Errorf("%w: invalid altitude", ErrInvalidGeometry)

	// ErrInvalidRadius indicates a radius or ellipsoid axis that is not
	// finite or not strictly positive.
	ErrInvalidRadius = fmt.Errorf("%w: invalid radius", ErrInvalidGeometry)

	// ErrInvalidEllipsoid indicates ellipsoid axes that are individually
	// valid but unordered (semi-minor exceeds semi-major).
	ErrInvalidEllipsoid = fmt.Errorf("%w: invalid ellipsoid", ErrInvalidGeometry)

	// ErrInvalidBoundingBox indicates inverted latitude bounds
	// (MinLat > MaxLat). Inverted longitude bounds are legal and denote an
	// antimeridian-wrapping box.
	ErrInvalidBoundingBox = fmt.Errorf("%w: invalid bounding box", ErrInvalidGeometry)

	// ErrInvalidDistance indicates a distance-like quantity (segment length,
	// angular span) that is not finite or is negative where a positive value
	// is required.
	ErrInvalidDistance = fmt.Errorf("%w: invalid distance", ErrInvalidGeometry)
)
