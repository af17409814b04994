package geom

import "fmt"

// WGS84 reference ellipsoid axes in meters.
const (
	WGS84SemiMajorMeters = 6378137.0
	WGS84SemiMinorMeters = 6356752.314245
)

// Ellipsoid is an immutable oblate ellipsoid given by its semi-major
// (equatorial) and semi-minor (polar) axes in meters.
type Ellipsoid struct {
	semiMajorM float64
	semiMinorM float64
}

// NewEllipsoid constructs a validated Ellipsoid.
//
// Both axes must be finite and strictly positive (ErrInvalidRadius
// otherwise) and ordered semi-minor ≤ semi-major (ErrInvalidEllipsoid).
func NewEllipsoid(semiMajorM, semiMinorM float64) (Ellipsoid, error) {
	if err := validateRadius("semi_major_m", semiMajorM); err != nil {
		return Ellipsoid{}, err
	}
	if err := validateRadius("semi_minor_m", semiMinorM); err != nil {
		return Ellipsoid{}, err
	}
	if semiMinorM > semiMajorM {
		return Ellipsoid{}, fmt.Errorf(
			"axes a=%v, b=%v must satisfy a >= b: %w", semiMajorM, semiMinorM, ErrInvalidEllipsoid)
	}

	return Ellipsoid{semiMajorM: semiMajorM, semiMinorM: semiMinorM}, nil
}

// WGS84 returns the canonical WGS84 ellipsoid.
func WGS84() Ellipsoid {
	return Ellipsoid{semiMajorM: WGS84SemiMajorMeters, semiMinorM: WGS84SemiMinorMeters}
}

// SemiMajor returns the equatorial radius in meters.
func (e Ellipsoid) SemiMajor() float64 { return e.semiMajorM }

// SemiMinor returns the polar radius in meters.
func (e Ellipsoid) SemiMinor() float64 { return e.semiMinorM }

// Flattening returns (a - b) / a. Zero for a sphere.
func (e Ellipsoid) Flattening() float64 {
	return (e.semiMajorM - e.semiMinorM) / e.semiMajorM
}

// MeanRadius returns the conventional mean radius (2a + b) / 3 in meters.
func (e Ellipsoid) MeanRadius() float64 {
	return (2.0*e.semiMajorM + e.semiMinorM) / 3.0
}

// String implements fmt.Stringer.
func (e Ellipsoid) String() string {
	return fmt.Sprintf("Ellipsoid(a=%g, b=%g)", e.semiMajorM, e.semiMinorM)
}

func validateRadius(field string, v float64) error {
	if !isFinite(v) || v <= 0 {
		return fmt.Errorf("%s=%v must be finite meters > 0: %w", field, v, ErrInvalidRadius)
	}

	return nil
}
