package geom

import (
	"fmt"
	"math"
)

// Coordinate bounds in degrees.
const (
	MinLatitudeDeg = -90.0
	MaxLatitudeDeg = 90.0

	MinLongitudeDeg = -180.0
	MaxLongitudeDeg = 180.0
)

// Point is an immutable geographic position in degrees.
//
// The zero value is the valid point (0°, 0°). Points are comparable with ==;
// equality is by coordinate tuple.
type Point struct {
	latDeg float64
	lonDeg float64
}

// NewPoint constructs a validated Point from latitude/longitude in degrees.
//
// Returns ErrInvalidLatitude or ErrInvalidLongitude when a coordinate is
// non-finite or out of range.
func NewPoint(latDeg, lonDeg float64) (Point, error) {
	if err := validateLatitude(latDeg); err != nil {
		return Point{}, err
	}
	if err := validateLongitude(lonDeg); err != nil {
		return Point{}, err
	}

	return Point{latDeg: latDeg, lonDeg: lonDeg}, nil
}

// MustPoint is like NewPoint but panics on invalid input.
// Intended for fixtures and package-level constants.
func MustPoint(latDeg, lonDeg float64) Point {
	p, err := NewPoint(latDeg, lonDeg)
	if err != nil {
		panic(err)
	}

	return p
}

// Lat returns the latitude in degrees.
func (p Point) Lat() float64 { return p.latDeg }

// Lon returns the longitude in degrees.
func (p Point) Lon() float64 { return p.lonDeg }

// Tuple returns (latitude, longitude) in degrees. The results feed straight
// back into NewPoint, so NewPoint(p.Tuple()) reconstructs p exactly.
func (p Point) Tuple() (latDeg, lonDeg float64) { return p.latDeg, p.lonDeg }

// String implements fmt.Stringer.
func (p Point) String() string {
	return fmt.Sprintf("Point(%g, %g)", p.latDeg, p.lonDeg)
}

// Point3D is an immutable geographic position with altitude in meters.
// Altitude may be any finite value, negative included.
type Point3D struct {
	pt        Point
	altitudeM float64
}

// NewPoint3D constructs a validated Point3D from latitude/longitude in
// degrees and altitude in meters.
//
// Returns ErrInvalidLatitude, ErrInvalidLongitude, or ErrInvalidAltitude
// when a component is non-finite or out of range.
func NewPoint3D(latDeg, lonDeg, altitudeM float64) (Point3D, error) {
	pt, err := NewPoint(latDeg, lonDeg)
	if err != nil {
		return Point3D{}, err
	}
	if !isFinite(altitudeM) {
		return Point3D{}, fmt.Errorf("altitude_m=%v must be finite meters: %w", altitudeM, ErrInvalidAltitude)
	}

	return Point3D{pt: pt, altitudeM: altitudeM}, nil
}

// MustPoint3D is like NewPoint3D but panics on invalid input.
func MustPoint3D(latDeg, lonDeg, altitudeM float64) Point3D {
	p, err := NewPoint3D(latDeg, lonDeg, altitudeM)
	if err != nil {
		panic(err)
	}

	return p
}

// Point returns the horizontal position.
func (p Point3D) Point() Point { return p.pt }

// Lat returns the latitude in degrees.
func (p Point3D) Lat() float64 { return p.pt.latDeg }

// Lon returns the longitude in degrees.
func (p Point3D) Lon() float64 { return p.pt.lonDeg }

// Altitude returns the altitude in meters.
func (p Point3D) Altitude() float64 { return p.altitudeM }

// Tuple returns (latitude, longitude, altitude).
func (p Point3D) Tuple() (latDeg, lonDeg, altitudeM float64) {
	return p.pt.latDeg, p.pt.lonDeg, p.altitudeM
}

// String implements fmt.Stringer.
func (p Point3D) String() string {
	return fmt.Sprintf("Point3D(%g, %g, %g)", p.pt.latDeg, p.pt.lonDeg, p.altitudeM)
}

func validateLatitude(v float64) error {
	if !isFinite(v) || v < MinLatitudeDeg || v > MaxLatitudeDeg {
		return fmt.Errorf("latitude_deg=%v must be finite degrees in [-90, 90]: %w", v, ErrInvalidLatitude)
	}

	return nil
}

func validateLongitude(v float64) error {
	if !isFinite(v) || v < MinLongitudeDeg || v > MaxLongitudeDeg {
		return fmt.Errorf("longitude_deg=%v must be finite degrees in [-180, 180]: %w", v, ErrInvalidLongitude)
	}

	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
