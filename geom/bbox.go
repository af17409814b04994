package geom

import "fmt"

// BoundingBox is an immutable, inclusive latitude/longitude filter box.
//
// Latitude bounds must satisfy MinLat ≤ MaxLat. Longitude bounds may be
// inverted (MinLon > MaxLon), which denotes a box wrapping the antimeridian:
// Contains then accepts a point when its longitude is ≥ MinLon OR ≤ MaxLon.
type BoundingBox struct {
	minLat float64
	maxLat float64
	minLon float64
	maxLon float64
}

// NewBoundingBox constructs a validated BoundingBox from its corner
// coordinates in degrees.
//
// Returns ErrInvalidLatitude/ErrInvalidLongitude for out-of-range corners
// and ErrInvalidBoundingBox when MinLat > MaxLat.
func NewBoundingBox(minLat, maxLat, minLon, maxLon float64) (BoundingBox, error) {
	if err := validateLatitude(minLat); err != nil {
		return BoundingBox{}, err
	}
	if err := validateLatitude(maxLat); err != nil {
		return BoundingBox{}, err
	}
	if err := validateLongitude(minLon); err != nil {
		return BoundingBox{}, err
	}
	if err := validateLongitude(maxLon); err != nil {
		return BoundingBox{}, err
	}
	if minLat > maxLat {
		return BoundingBox{}, fmt.Errorf(
			"min_lat=%v exceeds max_lat=%v: %w", minLat, maxLat, ErrInvalidBoundingBox)
	}

	return BoundingBox{minLat: minLat, maxLat: maxLat, minLon: minLon, maxLon: maxLon}, nil
}

// MustBoundingBox is like NewBoundingBox but panics on invalid input.
func MustBoundingBox(minLat, maxLat, minLon, maxLon float64) BoundingBox {
	b, err := NewBoundingBox(minLat, maxLat, minLon, maxLon)
	if err != nil {
		panic(err)
	}

	return b
}

// MinLat returns the southern latitude bound in degrees.
func (b BoundingBox) MinLat() float64 { return b.minLat }

// MaxLat returns the northern latitude bound in degrees.
func (b BoundingBox) MaxLat() float64 { return b.maxLat }

// MinLon returns the western longitude bound in degrees.
func (b BoundingBox) MinLon() float64 { return b.minLon }

// MaxLon returns the eastern longitude bound in degrees.
func (b BoundingBox) MaxLon() float64 { return b.maxLon }

// Wraps reports whether the box crosses the antimeridian (MinLon > MaxLon).
func (b BoundingBox) Wraps() bool { return b.minLon > b.maxLon }

// Contains reports whether p lies inside the box, edges included.
func (b BoundingBox) Contains(p Point) bool {
	if p.latDeg < b.minLat || p.latDeg > b.maxLat {
		return false
	}
	if b.Wraps() {
		return p.lonDeg >= b.minLon || p.lonDeg <= b.maxLon
	}

	return p.lonDeg >= b.minLon && p.lonDeg <= b.maxLon
}

// Contains3D reports whether the horizontal position of p lies inside the
// box. Altitude does not participate in the filter.
func (b BoundingBox) Contains3D(p Point3D) bool {
	return b.Contains(p.pt)
}

// String implements fmt.Stringer.
func (b BoundingBox) String() string {
	return fmt.Sprintf("BoundingBox[%g, %g]x[%g, %g]", b.minLat, b.maxLat, b.minLon, b.maxLon)
}
