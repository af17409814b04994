package polygon

import (
	"fmt"
	"math"

	"github.com/katalvlaran/geodist/geodesic"
	"github.com/katalvlaran/geodist/geom"
	"github.com/katalvlaran/geodist/polyline"
)

// ringClosureToleranceDeg bounds how far apart the first and last vertices
// of a closed ring may sit, per coordinate.
const ringClosureToleranceDeg = 1e-9

var (
	// ErrOpenRing indicates a ring whose last vertex does not return to the
	// first within the closure tolerance.
	ErrOpenRing = fmt.Errorf("%w: ring not closed", geom.ErrInvalidGeometry)

	// ErrRingOrientation indicates an exterior ring that is not
	// counterclockwise or a hole that is not clockwise.
	ErrRingOrientation = fmt.Errorf("%w: wrong ring orientation", geom.ErrInvalidGeometry)

	// ErrHoleOutsideShell indicates a hole that does not lie inside the
	// exterior ring.
	ErrHoleOutsideShell = fmt.Errorf("%w: hole outside exterior", geom.ErrInvalidGeometry)
)

// Polygon is a validated boundary-only polygon: one exterior ring and zero
// or more holes. Rings keep their closing vertex.
type Polygon struct {
	exterior []geom.Point
	holes    [][]geom.Point
}

// NewPolygon constructs a validated Polygon. The exterior must wind
// counterclockwise and each hole clockwise; every hole must lie inside the
// exterior.
func NewPolygon(exterior []geom.Point, holes ...[]geom.Point) (Polygon, error) {
	ext, err := normalizeRing(exterior, true, 0)
	if err != nil {
		return Polygon{}, err
	}

	normalized := make([][]geom.Point, 0, len(holes))
	for i, hole := range holes {
		ring, err := normalizeRing(hole, false, i+1)
		if err != nil {
			return Polygon{}, err
		}
		if !pointInRing(ring[0], ext) {
			return Polygon{}, fmt.Errorf("hole %d: %w", i, ErrHoleOutsideShell)
		}
		normalized = append(normalized, ring)
	}

	return Polygon{exterior: ext, holes: normalized}, nil
}

// Exterior returns the exterior ring. The slice is owned by the Polygon and
// must not be modified.
func (p Polygon) Exterior() []geom.Point { return p.exterior }

// Holes returns the hole rings. The slices are owned by the Polygon and must
// not be modified.
func (p Polygon) Holes() [][]geom.Point { return p.holes }

// rings lists all boundary parts, exterior first.
func (p Polygon) rings() [][]geom.Point {
	parts := make([][]geom.Point, 0, 1+len(p.holes))
	parts = append(parts, p.exterior)
	parts = append(parts, p.holes...)

	return parts
}

// DensifyBoundaries resamples every ring, returning flattened samples with
// part offsets: part 0 is the exterior, part i is hole i-1. The sample cap
// applies across all rings.
func (p Polygon) DensifyBoundaries(opts polyline.Options) (polyline.Cloud, error) {
	return polyline.DensifyParts(p.rings(), opts)
}

// AreaSquareMeters returns the approximate surface area on the mean sphere.
// Holes subtract from the exterior; the result is clamped at zero to absorb
// floating-point noise when holes nearly fill the shell.
func (p Polygon) AreaSquareMeters() float64 {
	area := math.Abs(ringAreaSquareMeters(p.exterior))
	for _, hole := range p.holes {
		area -= math.Abs(ringAreaSquareMeters(hole))
	}

	return math.Max(area, 0)
}

// HausdorffBoundaryDirected returns the directed Hausdorff distance from a's
// densified boundary to b's, with a part-aware witness.
func HausdorffBoundaryDirected(a, b Polygon, opts polyline.Options) (polyline.DirectedWitness, error) {
	return polyline.HausdorffDirected(a.rings(), b.rings(), opts)
}

// HausdorffBoundary returns the symmetric Hausdorff distance between the two
// densified boundaries.
func HausdorffBoundary(a, b Polygon, opts polyline.Options) (polyline.Witness, error) {
	return polyline.Hausdorff(a.rings(), b.rings(), opts)
}

// normalizeRing collapses duplicates, then checks length, closure, and
// orientation. ccw is the required winding. partIndex feeds error context;
// 0 is the exterior.
func normalizeRing(ring []geom.Point, ccw bool, partIndex int) ([]geom.Point, error) {
	deduped := collapseDuplicates(ring)
	if len(deduped) < 4 {
		return nil, fmt.Errorf("ring %d has %d distinct vertices, need at least 4: %w",
			partIndex, len(deduped), polyline.ErrDegeneratePolyline)
	}

	first, last := deduped[0], deduped[len(deduped)-1]
	if math.Abs(first.Lat()-last.Lat()) > ringClosureToleranceDeg ||
		math.Abs(first.Lon()-last.Lon()) > ringClosureToleranceDeg {
		return nil, fmt.Errorf("ring %d: %w", partIndex, ErrOpenRing)
	}

	if isCCW := signedArea(deduped) > 0; isCCW != ccw {
		return nil, fmt.Errorf("ring %d: %w", partIndex, ErrRingOrientation)
	}

	return deduped, nil
}

func collapseDuplicates(ring []geom.Point) []geom.Point {
	deduped := make([]geom.Point, 0, len(ring))
	for i, v := range ring {
		if i == 0 || v != deduped[len(deduped)-1] {
			deduped = append(deduped, v)
		}
	}

	return deduped
}

// signedArea is the planar shoelace sum over the closed ring in lon/lat
// space; the sign gives winding direction.
func signedArea(ring []geom.Point) float64 {
	var sum float64
	for i := 0; i+1 < len(ring); i++ {
		sum += ring[i].Lon()*ring[i+1].Lat() - ring[i+1].Lon()*ring[i].Lat()
	}

	return sum
}

// pointInRing is an even-odd ray cast in lon/lat space. Rings are simple, so
// the first vertex of a hole decides containment. The crossing test only
// fires on edges that straddle p's latitude, so the denominator is nonzero.
func pointInRing(p geom.Point, ring []geom.Point) bool {
	inside := false
	for i := 0; i+1 < len(ring); i++ {
		p1, p2 := ring[i], ring[i+1]
		crosses := (p1.Lat() > p.Lat()) != (p2.Lat() > p.Lat())
		if crosses &&
			p.Lon() < (p2.Lon()-p1.Lon())*(p.Lat()-p1.Lat())/(p2.Lat()-p1.Lat())+p1.Lon() {
			inside = !inside
		}
	}

	return inside
}

// ringAreaSquareMeters integrates the spherical excess of one closed ring on
// the mean sphere.
func ringAreaSquareMeters(ring []geom.Point) float64 {
	const degToRad = math.Pi / 180.0

	var sum float64
	for i := 0; i+1 < len(ring); i++ {
		lat1, lon1 := ring[i].Lat()*degToRad, ring[i].Lon()*degToRad
		lat2, lon2 := ring[i+1].Lat()*degToRad, ring[i+1].Lon()*degToRad

		dLon := lon2 - lon1
		if dLon > math.Pi {
			dLon -= 2 * math.Pi
		} else if dLon < -math.Pi {
			dLon += 2 * math.Pi
		}

		sum += dLon * (math.Sin(lat1) + math.Sin(lat2))
	}

	return 0.5 * sum * geodesic.EarthRadiusMeters * geodesic.EarthRadiusMeters
}
