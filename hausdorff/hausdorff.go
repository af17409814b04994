package hausdorff

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/geodist/geodesic"
	"github.com/katalvlaran/geodist/geom"
)

// Directed returns the directed Hausdorff distance from a to b on the mean
// sphere: the greatest distance any origin in a must travel to reach its
// nearest candidate in b. Either set being empty yields ErrEmptyPointSet.
func Directed(a, b []geom.Point) (DirectedWitness, error) {
	return directed(a, b, geodesic.Distance)
}

// Distance returns the symmetric Hausdorff distance between a and b: the
// maximum of the two directed distances, with both directed witnesses
// carried in the result.
func Distance(a, b []geom.Point) (Witness, error) {
	return symmetric(a, b, geodesic.Distance)
}

// DirectedClipped restricts both sets to box before computing the directed
// distance. Witness indices refer to the original input sets, so a surviving
// point keeps its caller-relative position. A set left empty by the filter
// yields ErrEmptyPointSet.
func DirectedClipped(a, b []geom.Point, box geom.BoundingBox) (DirectedWitness, error) {
	ca, ia, err := clip(a, box, "a")
	if err != nil {
		return DirectedWitness{}, err
	}
	cb, ib, err := clip(b, box, "b")
	if err != nil {
		return DirectedWitness{}, err
	}

	w, err := Directed(ca, cb)
	if err != nil {
		return DirectedWitness{}, err
	}

	return remapWitness(w, ia, ib), nil
}

// DistanceClipped restricts both sets to box before computing the symmetric
// distance. Witness indices refer to the original input sets.
func DistanceClipped(a, b []geom.Point, box geom.BoundingBox) (Witness, error) {
	ca, ia, err := clip(a, box, "a")
	if err != nil {
		return Witness{}, err
	}
	cb, ib, err := clip(b, box, "b")
	if err != nil {
		return Witness{}, err
	}

	w, err := Distance(ca, cb)
	if err != nil {
		return Witness{}, err
	}
	w.AToB = remapWitness(w.AToB, ia, ib)
	w.BToA = remapWitness(w.BToA, ib, ia)

	return w, nil
}

// PolygonBoundary returns the symmetric Hausdorff distance between the
// vertex sets of two closed rings. When a ring repeats its first vertex as
// the last one, the duplicate is dropped so it cannot shadow witness
// indices.
func PolygonBoundary(a, b []geom.Point) (Witness, error) {
	return Distance(dropClosingVertex(a), dropClosingVertex(b))
}

// directed runs the exhaustive one-way scan with a caller-supplied metric.
// Shared by the spherical and chord variants.
func directed[P comparable](a, b []P, dist func(P, P) float64) (DirectedWitness, error) {
	if len(a) == 0 {
		return DirectedWitness{}, fmt.Errorf("first set has no points: %w", ErrEmptyPointSet)
	}
	if len(b) == 0 {
		return DirectedWitness{}, fmt.Errorf("second set has no points: %w", ErrEmptyPointSet)
	}

	// Nearest-candidate distance and index per origin. Strict < keeps the
	// lowest candidate index on ties.
	nearest := make([]float64, len(a))
	nearestIdx := make([]int, len(a))
	for i, origin := range a {
		best := math.Inf(1)
		bestIdx := -1
		for j, candidate := range b {
			if d := dist(origin, candidate); d < best {
				best, bestIdx = d, j
			}
		}
		nearest[i], nearestIdx[i] = best, bestIdx
	}

	// MaxIdx returns the first index on ties, keeping the lowest origin.
	origin := floats.MaxIdx(nearest)

	return DirectedWitness{
		DistanceMeters: nearest[origin],
		OriginIndex:    origin,
		CandidateIndex: nearestIdx[origin],
	}, nil
}

// symmetric combines both directions; the forward direction wins ties.
func symmetric[P comparable](a, b []P, dist func(P, P) float64) (Witness, error) {
	forward, err := directed(a, b, dist)
	if err != nil {
		return Witness{}, err
	}
	reverse, err := directed(b, a, dist)
	if err != nil {
		return Witness{}, err
	}

	d := forward.DistanceMeters
	if reverse.DistanceMeters > d {
		d = reverse.DistanceMeters
	}

	return Witness{DistanceMeters: d, AToB: forward, BToA: reverse}, nil
}

// clip keeps the points of set inside box, in input order, along with each
// survivor's index in the original set.
func clip(set []geom.Point, box geom.BoundingBox, label string) ([]geom.Point, []int, error) {
	kept := make([]geom.Point, 0, len(set))
	keptIdx := make([]int, 0, len(set))
	for i, p := range set {
		if box.Contains(p) {
			kept = append(kept, p)
			keptIdx = append(keptIdx, i)
		}
	}
	if len(kept) == 0 {
		return nil, nil, fmt.Errorf("bounding box removed every point of set %s: %w", label, ErrEmptyPointSet)
	}

	return kept, keptIdx, nil
}

// remapWitness translates a witness over clipped sets back to the caller's
// original indices.
func remapWitness(w DirectedWitness, originIdx, candidateIdx []int) DirectedWitness {
	w.OriginIndex = originIdx[w.OriginIndex]
	w.CandidateIndex = candidateIdx[w.CandidateIndex]

	return w
}

// dropClosingVertex removes the last vertex of a ring when it duplicates the
// first.
func dropClosingVertex(ring []geom.Point) []geom.Point {
	if len(ring) >= 2 && ring[0] == ring[len(ring)-1] {
		return ring[:len(ring)-1]
	}

	return ring
}
