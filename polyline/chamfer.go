package polyline

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/geodist/geodesic"
	"github.com/katalvlaran/geodist/geom"
	"github.com/katalvlaran/geodist/hausdorff"
)

// ChamferDirected densifies both sides and reduces the per-sample
// nearest-neighbor distances from a's cloud to b's cloud. ReduceMean returns
// the average with no witness; ReduceMax returns the maximum with a witness
// matching the directed Hausdorff shape.
func ChamferDirected(a, b [][]geom.Point, opts Options, r Reduction) (DirectedChamferResult, error) {
	cloudA, err := DensifyParts(a, opts)
	if err != nil {
		return DirectedChamferResult{}, err
	}
	cloudB, err := DensifyParts(b, opts)
	if err != nil {
		return DirectedChamferResult{}, err
	}

	return chamferOnClouds(cloudA, cloudB, r)
}

// Chamfer densifies both sides and returns the symmetric Chamfer distance:
// the maximum of the two directed reductions, both carried in the result.
func Chamfer(a, b [][]geom.Point, opts Options, r Reduction) (ChamferResult, error) {
	cloudA, err := DensifyParts(a, opts)
	if err != nil {
		return ChamferResult{}, err
	}
	cloudB, err := DensifyParts(b, opts)
	if err != nil {
		return ChamferResult{}, err
	}

	return symmetricChamfer(cloudA, cloudB, r)
}

// ChamferDirectedClipped clips both densified clouds to box first. Witness
// indices refer to the clipped clouds.
func ChamferDirectedClipped(a, b [][]geom.Point, box geom.BoundingBox, opts Options, r Reduction) (DirectedChamferResult, error) {
	cloudA, cloudB, err := densifyAndClip(a, b, box, opts)
	if err != nil {
		return DirectedChamferResult{}, err
	}

	return chamferOnClouds(cloudA, cloudB, r)
}

// ChamferClipped clips both densified clouds to box before the symmetric
// reduction.
func ChamferClipped(a, b [][]geom.Point, box geom.BoundingBox, opts Options, r Reduction) (ChamferResult, error) {
	cloudA, cloudB, err := densifyAndClip(a, b, box, opts)
	if err != nil {
		return ChamferResult{}, err
	}

	return symmetricChamfer(cloudA, cloudB, r)
}

func symmetricChamfer(a, b Cloud, r Reduction) (ChamferResult, error) {
	forward, err := chamferOnClouds(a, b, r)
	if err != nil {
		return ChamferResult{}, err
	}
	reverse, err := chamferOnClouds(b, a, r)
	if err != nil {
		return ChamferResult{}, err
	}

	d := forward.DistanceMeters
	if reverse.DistanceMeters > d {
		d = reverse.DistanceMeters
	}

	return ChamferResult{DistanceMeters: d, Reduction: r, AToB: forward, BToA: reverse}, nil
}

func chamferOnClouds(src, dst Cloud, r Reduction) (DirectedChamferResult, error) {
	if r != ReduceMean && r != ReduceMax {
		return DirectedChamferResult{}, fmt.Errorf("reduction=%d: %w", int(r), ErrBadReduction)
	}
	if src.Len() == 0 || dst.Len() == 0 {
		return DirectedChamferResult{}, fmt.Errorf("chamfer needs samples on both sides: %w",
			hausdorff.ErrEmptyPointSet)
	}

	nearest, nearestIdx := nearestDistances(src.Samples(), dst.Samples())

	switch r {
	case ReduceMean:
		return DirectedChamferResult{
			DistanceMeters: stat.Mean(nearest, nil),
			Reduction:      ReduceMean,
		}, nil
	default:
		origin := floats.MaxIdx(nearest)
		w := partAwareWitness(hausdorff.DirectedWitness{
			DistanceMeters: nearest[origin],
			OriginIndex:    origin,
			CandidateIndex: nearestIdx[origin],
		}, src, dst)

		return DirectedChamferResult{
			DistanceMeters: nearest[origin],
			Reduction:      ReduceMax,
			Witness:        &w,
		}, nil
	}
}

// nearestDistances computes each source sample's distance to its nearest
// target sample, with the realizing target index. Strict < keeps the lowest
// target index on ties.
func nearestDistances(src, dst []geom.Point) (dists []float64, idx []int) {
	dists = make([]float64, len(src))
	idx = make([]int, len(src))
	for i, origin := range src {
		best := math.Inf(1)
		bestIdx := -1
		for j, candidate := range dst {
			if d := geodesic.Distance(origin, candidate); d < best {
				best, bestIdx = d, j
			}
		}
		dists[i], idx[i] = best, bestIdx
	}

	return dists, idx
}
