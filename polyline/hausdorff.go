package polyline

import (
	"github.com/katalvlaran/geodist/geom"
	"github.com/katalvlaran/geodist/hausdorff"
)

// HausdorffDirected densifies every part on each side, pools the parts into
// point clouds, and returns the directed Hausdorff distance from a to b with
// a part-aware witness.
func HausdorffDirected(a, b [][]geom.Point, opts Options) (DirectedWitness, error) {
	cloudA, err := DensifyParts(a, opts)
	if err != nil {
		return DirectedWitness{}, err
	}
	cloudB, err := DensifyParts(b, opts)
	if err != nil {
		return DirectedWitness{}, err
	}

	return directedOnClouds(cloudA, cloudB)
}

// Hausdorff densifies both sides and returns the symmetric Hausdorff
// distance, carrying part-aware witnesses for both directions.
func Hausdorff(a, b [][]geom.Point, opts Options) (Witness, error) {
	cloudA, err := DensifyParts(a, opts)
	if err != nil {
		return Witness{}, err
	}
	cloudB, err := DensifyParts(b, opts)
	if err != nil {
		return Witness{}, err
	}

	return symmetricOnClouds(cloudA, cloudB)
}

// HausdorffDirectedClipped densifies both sides, clips each cloud to box,
// and runs the directed match. Witness indices refer to the clipped clouds.
func HausdorffDirectedClipped(a, b [][]geom.Point, box geom.BoundingBox, opts Options) (DirectedWitness, error) {
	cloudA, cloudB, err := densifyAndClip(a, b, box, opts)
	if err != nil {
		return DirectedWitness{}, err
	}

	return directedOnClouds(cloudA, cloudB)
}

// HausdorffClipped densifies both sides, clips each cloud to box, and runs
// the symmetric match.
func HausdorffClipped(a, b [][]geom.Point, box geom.BoundingBox, opts Options) (Witness, error) {
	cloudA, cloudB, err := densifyAndClip(a, b, box, opts)
	if err != nil {
		return Witness{}, err
	}

	return symmetricOnClouds(cloudA, cloudB)
}

func densifyAndClip(a, b [][]geom.Point, box geom.BoundingBox, opts Options) (Cloud, Cloud, error) {
	cloudA, err := DensifyParts(a, opts)
	if err != nil {
		return Cloud{}, Cloud{}, err
	}
	cloudB, err := DensifyParts(b, opts)
	if err != nil {
		return Cloud{}, Cloud{}, err
	}

	if cloudA, err = cloudA.Clip(box); err != nil {
		return Cloud{}, Cloud{}, err
	}
	if cloudB, err = cloudB.Clip(box); err != nil {
		return Cloud{}, Cloud{}, err
	}

	return cloudA, cloudB, nil
}

func directedOnClouds(a, b Cloud) (DirectedWitness, error) {
	flat, err := hausdorff.Directed(a.Samples(), b.Samples())
	if err != nil {
		return DirectedWitness{}, err
	}

	return partAwareWitness(flat, a, b), nil
}

func symmetricOnClouds(a, b Cloud) (Witness, error) {
	forward, err := directedOnClouds(a, b)
	if err != nil {
		return Witness{}, err
	}
	reverse, err := directedOnClouds(b, a)
	if err != nil {
		return Witness{}, err
	}

	d := forward.DistanceMeters
	if reverse.DistanceMeters > d {
		d = reverse.DistanceMeters
	}

	return Witness{DistanceMeters: d, AToB: forward, BToA: reverse}, nil
}

// partAwareWitness lifts a flat-index witness into part-relative terms and
// attaches the realizing coordinates.
func partAwareWitness(flat hausdorff.DirectedWitness, src, dst Cloud) DirectedWitness {
	srcPart, srcIndex, _ := src.Locate(flat.OriginIndex)
	dstPart, dstIndex, _ := dst.Locate(flat.CandidateIndex)

	return DirectedWitness{
		DistanceMeters: flat.DistanceMeters,
		SourcePart:     srcPart,
		SourceIndex:    srcIndex,
		TargetPart:     dstPart,
		TargetIndex:    dstIndex,
		SourceCoord:    src.Samples()[flat.OriginIndex],
		TargetCoord:    dst.Samples()[flat.CandidateIndex],
	}
}
