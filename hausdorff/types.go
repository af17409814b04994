package hausdorff

import "errors"

// ErrEmptyPointSet indicates a point set with nothing to match: an empty
// input slice, or a set left empty after bounding-box clipping.
var ErrEmptyPointSet = errors.New("hausdorff: empty point set")

// DirectedWitness reports a one-way Hausdorff distance together with the
// realizing pair: the origin that is farthest from its nearest candidate.
type DirectedWitness struct {
	// DistanceMeters is the directed Hausdorff distance.
	DistanceMeters float64
	// OriginIndex is the index in the first set of the farthest origin.
	OriginIndex int
	// CandidateIndex is the index in the second set of that origin's nearest
	// candidate.
	CandidateIndex int
}

// Witness reports a symmetric Hausdorff distance together with both directed
// results. DistanceMeters equals the larger of the two directions.
type Witness struct {
	DistanceMeters float64
	AToB           DirectedWitness
	BToA           DirectedWitness
}
