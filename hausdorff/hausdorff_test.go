package hausdorff_test

import (
	"testing"

	"github.com/katalvlaran/geodist/geodesic"
	"github.com/katalvlaran/geodist/geom"
	"github.com/katalvlaran/geodist/hausdorff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDirected_WitnessIdentifiesFarthestOrigin pins the reference scenario:
// with A = {(0,0), (0,1)} and B = {(0,0)}, the second origin realizes the
// distance against the only candidate.
func TestDirected_WitnessIdentifiesFarthestOrigin(t *testing.T) {
	a := []geom.Point{geom.MustPoint(0, 0), geom.MustPoint(0, 1)}
	b := []geom.Point{geom.MustPoint(0, 0)}

	w, err := hausdorff.Directed(a, b)
	require.NoError(t, err)

	assert.Equal(t, 1, w.OriginIndex)
	assert.Equal(t, 0, w.CandidateIndex)
	assert.InDelta(t, geodesic.Distance(a[1], b[0]), w.DistanceMeters, 1e-9)
}

// TestDirected_EmptySets verifies both empty-input arms.
func TestDirected_EmptySets(t *testing.T) {
	pts := []geom.Point{geom.MustPoint(0, 0)}

	_, err := hausdorff.Directed(nil, pts)
	assert.ErrorIs(t, err, hausdorff.ErrEmptyPointSet)

	_, err = hausdorff.Directed(pts, nil)
	assert.ErrorIs(t, err, hausdorff.ErrEmptyPointSet)

	_, err = hausdorff.Distance(nil, nil)
	assert.ErrorIs(t, err, hausdorff.ErrEmptyPointSet)
}

// TestDirected_IdenticalSetsAreZero verifies every origin finds itself.
func TestDirected_IdenticalSetsAreZero(t *testing.T) {
	pts := []geom.Point{
		geom.MustPoint(10, 10),
		geom.MustPoint(20, 20),
		geom.MustPoint(30, 30),
	}

	w, err := hausdorff.Directed(pts, pts)
	require.NoError(t, err)
	assert.Zero(t, w.DistanceMeters)
}

// TestDirected_TieBreaksPreferLowestIndex verifies the deterministic witness
// rule: equidistant candidates resolve to the lowest candidate index, and
// equally-far origins resolve to the lowest origin index.
func TestDirected_TieBreaksPreferLowestIndex(t *testing.T) {
	// Two origins symmetric about the only candidate: both are equally far.
	a := []geom.Point{geom.MustPoint(0, -1), geom.MustPoint(0, 1)}
	b := []geom.Point{geom.MustPoint(0, 0)}

	w, err := hausdorff.Directed(a, b)
	require.NoError(t, err)
	assert.Equal(t, 0, w.OriginIndex, "first of the tied origins wins")

	// One origin with two equidistant candidates east and west.
	a = []geom.Point{geom.MustPoint(0, 0)}
	b = []geom.Point{geom.MustPoint(0, 1), geom.MustPoint(0, -1)}

	w, err = hausdorff.Directed(a, b)
	require.NoError(t, err)
	assert.Equal(t, 0, w.CandidateIndex, "first of the tied candidates wins")
}

// TestDistance_IsMaxOfDirections verifies the symmetric result carries both
// directed witnesses and equals their maximum.
func TestDistance_IsMaxOfDirections(t *testing.T) {
	a := []geom.Point{geom.MustPoint(0, 0), geom.MustPoint(0, 1)}
	b := []geom.Point{geom.MustPoint(0, 0), geom.MustPoint(0, 0.25)}

	w, err := hausdorff.Distance(a, b)
	require.NoError(t, err)

	fwd, err := hausdorff.Directed(a, b)
	require.NoError(t, err)
	rev, err := hausdorff.Directed(b, a)
	require.NoError(t, err)

	assert.Equal(t, fwd, w.AToB)
	assert.Equal(t, rev, w.BToA)
	assert.Equal(t, maxF(fwd.DistanceMeters, rev.DistanceMeters), w.DistanceMeters)
}

// TestDistanceClipped_CoveringBoxIsNoOp verifies clipping with a box that
// contains everything reproduces the unclipped result exactly.
func TestDistanceClipped_CoveringBoxIsNoOp(t *testing.T) {
	a := []geom.Point{geom.MustPoint(1, 1), geom.MustPoint(2, 2)}
	b := []geom.Point{geom.MustPoint(1.5, 1.5)}
	world := geom.MustBoundingBox(-90, 90, -180, 180)

	clipped, err := hausdorff.DistanceClipped(a, b, world)
	require.NoError(t, err)
	plain, err := hausdorff.Distance(a, b)
	require.NoError(t, err)
	assert.Equal(t, plain, clipped)
}

// TestDistanceClipped_RemovesOutliers verifies an origin outside the box no
// longer dominates the result, and that the surviving witness keeps its
// position in the caller's input.
func TestDistanceClipped_RemovesOutliers(t *testing.T) {
	inside := geom.MustPoint(0.5, 0.5)
	outside := geom.MustPoint(40, 40)
	box := geom.MustBoundingBox(-1, 1, -1, 1)

	w, err := hausdorff.DistanceClipped(
		[]geom.Point{outside, inside},
		[]geom.Point{inside},
		box)
	require.NoError(t, err)
	assert.Zero(t, w.DistanceMeters)
	assert.Equal(t, 1, w.AToB.OriginIndex, "the survivor keeps its original index")
	assert.Equal(t, 0, w.AToB.CandidateIndex)
	assert.Equal(t, 0, w.BToA.OriginIndex)
	assert.Equal(t, 1, w.BToA.CandidateIndex)
}

// TestDirectedClipped_WitnessKeepsOriginalIndices pins the reference
// scenario: clipping A = {(0,0), (0,1)} down to its second point must still
// report origin index 1, not the survivor's position in the filtered set.
func TestDirectedClipped_WitnessKeepsOriginalIndices(t *testing.T) {
	origin := geom.MustPoint(0, 0)
	east := geom.MustPoint(0, 1)
	box := geom.MustBoundingBox(-1, 1, 0.5, 1.5)

	w, err := hausdorff.DirectedClipped(
		[]geom.Point{origin, east},
		[]geom.Point{east},
		box)
	require.NoError(t, err)
	assert.Zero(t, w.DistanceMeters)
	assert.Equal(t, 1, w.OriginIndex)
	assert.Equal(t, 0, w.CandidateIndex)
}

// TestDistanceClipped_AllRemoved verifies the empty-after-clip error.
func TestDistanceClipped_AllRemoved(t *testing.T) {
	pts := []geom.Point{geom.MustPoint(50, 50)}
	box := geom.MustBoundingBox(-1, 1, -1, 1)

	_, err := hausdorff.DistanceClipped(pts, pts, box)
	assert.ErrorIs(t, err, hausdorff.ErrEmptyPointSet)
}

// TestPolygonBoundary_DropsClosingVertex verifies closed and open renditions
// of the same ring produce identical witnesses.
func TestPolygonBoundary_DropsClosingVertex(t *testing.T) {
	open := []geom.Point{
		geom.MustPoint(0, 0),
		geom.MustPoint(0, 1),
		geom.MustPoint(1, 1),
		geom.MustPoint(1, 0),
	}
	closed := append(append([]geom.Point{}, open...), open[0])

	shifted := make([]geom.Point, len(closed))
	for i, p := range closed {
		shifted[i] = geom.MustPoint(p.Lat(), p.Lon()+2)
	}

	fromClosed, err := hausdorff.PolygonBoundary(closed, shifted)
	require.NoError(t, err)

	shiftedOpen := shifted[:len(shifted)-1]
	fromOpen, err := hausdorff.PolygonBoundary(open, shiftedOpen)
	require.NoError(t, err)

	assert.Equal(t, fromOpen, fromClosed)
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}

	return b
}
