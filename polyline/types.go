package polyline

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/geodist/geom"
)

// Default densification settings.
const (
	DefaultMaxSegmentLengthMeters = 100.0
	DefaultMaxSegmentAngleDeg     = 0.1
	DefaultSampleCap              = 50_000
)

var (
	// ErrMissingSpacingKnob indicates that neither MaxSegmentLengthMeters nor
	// MaxSegmentAngleDeg was set; densification has no spacing to enforce.
	ErrMissingSpacingKnob = fmt.Errorf("%w: no spacing knob set", geom.ErrInvalidDistance)

	// ErrSampleCapExceeded indicates the requested resampling would emit more
	// samples than Options.SampleCap allows. No samples are produced.
	ErrSampleCapExceeded = errors.New("polyline: sample cap exceeded")

	// ErrDegeneratePolyline indicates a part with fewer than two distinct
	// vertices after consecutive duplicates collapse.
	ErrDegeneratePolyline = fmt.Errorf("%w: degenerate polyline", geom.ErrInvalidGeometry)

	// ErrBadReduction indicates a Reduction value outside the enum.
	ErrBadReduction = errors.New("polyline: unknown reduction")
)

// Options controls densification. The two spacing knobs are independent;
// zero means unset, and at least one must be set. When both are set the
// stricter of the two wins per segment.
type Options struct {
	// MaxSegmentLengthMeters bounds the chord length of each emitted
	// subsegment. Zero disables the length knob.
	MaxSegmentLengthMeters float64
	// MaxSegmentAngleDeg bounds the central angle each subsegment subtends.
	// Zero disables the angle knob.
	MaxSegmentAngleDeg float64
	// SampleCap bounds the total sample count across all parts of one call.
	SampleCap int
}

// DefaultOptions returns the standard settings: 100 m segments, 0.1° spans,
// 50000 samples.
func DefaultOptions() Options {
	return Options{
		MaxSegmentLengthMeters: DefaultMaxSegmentLengthMeters,
		MaxSegmentAngleDeg:     DefaultMaxSegmentAngleDeg,
		SampleCap:              DefaultSampleCap,
	}
}

func (o Options) validate() error {
	if o.MaxSegmentLengthMeters == 0 && o.MaxSegmentAngleDeg == 0 {
		return ErrMissingSpacingKnob
	}
	if err := validateKnob("max_segment_length_m", o.MaxSegmentLengthMeters); err != nil {
		return err
	}
	if err := validateKnob("max_segment_angle_deg", o.MaxSegmentAngleDeg); err != nil {
		return err
	}
	if o.SampleCap < 2 {
		return fmt.Errorf("sample_cap=%d must allow at least 2 samples: %w",
			o.SampleCap, geom.ErrInvalidGeometry)
	}

	return nil
}

// validateKnob rejects a set knob that is negative or non-finite.
func validateKnob(field string, v float64) error {
	if v == 0 {
		return nil
	}
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s=%v must be a finite positive value: %w", field, v, geom.ErrInvalidDistance)
	}

	return nil
}

// Reduction selects how Chamfer aggregates per-sample nearest distances.
type Reduction int

const (
	// ReduceMean averages the nearest-neighbor distances. Aggregates have no
	// single realizing pair, so mean results carry no witness.
	ReduceMean Reduction = iota
	// ReduceMax takes the maximum, which coincides with the directed
	// Hausdorff distance and carries a witness.
	ReduceMax
)

// String implements fmt.Stringer.
func (r Reduction) String() string {
	switch r {
	case ReduceMean:
		return "mean"
	case ReduceMax:
		return "max"
	default:
		return fmt.Sprintf("Reduction(%d)", int(r))
	}
}

// DirectedWitness locates the realizing sample pair of a directed polyline
// distance: the part each sample came from, the sample's index within that
// part's densified run, and the coordinates themselves.
type DirectedWitness struct {
	DistanceMeters float64
	SourcePart     int
	SourceIndex    int
	TargetPart     int
	TargetIndex    int
	SourceCoord    geom.Point
	TargetCoord    geom.Point
}

// Witness reports a symmetric polyline Hausdorff distance with both directed
// witnesses. DistanceMeters equals the larger direction.
type Witness struct {
	DistanceMeters float64
	AToB           DirectedWitness
	BToA           DirectedWitness
}

// DirectedChamferResult reports a one-way Chamfer distance. Witness is nil
// under ReduceMean and set under ReduceMax.
type DirectedChamferResult struct {
	DistanceMeters float64
	Reduction      Reduction
	Witness        *DirectedWitness
}

// ChamferResult reports a symmetric Chamfer distance: the maximum of the two
// directed results, both carried.
type ChamferResult struct {
	DistanceMeters float64
	Reduction      Reduction
	AToB           DirectedChamferResult
	BToA           DirectedChamferResult
}
