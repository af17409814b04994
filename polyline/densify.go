package polyline

import (
	"fmt"
	"math"

	"github.com/katalvlaran/geodist/geodesic"
	"github.com/katalvlaran/geodist/geom"
	"github.com/katalvlaran/geodist/hausdorff"
)

// Cloud holds the flattened samples of a densified multi-part polyline
// together with the offsets delimiting each part. Offsets always start at 0
// and end at the sample count, so part i spans samples[offsets[i]:offsets[i+1]].
type Cloud struct {
	samples []geom.Point
	offsets []int
}

// Samples returns the flattened sample run. The slice is owned by the Cloud
// and must not be modified.
func (c Cloud) Samples() []geom.Point { return c.samples }

// Len returns the total sample count.
func (c Cloud) Len() int { return len(c.samples) }

// Parts returns the number of parts.
func (c Cloud) Parts() int {
	if len(c.offsets) == 0 {
		return 0
	}

	return len(c.offsets) - 1
}

// PartOffsets returns the offsets delimiting each part within Samples. The
// slice is owned by the Cloud and must not be modified.
func (c Cloud) PartOffsets() []int { return c.offsets }

// Part returns the samples of part i.
func (c Cloud) Part(i int) []geom.Point {
	return c.samples[c.offsets[i]:c.offsets[i+1]]
}

// Locate maps a flat sample index to its (part, index-within-part) pair.
// ok is false when flat is out of range.
func (c Cloud) Locate(flat int) (part, index int, ok bool) {
	if flat < 0 || flat >= len(c.samples) {
		return -1, -1, false
	}
	for p := 0; p+1 < len(c.offsets); p++ {
		if flat < c.offsets[p+1] {
			return p, flat - c.offsets[p], true
		}
	}

	return -1, -1, false
}

// Clip keeps the samples inside box, preserving part structure: surviving
// samples stay in order and offsets are recomputed, with emptied parts
// remaining as zero-width spans. A Cloud left with no samples at all yields
// hausdorff.ErrEmptyPointSet.
func (c Cloud) Clip(box geom.BoundingBox) (Cloud, error) {
	filtered := make([]geom.Point, 0, len(c.samples))
	offsets := make([]int, 1, len(c.offsets))

	for p := 0; p+1 < len(c.offsets); p++ {
		for _, sample := range c.samples[c.offsets[p]:c.offsets[p+1]] {
			if box.Contains(sample) {
				filtered = append(filtered, sample)
			}
		}
		offsets = append(offsets, len(filtered))
	}

	if len(filtered) == 0 {
		return Cloud{}, fmt.Errorf("bounding box removed every sample: %w", hausdorff.ErrEmptyPointSet)
	}

	return Cloud{samples: filtered, offsets: offsets}, nil
}

// Densify resamples a single polyline so no subsegment exceeds the spacing
// knobs in opts. The original vertices are always among the samples.
// Consecutive duplicate vertices collapse first; fewer than two distinct
// vertices is ErrDegeneratePolyline, and a result larger than opts.SampleCap
// is ErrSampleCapExceeded.
func Densify(vertices []geom.Point, opts Options) ([]geom.Point, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	deduped := collapseDuplicates(vertices)
	if len(deduped) < 2 {
		return nil, fmt.Errorf("need at least 2 distinct vertices, have %d: %w",
			len(deduped), ErrDegeneratePolyline)
	}

	segments := buildSegments(deduped, opts)

	return emitSamples(segments, deduped, opts.SampleCap, -1)
}

// DensifyParts densifies each part of a multi-part polyline and flattens the
// results into one Cloud. The sample cap applies to the flattened total, and
// the pre-flight check runs before any part's samples are emitted into the
// result.
func DensifyParts(parts [][]geom.Point, opts Options) (Cloud, error) {
	if err := opts.validate(); err != nil {
		return Cloud{}, err
	}

	samples := make([]geom.Point, 0)
	offsets := make([]int, 1, len(parts)+1)

	total := 0
	for partIndex, part := range parts {
		deduped := collapseDuplicates(part)
		if len(deduped) < 2 {
			return Cloud{}, fmt.Errorf("part %d has %d distinct vertices, need at least 2: %w",
				partIndex, len(deduped), ErrDegeneratePolyline)
		}

		segments := buildSegments(deduped, opts)
		predicted := total + expectedSamples(segments)
		if predicted > opts.SampleCap {
			return Cloud{}, fmt.Errorf("part %d pushes sample count to %d, cap is %d: %w",
				partIndex, predicted, opts.SampleCap, ErrSampleCapExceeded)
		}

		emitted, err := emitSamples(segments, deduped, opts.SampleCap, partIndex)
		if err != nil {
			return Cloud{}, err
		}
		total = predicted
		samples = append(samples, emitted...)
		offsets = append(offsets, len(samples))
	}

	return Cloud{samples: samples, offsets: offsets}, nil
}

// segment is one non-degenerate vertex pair with its precomputed split plan.
type segment struct {
	startIndex      int
	endIndex        int
	centralAngleRad float64
	splitCount      int
}

// buildSegments plans the split of every consecutive vertex pair.
// Zero-length pairs (possible even for distinct vertices, e.g. two points at
// a pole) are skipped while the ordering is preserved.
func buildSegments(vertices []geom.Point, opts Options) []segment {
	segments := make([]segment, 0, len(vertices)-1)
	for i := 0; i+1 < len(vertices); i++ {
		distance := geodesic.Distance(vertices[i], vertices[i+1])
		if distance == 0 {
			continue
		}

		segments = append(segments, segment{
			startIndex:      i,
			endIndex:        i + 1,
			centralAngleRad: distance / geodesic.EarthRadiusMeters,
			splitCount:      splitCount(distance, opts),
		})
	}

	return segments
}

// splitCount returns how many subsegments a segment of the given length
// needs; the stricter knob wins.
func splitCount(distanceM float64, opts Options) int {
	splits := 1

	if opts.MaxSegmentLengthMeters > 0 {
		if n := int(math.Ceil(distanceM / opts.MaxSegmentLengthMeters)); n > splits {
			splits = n
		}
	}
	if opts.MaxSegmentAngleDeg > 0 {
		angleDeg := distanceM / geodesic.EarthRadiusMeters * (180.0 / math.Pi)
		if n := int(math.Ceil(angleDeg / opts.MaxSegmentAngleDeg)); n > splits {
			splits = n
		}
	}

	return splits
}

func expectedSamples(segments []segment) int {
	if len(segments) == 0 {
		// Every pair collapsed; a single sample stands in for the part.
		return 1
	}

	total := 1
	for _, s := range segments {
		total += s.splitCount
	}

	return total
}

// emitSamples materializes the planned splits. partIndex is -1 for the
// single-polyline form and only feeds error context.
func emitSamples(segments []segment, vertices []geom.Point, sampleCap, partIndex int) ([]geom.Point, error) {
	if len(segments) == 0 {
		return []geom.Point{vertices[0]}, nil
	}

	total := expectedSamples(segments)
	if total > sampleCap {
		if partIndex >= 0 {
			return nil, fmt.Errorf("part %d needs %d samples, cap is %d: %w",
				partIndex, total, sampleCap, ErrSampleCapExceeded)
		}

		return nil, fmt.Errorf("polyline needs %d samples, cap is %d: %w",
			total, sampleCap, ErrSampleCapExceeded)
	}

	samples := make([]geom.Point, 0, total)
	samples = append(samples, vertices[segments[0].startIndex])
	for _, s := range segments {
		samples = appendInterpolated(samples, vertices[s.startIndex], vertices[s.endIndex],
			s.centralAngleRad, s.splitCount)
	}

	return samples, nil
}

// appendInterpolated appends splitCount great-circle interpolated samples,
// ending exactly at end's position.
func appendInterpolated(dst []geom.Point, start, end geom.Point, centralAngleRad float64, splitCount int) []geom.Point {
	sinDelta := math.Sin(centralAngleRad)
	if sinDelta == 0 {
		// Extremely short arc below sin resolution; land on the endpoint.
		return append(dst, end)
	}

	lat1, lon1 := start.Lat()*deg2rad, start.Lon()*deg2rad
	lat2, lon2 := end.Lat()*deg2rad, end.Lon()*deg2rad
	sinLat1, cosLat1 := math.Sincos(lat1)
	sinLat2, cosLat2 := math.Sincos(lat2)

	for step := 1; step <= splitCount; step++ {
		f := float64(step) / float64(splitCount)
		a := math.Sin((1.0-f)*centralAngleRad) / sinDelta
		b := math.Sin(f*centralAngleRad) / sinDelta

		x := a*cosLat1*math.Cos(lon1) + b*cosLat2*math.Cos(lon2)
		y := a*cosLat1*math.Sin(lon1) + b*cosLat2*math.Sin(lon2)
		z := a*sinLat1 + b*sinLat2

		lat := math.Atan2(z, math.Hypot(x, y)) * rad2deg
		lon := math.Atan2(y, x) * rad2deg

		// atan2 keeps the results inside the valid coordinate ranges.
		dst = append(dst, geom.MustPoint(lat, lon))
	}

	return dst
}

const (
	deg2rad = math.Pi / 180.0
	rad2deg = 180.0 / math.Pi
)

// collapseDuplicates drops consecutive repeats so sample indices stay
// deterministic.
func collapseDuplicates(vertices []geom.Point) []geom.Point {
	deduped := make([]geom.Point, 0, len(vertices))
	for i, v := range vertices {
		if i == 0 || v != deduped[len(deduped)-1] {
			deduped = append(deduped, v)
		}
	}

	return deduped
}
