// Package polyline resamples polylines into dense point clouds and matches
// them with part-aware Hausdorff and Chamfer distances.
//
// What:
//
//   - Densify / DensifyParts — insert great-circle interpolated samples along
//     each segment so that no subsegment exceeds the configured length or
//     central angle; multi-part input flattens into a Cloud that remembers
//     which samples belong to which part.
//   - HausdorffDirected / Hausdorff (+ Clipped forms) — densify each side,
//     pool the parts, and run the exact Hausdorff scan; witnesses name the
//     contributing part, the sample index within it, and the realizing
//     coordinates.
//   - ChamferDirected / Chamfer (+ Clipped forms) — aggregate (mean or max)
//     nearest-neighbor distance over the densified samples. Mean carries no
//     witness, max carries a Hausdorff-shaped one.
//
// Options:
//
//   - MaxSegmentLengthMeters and MaxSegmentAngleDeg are independent spacing
//     knobs; zero means unset, and at least one must be set.
//   - SampleCap bounds the flattened sample count; exceeding it fails before
//     any samples are emitted.
//   - DefaultOptions() is (100 m, 0.1°, 50000 samples).
//
// Properties:
//
//   - Consecutive duplicate vertices collapse before sampling; a part with
//     fewer than two distinct vertices is degenerate.
//   - Densification is idempotent: re-densifying output with equal or looser
//     options adds no samples.
//   - All operations are deterministic; ties resolve to the lowest index.
//
// Errors:
//
//   - ErrMissingSpacingKnob  — both knobs unset.
//   - ErrSampleCapExceeded   — the resampling would exceed SampleCap.
//   - ErrDegeneratePolyline  — fewer than two distinct vertices in a part.
//   - ErrBadReduction        — unknown Reduction value.
//   - hausdorff.ErrEmptyPointSet — clipping removed every sample of a side.
package polyline
