// Package polygon validates polygon rings and matches polygon boundaries.
//
// What:
//
//   - Polygon — an exterior ring plus zero or more holes, validated at
//     construction: rings are closed, oriented (counterclockwise exterior,
//     clockwise holes), and holes lie inside the exterior.
//   - DensifyBoundaries — resample all rings through the polyline densifier,
//     ordered exterior first, then each hole.
//   - AreaSquareMeters — spherical surface area; holes subtract.
//   - HausdorffBoundary / HausdorffBoundaryDirected — boundary-to-boundary
//     Hausdorff with part-aware witnesses, where part 0 is the exterior and
//     part i is hole i-1.
//
// Validation:
//
//   - Consecutive duplicate vertices collapse first; a ring then needs at
//     least 4 vertices (triangle plus closing vertex).
//   - Closure tolerance is 1e-9 degrees on both coordinates.
//   - Orientation is judged by the shoelace sign in lon/lat space; rings are
//     treated as simple (non-self-intersecting).
//
// Errors:
//
//   - polyline.ErrDegeneratePolyline — ring too short after dedup.
//   - ErrOpenRing                    — first and last vertices disagree.
//   - ErrRingOrientation             — exterior not CCW or hole not CW.
//   - ErrHoleOutsideShell            — a hole's vertices leave the exterior.
package polygon
