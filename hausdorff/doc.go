// Package hausdorff computes exact Hausdorff distances between finite point
// sets, with witnesses identifying the realizing pair of points.
//
// What:
//
//   - Directed / Distance — one-way and symmetric Hausdorff over []geom.Point
//     using great-circle distance.
//   - Directed3D / Distance3D — the same over []geom.Point3D using chord
//     distance, so altitude differences count.
//   - DirectedClipped / DistanceClipped (and 3D forms) — restrict both sets
//     to a geom.BoundingBox before matching.
//   - PolygonBoundary — symmetric Hausdorff over the vertices of two closed
//     rings, with the duplicated closing vertex dropped.
//
// Semantics:
//
//   - The directed distance from A to B is the largest over origins in A of
//     the distance to the nearest candidate in B; the symmetric distance is
//     the maximum of the two directions.
//   - Witnesses are deterministic: when several candidates tie for nearest
//     the lowest index wins, and when several origins tie for farthest the
//     lowest index wins. Reordering inputs can therefore change witness
//     indices but never the distance.
//   - Clipped variants report witness indices into the original input sets:
//     a point that survives the filter keeps its caller-relative position.
//
// Errors:
//
//   - ErrEmptyPointSet — a set is empty, or clipping removed every point.
//
// Complexity: O(|A|·|B|) exhaustive search. There is no spatial index; for
// the set sizes this package targets the exact scan is both simplest and
// fully deterministic.
package hausdorff
