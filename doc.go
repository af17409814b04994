// Package geodist is your toolbox for measuring and comparing shapes on
// the Earth — from single geodesic distances to set-level spatial matching.
//
// 🌍 What is geodist?
//
//	A deterministic, witness-bearing geodesic measurement library that
//	brings together:
//		• Validated geometry values: Point, Point3D, BoundingBox, Ellipsoid
//		• Geodesic kernel: haversine distance & bearings, Vincenty inverse
//		  solver on arbitrary ellipsoids, 3D chord distance
//		• Hausdorff matching: directed/symmetric distances with realizing
//		  index pairs ("witnesses"), bounding-box clipping, 3D variants
//		• Polyline tooling: geodesic densification, polyline Hausdorff and
//		  Chamfer distances with part-aware witnesses
//		• Polygon rings: validated shells & holes, spherical area, boundary
//		  matching
//		• DTW track alignment for softer trajectory comparison
//		• Batch layer: elementwise kernels over equal-length sequences with
//		  a parallel bulk path
//
// ✨ Why choose geodist?
//
//   - Validated at construction — no value exists in a half-valid state
//   - Deterministic — stable iteration order, first-encountered tie-breaks,
//     identical inputs always yield identical witnesses
//   - Pure functions — no process-wide state, no I/O, safe for concurrent use
//
// Everything is organized under seven subpackages:
//
//	geom/      — immutable coordinate & geometry value types + validation
//	geodesic/  — spherical and ellipsoidal distance/bearing kernels
//	hausdorff/ — directed & symmetric Hausdorff distances with witnesses
//	polyline/  — densification, polyline Hausdorff & Chamfer matching
//	polygon/   — validated rings, spherical area, boundary matching
//	align/     — Dynamic Time Warping over geographic point tracks
//	batch/     — vectorized elementwise dispatch for the pairwise kernels
//
// Quick ASCII example:
//
//	A: ●───●───●          directed Hausdorff A→B = the worst of A's
//	B:   ●───●───●        nearest-neighbor distances into B
//
// Dive into the per-package docs for formulas, complexity notes, and the
// exact error contracts.
package geodist
