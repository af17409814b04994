// Package batch applies the scalar geodesic kernels elementwise over
// equal-length slices, preserving input order in the output.
//
// What:
//
//   - Map — generic elementwise application of any pairwise operation, with
//     a parallel bulk path for large inputs and a sequential path for small
//     ones.
//   - Distances / Bearings — spherical kernels over point pairs.
//   - DistancesOnEllipsoid / BearingsOnEllipsoid — ellipsoidal kernels.
//   - Distances3D — chord distance over altitude-carrying pairs.
//
// Guarantees:
//
//   - Output index i always corresponds to input pair i, on either path.
//   - Identical inputs yield identical outputs regardless of which path ran;
//     the parallel split only partitions work, never reorders it.
//   - When the operation fails for several pairs, the error for the
//     lowest-index pair is returned, unchanged. Kernel errors are never
//     masked or rewrapped.
//
// Errors:
//
//   - ErrVectorization — input slices have different lengths.
//
// The bulk path partitions pairs into contiguous chunks, one per available
// CPU, synchronized with errgroup. Inputs are read-only and each output slot
// is written by exactly one goroutine, so no locking is involved.
package batch
