// Package align matches two GPS tracks with Dynamic Time Warping over
// geodesic distance, a softer companion to the worst-case Hausdorff metrics.
//
// What:
//
//	DTW finds the monotonic pairing of samples that minimizes the summed
//	great-circle distance between matched points, tolerating tracks recorded
//	at different speeds or sampling rates. Useful for:
//	  • route similarity and map-matching candidates
//	  • deduplicating recorded trips
//	  • aligning a noisy trace against a reference path
//
// ⚙️ Usage:
//
//	opts := &align.Options{
//	  Window:     10,               // Sakoe–Chiba band ±10 samples
//	  ReturnPath: true,
//	  MemoryMode: align.FullMatrix,
//	}
//	cost, path, err := align.DTW(trackA, trackB, opts)
//
// Performance:
//
//   - Time:   O(N·M)
//   - Memory: O(N·M) (FullMatrix) or O(M) (TwoRows; no path recovery)
//
// Errors:
//
//   - ErrEmptyTrack       — either track has no points.
//   - ErrPathNeedsMatrix  — ReturnPath with MemoryMode=TwoRows.
package align
