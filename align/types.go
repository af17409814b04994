// Package align defines options and modes for geodesic track alignment.
package align

import "errors"

// MemoryMode controls how DTW stores its dynamic-programming matrix.
//
//   - FullMatrix — keep the entire (n+1)x(m+1) matrix. Allows cost plus a
//     full backtrace of the alignment path. Memory: O(n·m).
//   - TwoRows — keep only the current and previous rows. Memory: O(m), but
//     the path cannot be recovered.
type MemoryMode int

const (
	// FullMatrix mode: store all rows, support path recovery.
	FullMatrix MemoryMode = iota

	// TwoRows mode: rolling storage, cost only.
	TwoRows
)

// Options configures DTW.
//
// Fields:
//   - Window       — maximum |i-j| deviation allowed (Sakoe–Chiba band).
//     Zero or negative means unconstrained.
//   - SlopePenalty — extra cost in meters for insertion/deletion steps,
//     biasing the path toward diagonal moves.
//   - ReturnPath   — backtrack and return the alignment path. Requires
//     MemoryMode=FullMatrix.
//   - MemoryMode   — FullMatrix or TwoRows storage.
type Options struct {
	Window       int
	SlopePenalty float64
	ReturnPath   bool
	MemoryMode   MemoryMode
}

// Coord is one step of an alignment path: sample I of the first track
// matched with sample J of the second.
type Coord struct {
	I int
	J int
}

var (
	// ErrEmptyTrack indicates one or both input tracks are empty.
	ErrEmptyTrack = errors.New("align: input tracks must be non-empty")

	// ErrPathNeedsMatrix indicates path recovery was requested with rolling
	// storage.
	ErrPathNeedsMatrix = errors.New("align: ReturnPath requires MemoryMode=FullMatrix")
)
