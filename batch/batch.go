package batch

import (
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ErrVectorization indicates the two input slices cannot be zipped, i.e.
// their lengths differ.
var ErrVectorization = errors.New("batch: vectorization error")

// parallelThreshold is the pair count below which the sequential path runs;
// goroutine fan-out costs more than it saves on small inputs.
const parallelThreshold = 256

// Map applies op to every aligned pair (as[i], bs[i]) and returns the
// results in input order. Large inputs run chunked across CPUs; on any
// failure the error of the lowest-index failing pair is returned unchanged.
func Map[A, B, R any](as []A, bs []B, op func(A, B) (R, error)) ([]R, error) {
	if len(as) != len(bs) {
		return nil, fmt.Errorf("input lengths differ: %d vs %d: %w", len(as), len(bs), ErrVectorization)
	}
	if len(as) == 0 {
		return []R{}, nil
	}
	if len(as) < parallelThreshold {
		return mapSequential(as, bs, op)
	}

	return mapParallel(as, bs, op)
}

func mapSequential[A, B, R any](as []A, bs []B, op func(A, B) (R, error)) ([]R, error) {
	out := make([]R, len(as))
	for i := range as {
		r, err := op(as[i], bs[i])
		if err != nil {
			return nil, err
		}
		out[i] = r
	}

	return out, nil
}

func mapParallel[A, B, R any](as []A, bs []B, op func(A, B) (R, error)) ([]R, error) {
	workers := runtime.GOMAXPROCS(0)
	if workers > len(as) {
		workers = len(as)
	}
	chunk := (len(as) + workers - 1) / workers

	out := make([]R, len(as))
	// One error slot per chunk; scanning the slots in chunk order afterwards
	// recovers the lowest-index failure deterministically.
	chunkErrs := make([]error, workers)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if end > len(as) {
			end = len(as)
		}
		if start >= end {
			break
		}
		w := w
		g.Go(func() error {
			for i := start; i < end; i++ {
				r, err := op(as[i], bs[i])
				if err != nil {
					chunkErrs[w] = err
					return nil
				}
				out[i] = r
			}

			return nil
		})
	}
	// Worker errors land in chunkErrs, so Wait only synchronizes.
	_ = g.Wait()

	for _, err := range chunkErrs {
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}
