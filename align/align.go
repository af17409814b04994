package align

import (
	"math"

	"github.com/katalvlaran/geodist/geodesic"
	"github.com/katalvlaran/geodist/geom"
)

// DTW computes the Dynamic Time Warping cost between two tracks, where the
// local cost of matching a[i] with b[j] is their great-circle distance in
// meters. Returns (cost, path, error); path is nil unless opts.ReturnPath.
//
// Algorithm outline:
//  1. D[0][0] = 0, first row and column +Inf.
//  2. D[i][j] = dist(a[i-1], b[j-1]) + min(D[i-1][j]+penalty,
//     D[i][j-1]+penalty, D[i-1][j-1]) inside the window band.
//  3. cost = D[n][m]; with FullMatrix storage the optimal path is recovered
//     by walking predecessors from (n, m), preferring diagonal moves on ties
//     so the result is deterministic.
func DTW(a, b []geom.Point, opts *Options) (cost float64, path []Coord, err error) {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return 0, nil, ErrEmptyTrack
	}

	window := math.MaxInt32
	penalty := 0.0
	mem := FullMatrix
	wantPath := false
	if opts != nil {
		if opts.Window > 0 {
			window = opts.Window
		}
		penalty = opts.SlopePenalty
		mem = opts.MemoryMode
		wantPath = opts.ReturnPath
	}
	if wantPath && mem != FullMatrix {
		return 0, nil, ErrPathNeedsMatrix
	}

	inf := math.Inf(1)

	var dp [][]float64
	if mem == FullMatrix {
		dp = make([][]float64, n+1)
		for i := range dp {
			dp[i] = make([]float64, m+1)
		}
		for i := 1; i <= n; i++ {
			dp[i][0] = inf
		}
	} else {
		dp = [][]float64{make([]float64, m+1), make([]float64, m+1)}
	}
	for j := 1; j <= m; j++ {
		dp[0][j] = inf
	}

	for i := 1; i <= n; i++ {
		var row, prevRow []float64
		if mem == FullMatrix {
			row, prevRow = dp[i], dp[i-1]
		} else {
			row, prevRow = dp[i%2], dp[(i-1)%2]
			row[0] = inf
		}
		for j := 1; j <= m; j++ {
			if abs(i-j) > window {
				row[j] = inf
				continue
			}
			ins := prevRow[j] + penalty
			del := row[j-1] + penalty
			match := prevRow[j-1]
			row[j] = geodesic.Distance(a[i-1], b[j-1]) + min3(ins, del, match)
		}
	}

	if mem == FullMatrix {
		cost = dp[n][m]
	} else {
		cost = dp[n%2][m]
	}

	if wantPath {
		path = backtrack(dp, a, b, penalty)
	}

	return cost, path, nil
}

// backtrack walks predecessors from (n, m) to (1, 1). The diagonal move wins
// ties, then the vertical, keeping paths deterministic.
func backtrack(dp [][]float64, a, b []geom.Point, penalty float64) []Coord {
	i, j := len(a), len(b)
	path := make([]Coord, 0, i+j)

	for i > 0 && j > 0 {
		path = append(path, Coord{I: i - 1, J: j - 1})
		if i == 1 && j == 1 {
			break
		}

		match, ins, del := math.Inf(1), math.Inf(1), math.Inf(1)
		if i > 1 && j > 1 {
			match = dp[i-1][j-1]
		}
		if i > 1 {
			ins = dp[i-1][j] + penalty
		}
		if j > 1 {
			del = dp[i][j-1] + penalty
		}

		switch {
		case match <= ins && match <= del:
			i, j = i-1, j-1
		case ins <= del:
			i--
		default:
			j--
		}
	}

	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}

		return c
	}
	if b < c {
		return b
	}

	return c
}
