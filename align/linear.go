// Package align — LinearSpace engine (Hirschberg divide-and-conquer).
//
// This file holds the bounded-width forward/backward sweeps and the
// recursive recombination. The sweeps keep only two rows of the DP table
// alive at any time, so a single sweep over an n×m sub-rectangle runs in
// O(n·m) time and O(m) space; the recursion processes the A dimension
// linearly while splitting, which caps total auxiliary memory at O(n+m)
// no matter how skewed the optimal splits are.
package align

import (
	"fmt"
	"math"

	"github.com/katalvlaran/dnalign/core"
)

// alignLinear computes the same optimum as alignFull using O(n+m)
// auxiliary space.
//
// Recursive scheme:
//  1. Base case: if either dimension is ≤ 1, one forward sweep is exact
//     and already linear-space; return its final cell.
//  2. Split A at mid = n/2. Compute the forward DP row of A[:mid] vs all
//     of B, and the backward DP row of A[mid:] vs all of B.
//  3. The optimal alignment crosses row mid at the column j* minimizing
//     forward[j] + backward[j]; recombination at that column is provably
//     consistent with a globally optimal alignment.
//  4. Recurse on (A[:mid], B[:j*]) and (A[mid:], B[j*:]) and sum.
//
// Complexity: O(n·m) time — each recursion level does work proportional
// to its sub-rectangle and the levels sum geometrically — and O(n+m)
// auxiliary space, with O(log n) recursion depth since A always halves.
func alignLinear(ai, bi []int8, model core.CostModel) (int64, error) {
	var (
		n = len(ai)
		m = len(bi)
	)

	// 1) Thin strips are computed directly by one bounded-width sweep.
	if n <= 1 || m <= 1 {
		return forwardRow(ai, bi, model)[m], nil
	}

	// 2) Find the optimal split column of B for the crossing at row n/2.
	//    The sweep rows live only inside splitColumn, so they are garbage
	//    before the recursion starts and live auxiliary memory stays
	//    O(n+m) across the whole recursion tree.
	mid := n / 2
	split, err := splitColumn(ai[:mid], ai[mid:], bi, model)
	if err != nil {
		return 0, err
	}

	// 3) Solve both halves independently; their costs add up exactly.
	left, err := alignLinear(ai[:mid], bi[:split], model)
	if err != nil {
		return 0, err
	}
	right, err := alignLinear(ai[mid:], bi[split:], model)
	if err != nil {
		return 0, err
	}

	return left + right, nil
}

// splitColumn recombines one forward and one backward sweep to find the
// column j* of bi at which a globally optimal alignment crosses the
// boundary between top and bottom.
//
// forward[j] is the optimal cost of (top, bi[:j]); backward[j] of
// (bottom, bi[j:]). Their sum at j is the best total cost of any
// alignment crossing at column j, so the argmin is an optimal split.
// Ties resolve to the leftmost column; any tied column is equally valid
// since only the cost is returned.
//
// Complexity: O((len(top)+len(bottom))·len(bi)) time, O(len(bi)) space.
func splitColumn(top, bottom, bi []int8, model core.CostModel) (int, error) {
	f := forwardRow(top, bi, model)
	g := backwardRow(bottom, bi, model)

	// Defensive invariant: both rows span columns 0..m.
	if len(f) != len(g) {
		return 0, fmt.Errorf("%w: forward %d, backward %d", ErrRowMismatch, len(f), len(g))
	}

	var (
		best  = int64(math.MaxInt64)
		split int
		sum   int64
		j     int
	)
	for j = 0; j < len(f); j++ {
		sum = f[j] + g[j]
		if sum < best {
			best = sum
			split = j
		}
	}

	return split, nil
}

// forwardRow returns the last row of the forward DP over ai×bi: entry j
// is the optimal cost of aligning all of ai against bi[:j]. Only two rows
// are kept alive, so the sweep uses O(len(bi)) space.
//
// With len(ai)==0 the returned row is the base case j·gap, which makes
// the empty-prefix cost law directly observable.
//
// Complexity: O(n·m) time, O(m) space.
func forwardRow(ai, bi []int8, model core.CostModel) []int64 {
	var (
		m    = len(bi)
		gap  = model.Gap()
		prev = make([]int64, m+1)
		cur  = make([]int64, m+1)
		i, j int
	)

	// Row 0: aligning the empty prefix of ai against bi[:j].
	for j = 0; j <= m; j++ {
		prev[j] = int64(j) * gap
	}

	// Sweep rows 1..n, reusing the two buffers.
	for i = 1; i <= len(ai); i++ {
		cur[0] = int64(i) * gap
		for j = 1; j <= m; j++ {
			cur[j] = min3(
				prev[j-1]+model.SubstitutionIndex(int(ai[i-1]), int(bi[j-1])),
				prev[j]+gap,
				cur[j-1]+gap,
			)
		}
		prev, cur = cur, prev
	}

	return prev
}

// backwardRow returns the first row of the backward DP over ai×bi: entry
// j is the optimal cost of aligning all of ai against the suffix bi[j:].
// It is the mirror image of forwardRow, sweeping both sequences from the
// end, and needs no reversed copies of the inputs.
//
// Complexity: O(n·m) time, O(m) space.
func backwardRow(ai, bi []int8, model core.CostModel) []int64 {
	var (
		n    = len(ai)
		m    = len(bi)
		gap  = model.Gap()
		prev = make([]int64, m+1)
		cur  = make([]int64, m+1)
		i, j int
	)

	// Row n: aligning the empty suffix of ai against bi[j:].
	for j = 0; j <= m; j++ {
		prev[j] = int64(m-j) * gap
	}

	// Sweep rows n-1..0.
	for i = n - 1; i >= 0; i-- {
		cur[m] = int64(n-i) * gap
		for j = m - 1; j >= 0; j-- {
			cur[j] = min3(
				prev[j+1]+model.SubstitutionIndex(int(ai[i]), int(bi[j])),
				prev[j]+gap,
				cur[j+1]+gap,
			)
		}
		prev, cur = cur, prev
	}

	return prev
}
