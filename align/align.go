// Package align implements the alignment-cost engines.
//
// This file holds the public entry point with its validation pipeline and
// the FullMatrix reference engine.
//
// Notes on implementation choices:
//
//   - Inputs are validated and converted to canonical alphabet indices
//     exactly once, up front; the hot loops then use index-based cost
//     lookups with no per-cell validation.
//   - The DP table is a single flat slice with row stride m+1; there is
//     no pointer-based matrix structure to chase.
//   - No logging, no panics on user input — only sentinel errors.
package align

import (
	"fmt"

	"github.com/katalvlaran/dnalign/core"
)

// Align computes the minimum alignment cost of a against b under model.
//
// The result is the exact optimum over all valid alignments; ties between
// equal-cost transitions are irrelevant because only the cost is
// returned. Both modes produce the identical value for identical inputs.
//
// Preconditions and validation (in order):
//  1. opts.Mode must be FullMatrix or LinearSpace (ErrUnknownMode).
//  2. opts.MaxLength must be ≥ 0 (ErrBadMaxLength).
//  3. Both sequences must be non-empty (ErrEmptyInput).
//  4. Neither sequence may exceed opts.MaxLength when set (ErrTooLong).
//  5. Both sequences must be pure ACGT (core.ErrInvalidSymbol).
//
// A nil opts is equivalent to DefaultOptions().
//
// Complexity:
//
//   - Time:   O(n·m) in both modes.
//   - Memory: O(n·m) in FullMatrix, O(n+m) in LinearSpace.
func Align(a, b core.Sequence, model core.CostModel, opts *Options) (int64, error) {
	// 1) Resolve options.
	cfg := DefaultOptions()
	if opts != nil {
		cfg = *opts
	}

	// 2) Validate the mode before touching the inputs.
	switch cfg.Mode {
	case FullMatrix, LinearSpace:
		// ok
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownMode, int(cfg.Mode))
	}

	// 3) Validate the length ceiling itself.
	if cfg.MaxLength < 0 {
		return 0, fmt.Errorf("%w: got %d", ErrBadMaxLength, cfg.MaxLength)
	}

	// 4) Reject empty inputs; both engines share this contract.
	if a.Len() == 0 || b.Len() == 0 {
		return 0, ErrEmptyInput
	}

	// 5) Enforce the per-sequence ceiling before allocating anything
	//    proportional to the inputs.
	if cfg.MaxLength > 0 {
		if a.Len() > cfg.MaxLength {
			return 0, fmt.Errorf("%w: first sequence length %d, limit %d", ErrTooLong, a.Len(), cfg.MaxLength)
		}
		if b.Len() > cfg.MaxLength {
			return 0, fmt.Errorf("%w: second sequence length %d, limit %d", ErrTooLong, b.Len(), cfg.MaxLength)
		}
	}

	// 6) Convert to canonical indices; this re-validates the alphabet
	//    even for sequences built via core.NewSequence.
	ai, err := a.Indices()
	if err != nil {
		return 0, fmt.Errorf("align: first sequence: %w", err)
	}
	bi, err := b.Indices()
	if err != nil {
		return 0, fmt.Errorf("align: second sequence: %w", err)
	}

	// 7) Dispatch to the selected engine.
	if cfg.Mode == LinearSpace {
		return alignLinear(ai, bi, model)
	}

	return alignFull(ai, bi, model), nil
}

// alignFull is the quadratic-space reference engine: it fills the whole
// (n+1)×(m+1) table and returns the bottom-right cell.
//
// The table is stored as one flat slice with row stride m+1;
// cell (i,j) lives at opt[i*(m+1)+j].
//
// Complexity: O(n·m) time and memory.
func alignFull(ai, bi []int8, model core.CostModel) int64 {
	var (
		n      = len(ai)
		m      = len(bi)
		gap    = model.Gap()
		stride = m + 1
		opt    = make([]int64, (n+1)*stride)
		i, j   int
		row    int // index of cell (i, 0) in the flat table
	)

	// 1) Base cases: aligning a prefix against nothing costs one gap per
	//    character.
	for j = 1; j <= m; j++ {
		opt[j] = int64(j) * gap
	}
	for i = 1; i <= n; i++ {
		opt[i*stride] = int64(i) * gap
	}

	// 2) Fill row by row. Each cell takes the cheapest of substitution,
	//    gap in b (skip a[i-1]), and gap in a (skip b[j-1]).
	for i = 1; i <= n; i++ {
		row = i * stride
		for j = 1; j <= m; j++ {
			opt[row+j] = min3(
				opt[row-stride+j-1]+model.SubstitutionIndex(int(ai[i-1]), int(bi[j-1])),
				opt[row-stride+j]+gap,
				opt[row+j-1]+gap,
			)
		}
	}

	// 3) The optimum for the full sequences sits in the last cell.
	return opt[n*stride+m]
}

// min3 returns the minimum of three int64 values.
func min3(a, b, c int64) int64 {
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
