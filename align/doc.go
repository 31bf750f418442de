// Package align computes the minimum alignment cost between two DNA
// sequences under an immutable substitution/gap cost model, with a choice
// between an exact full-matrix engine and an exact linear-space engine.
//
// Overview:
//
//   - An alignment pairs the characters of sequences A (length n) and
//     B (length m) in order, optionally leaving characters unpaired
//     against a gap, so that every character is accounted for exactly
//     once. Its cost is the sum of substitution costs for paired
//     characters plus one gap penalty per unpaired character.
//   - Align returns the minimum such cost as a single non-negative
//     integer. No alignment string is reconstructed — only the cost.
//   - Both engines implement the same recurrence and return the identical
//     optimal value; they differ only in memory strategy.
//
// Engines (Options.Mode):
//
//   - FullMatrix — the reference engine. Builds the complete
//     (n+1)×(m+1) dynamic-programming table:
//     OPT[0][j] = j·gap, OPT[i][0] = i·gap,
//     OPT[i][j] = min( OPT[i-1][j-1] + sub(A[i-1], B[j-1]),
//     OPT[i-1][j] + gap,
//     OPT[i][j-1] + gap ).
//     Time O(n·m), memory O(n·m). Simple and exact, but the table must
//     fit in memory — it is deliberately the quadratic-space baseline.
//   - LinearSpace — Hirschberg divide-and-conquer. Splits A at row n/2,
//     computes the forward DP row for the top half and the backward DP
//     row for the bottom half in O(m) space each, recombines them to
//     find the provably optimal split column of B, and recurses on the
//     two sub-rectangles. Time O(n·m) (sub-rectangle work sums
//     geometrically), auxiliary memory O(n+m) regardless of split skew.
//
// When to use:
//
//   - FullMatrix for short-to-medium sequences and as a cross-validation
//     oracle in tests.
//   - LinearSpace whenever n·m is too large to materialize — the result
//     is bit-identical, not an approximation.
//
// Error handling (sentinel errors):
//
//   - ErrEmptyInput:
//     Returned if either sequence is empty. Both engines validate
//     identically before any table work.
//   - core.ErrInvalidSymbol:
//     Returned (wrapped with the sequence and position) if a symbol
//     falls outside {A,C,G,T}. Sequences are re-validated here even when
//     produced by core.NewSequence.
//   - ErrTooLong:
//     Returned if Options.MaxLength > 0 and either sequence exceeds it.
//   - ErrBadMaxLength:
//     Returned if Options.MaxLength is negative.
//   - ErrUnknownMode:
//     Returned for a Mode value outside {FullMatrix, LinearSpace}.
//   - ErrRowMismatch:
//     Defensive invariant check in the divide-and-conquer recombination;
//     never triggers in a correct build.
//
// API reference:
//
//	func Align(
//	    a, b core.Sequence,
//	    model core.CostModel,
//	    opts *Options,
//	) (int64, error)
//
//	  - a, b:   the sequences to align (non-empty, ACGT only).
//	  - model:  immutable cost model; use core.DefaultCostModel() for the
//	            canonical table (A-C=110, A-G=48, A-T=94, C-G=118,
//	            C-T=48, G-T=110, gap=30).
//	  - opts:   nil for defaults (FullMatrix, no length ceiling), or a
//	            value from DefaultOptions() with fields adjusted.
//
// Determinism and purity:
//
//   - Given identical inputs, Align produces identical outputs with no
//     observable side effects beyond the returned value. The cost model
//     is read-only; no shared mutable state exists across invocations,
//     so independent calls may run concurrently without synchronization.
//
// Complexity summary:
//
//	Mode         Time      Auxiliary memory
//	FullMatrix   O(n·m)    O(n·m)
//	LinearSpace  O(n·m)    O(n+m), recursion stack O(log n)
//
// See also:
//
//   - core.CostModel / core.DefaultCostModel: the cost table contract.
//   - builder.Generate: materialize inputs from generative descriptions.
package align
