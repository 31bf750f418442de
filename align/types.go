// Package align defines the engine modes, options, and sentinel errors
// for alignment-cost computation.
//
// Options are a plain struct: obtain defaults from DefaultOptions and
// adjust fields before passing a pointer into Align. A nil *Options in
// Align is equivalent to DefaultOptions().
package align

import "errors"

// Sentinel errors returned by the alignment engines.
var (
	// ErrEmptyInput indicates that one or both input sequences are empty.
	ErrEmptyInput = errors.New("align: input sequences must be non-empty")

	// ErrTooLong indicates that an input sequence exceeds Options.MaxLength.
	ErrTooLong = errors.New("align: input sequence exceeds MaxLength")

	// ErrBadMaxLength indicates a negative Options.MaxLength.
	ErrBadMaxLength = errors.New("align: MaxLength must be non-negative")

	// ErrUnknownMode indicates a Mode value outside the declared constants.
	ErrUnknownMode = errors.New("align: unknown engine mode")

	// ErrRowMismatch indicates that the forward and backward sweep rows
	// disagreed in length during divide-and-conquer recombination.
	// This is a defensive internal check and never fires in a correct build.
	ErrRowMismatch = errors.New("align: forward/backward row length mismatch")
)

// Mode selects the engine strategy for a single Align call.
//
//   - FullMatrix  — exact quadratic-space baseline; materializes the
//     whole (n+1)×(m+1) table. Memory: O(n·m).
//   - LinearSpace — exact Hirschberg divide-and-conquer; never
//     materializes the table. Memory: O(n+m).
//
// Both modes return the identical optimal cost.
type Mode int

const (
	// FullMatrix mode: build the complete DP table, O(n·m) memory.
	FullMatrix Mode = iota

	// LinearSpace mode: forward/backward sweeps + recursion, O(n+m) memory.
	LinearSpace
)

// String returns the mode name for logs and test output.
func (m Mode) String() string {
	switch m {
	case FullMatrix:
		return "FullMatrix"
	case LinearSpace:
		return "LinearSpace"
	default:
		return "Unknown"
	}
}

// Options configures a single Align call.
//
// Mode      – engine strategy (FullMatrix or LinearSpace).
// MaxLength – per-sequence input ceiling; inputs longer than this fail
//
//	with ErrTooLong before any table work. 0 disables the
//	ceiling (default). Negative values fail with ErrBadMaxLength.
type Options struct {
	Mode      Mode // engine strategy for this call
	MaxLength int  // per-sequence length ceiling; 0 = unlimited
}

// DefaultOptions returns the canonical configuration: the FullMatrix
// reference engine with no input-length ceiling. Use it as a starting
// point and adjust fields:
//
//	opts := align.DefaultOptions()
//	opts.Mode = align.LinearSpace
//	cost, err := align.Align(a, b, model, &opts)
func DefaultOptions() Options {
	return Options{
		Mode:      FullMatrix,
		MaxLength: 0,
	}
}
