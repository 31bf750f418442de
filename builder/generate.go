// SPDX-License-Identifier: MIT
// Package: dnalign/builder
//
// generate.go — GenerationSpec expansion by repeated self-insertion.
//
// Contract:
//   - Pure, deterministic, no global state.
//   - Validation errors are sentinels (errors.Is friendly); option
//     constructor panics are confined to WithMaxLength, per library rules.

package builder

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/dnalign/core"
)

// Sentinel errors for generation.
var (
	// ErrIndexOutOfRange indicates an insertion index that is negative or
	// not smaller than the current string length at the step it applies.
	ErrIndexOutOfRange = errors.New("builder: insertion index out of range")

	// ErrTooLong indicates that the final sequence length overflows int
	// or exceeds the ceiling configured with WithMaxLength.
	ErrTooLong = errors.New("builder: generated sequence too long")

	// ErrBadMaxLength indicates that WithMaxLength was given a
	// non-positive ceiling.
	ErrBadMaxLength = errors.New("builder: MaxLength must be positive")
)

// GenerationSpec describes a sequence generatively: a base string and an
// ordered list of zero-based insertion indices. Indices are applied in
// order, each against the result of the previous step.
type GenerationSpec struct {
	// Base is the initial ACGT string (non-empty).
	Base string

	// Indices are the insertion positions, one per doubling step.
	// Index i inserts a full copy of the current string after position i.
	Indices []int
}

// config carries resolved generation options.
type config struct {
	maxLength int // ceiling on the final length; 0 means unlimited
}

// Option is a functional option for Generate.
type Option func(*config)

// WithMaxLength bounds the final sequence length. Generate fails with
// ErrTooLong before allocating anything if the spec would exceed n.
// Must pass a positive value; non-positive values panic with
// ErrBadMaxLength.
func WithMaxLength(n int) Option {
	return func(c *config) {
		if n <= 0 {
			panic(ErrBadMaxLength.Error())
		}
		c.maxLength = n
	}
}

// FinalLength returns the length of the sequence the spec would generate:
// len(Base) doubled once per index.
//
// Errors:
//   - core.ErrEmptySequence if the base string is empty.
//   - ErrTooLong if the doubling overflows int.
//
// Complexity: O(len(Indices)).
func FinalLength(spec GenerationSpec) (int, error) {
	if len(spec.Base) == 0 {
		return 0, fmt.Errorf("builder: FinalLength: %w", core.ErrEmptySequence)
	}
	n := len(spec.Base)
	for range spec.Indices {
		if n > math.MaxInt/2 {
			return 0, fmt.Errorf("%w: doubling overflows after %d-symbol prefix", ErrTooLong, n)
		}
		n <<= 1
	}

	return n, nil
}

// Generate expands the spec into a concrete Sequence.
//
// Each step inserts a full copy of the current string immediately after
// the step's index, doubling the length. With zero indices the base
// string is returned unchanged.
//
// Errors:
//   - core.ErrEmptySequence / core.ErrInvalidSymbol for a bad base string.
//   - ErrTooLong if the final length overflows or exceeds WithMaxLength.
//   - ErrIndexOutOfRange (wrapped with step, index, and current length)
//     if an index is invalid at the moment it is applied.
//
// Complexity: O(final length) time and space — each doubling step copies
// the whole intermediate string once.
func Generate(spec GenerationSpec, opts ...Option) (core.Sequence, error) {
	// 1) Resolve options.
	var cfg config
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate the base string (emptiness + alphabet).
	base, err := core.NewSequence(spec.Base)
	if err != nil {
		return "", fmt.Errorf("builder: Generate: %w", err)
	}

	// 3) Preflight the final length before allocating.
	total, err := FinalLength(spec)
	if err != nil {
		return "", err
	}
	if cfg.maxLength > 0 && total > cfg.maxLength {
		return "", fmt.Errorf("%w: final length %d exceeds limit %d", ErrTooLong, total, cfg.maxLength)
	}

	// 4) Fast path: no insertion steps.
	if len(spec.Indices) == 0 {
		return base, nil
	}

	// 5) Apply each doubling step. Every index is checked against the
	//    CURRENT length — no clamping of indices that went stale as the
	//    string grew.
	cur := []byte(spec.Base)
	var (
		step int
		idx  int
		next []byte
	)
	for step, idx = range spec.Indices {
		if idx < 0 || idx >= len(cur) {
			return "", fmt.Errorf("%w: step %d, index %d, current length %d",
				ErrIndexOutOfRange, step, idx, len(cur))
		}
		next = make([]byte, 2*len(cur))
		copy(next, cur[:idx+1])
		copy(next[idx+1:], cur)
		copy(next[idx+1+len(cur):], cur[idx+1:])
		cur = next
	}

	return core.Sequence(cur), nil
}
