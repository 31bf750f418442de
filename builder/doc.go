// SPDX-License-Identifier: MIT
// Package: dnalign/builder
//
// doc.go — package overview for the sequence builder.

// Package builder materializes DNA sequences from compact generative
// descriptions: a short base string plus an ordered list of insertion
// indices.
//
// Overview:
//
//   - A GenerationSpec holds a non-empty ACGT base string and zero or
//     more zero-based insertion indices.
//   - Generate applies each index in order: the current string is
//     inserted into itself immediately after that position,
//     s ← s[0..i] + s + s[i+1..]. Every step doubles the length, so the
//     final sequence has len(base)·2^k symbols after k steps.
//   - Each index is validated against the string length at the moment it
//     is applied — an index that was in range for an earlier, shorter
//     string is NOT implicitly clamped; it must be valid for the grown
//     string or Generate fails.
//
// Resource safety:
//
//   - Growth is geometric, so a handful of indices can demand gigabytes.
//     FinalLength computes the resulting length with an overflow guard,
//     and WithMaxLength bounds materialization before the first byte is
//     allocated.
//
// Error handling (sentinel errors):
//
//   - core.ErrEmptySequence  — the base string is empty.
//   - core.ErrInvalidSymbol  — the base string leaves the ACGT alphabet.
//   - ErrIndexOutOfRange     — an insertion index is invalid at its step.
//   - ErrTooLong             — the final length overflows or exceeds the
//     configured ceiling.
//   - ErrBadMaxLength        — WithMaxLength received a non-positive
//     value (panics in the option constructor, per library convention).
//
// API reference:
//
//	func Generate(spec GenerationSpec, opts ...Option) (core.Sequence, error)
//	func FinalLength(spec GenerationSpec) (int, error)
//
// Example:
//
//	seq, err := builder.Generate(builder.GenerationSpec{
//	    Base:    "CCAG",
//	    Indices: []int{2},
//	})
//	// seq == "CCACCAGG", err == nil
package builder
