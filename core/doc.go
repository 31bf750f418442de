// Package core defines the fundamental value types shared by every
// dnalign engine: the DNA Sequence and the immutable CostModel.
//
// Overview:
//
//   - Sequence is an ordered, immutable run of symbols over the fixed
//     four-letter alphabet {A, C, G, T}. It is produced once (directly or
//     via builder.Generate) and never mutated afterwards.
//   - CostModel is a total, symmetric 4×4 substitution-cost table with a
//     zero diagonal, plus a single non-negative linear gap penalty. It is
//     a plain value: copy it, pass it, share it — there is no hidden
//     state and no mutation after construction.
//
// Design principles:
//
//   - Deterministic, side-effect-free constructors and accessors.
//   - Strict validation with sentinel errors; callers branch with
//     errors.Is. No panics on user input.
//   - The cost model is passed explicitly into the alignment engines
//     rather than living as ambient package state, so every computation
//     stays pure and independently testable.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySequence    — a sequence (or base string) is empty.
//   - ErrInvalidSymbol    — a symbol outside {A,C,G,T} was encountered.
//   - ErrAsymmetricTable  — substitution table is not symmetric.
//   - ErrDiagonalNotZero  — cost(x,x) != 0 for some symbol x.
//   - ErrNegativeCost     — a substitution cost or the gap penalty is negative.
//
// See also:
//
//   - builder.Generate: materialize a Sequence from a GenerationSpec.
//   - align.Align: consume two Sequences and a CostModel, return the
//     minimum alignment cost.
package core
