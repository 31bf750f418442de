// This file declares the DNA alphabet, the Sequence type, sentinel
// errors, and the validating Sequence constructor.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for sequence and cost-model validation.
var (
	// ErrEmptySequence indicates that a sequence or base string is empty.
	ErrEmptySequence = errors.New("core: sequence is empty")

	// ErrInvalidSymbol indicates a symbol outside the {A,C,G,T} alphabet.
	ErrInvalidSymbol = errors.New("core: symbol outside ACGT alphabet")

	// ErrAsymmetricTable indicates a substitution table with
	// table[i][j] != table[j][i] for some symbol pair.
	ErrAsymmetricTable = errors.New("core: substitution table is not symmetric")

	// ErrDiagonalNotZero indicates a substitution table with a non-zero
	// cost for an identical symbol pair.
	ErrDiagonalNotZero = errors.New("core: substitution table diagonal must be zero")

	// ErrNegativeCost indicates a negative substitution cost or gap penalty.
	ErrNegativeCost = errors.New("core: costs must be non-negative")
)

// Alphabet is the fixed symbol set, in canonical index order.
// Index(Alphabet[i]) == i for every i in [0, AlphabetSize).
const Alphabet = "ACGT"

// AlphabetSize is the number of distinct symbols in the alphabet.
const AlphabetSize = len(Alphabet)

// symIdx maps a byte to its alphabet index, or -1 for anything outside ACGT.
var symIdx [256]int8

func init() {
	for i := range symIdx {
		symIdx[i] = -1
	}
	for i := 0; i < AlphabetSize; i++ {
		symIdx[Alphabet[i]] = int8(i)
	}
}

// Index returns the canonical alphabet index of sym
// (A=0, C=1, G=2, T=3), or -1 if sym is not an alphabet symbol.
//
// Complexity: O(1).
func Index(sym byte) int {
	return int(symIdx[sym])
}

// Sequence is an ordered, immutable run of alphabet symbols.
//
// The string backing makes immutability structural: sub-sequences taken
// with ordinary slicing share storage and never copy. A Sequence built by
// NewSequence (or by builder.Generate) is guaranteed to contain only
// {A,C,G,T} bytes; engines still re-validate their inputs independently.
type Sequence string

// NewSequence validates s against the alphabet and returns it as a Sequence.
//
// Errors:
//   - ErrEmptySequence if s has length zero.
//   - ErrInvalidSymbol (wrapped with the offending position and byte)
//     if any symbol is outside {A,C,G,T}.
//
// Complexity: O(len(s)) time, O(1) extra space.
func NewSequence(s string) (Sequence, error) {
	if len(s) == 0 {
		return "", ErrEmptySequence
	}
	var i int
	for i = 0; i < len(s); i++ {
		if symIdx[s[i]] < 0 {
			return "", fmt.Errorf("%w: position %d, byte %q", ErrInvalidSymbol, i, s[i])
		}
	}

	return Sequence(s), nil
}

// Len returns the number of symbols in the sequence.
func (s Sequence) Len() int { return len(s) }

// String returns the raw symbol string.
func (s Sequence) String() string { return string(s) }

// Indices converts the sequence into canonical alphabet indices.
//
// The returned slice is freshly allocated and safe to mutate. An invalid
// symbol yields ErrInvalidSymbol even if the Sequence was constructed by
// conversion rather than NewSequence — engines rely on this re-check.
//
// Complexity: O(len(s)) time and space.
func (s Sequence) Indices() ([]int8, error) {
	if len(s) == 0 {
		return nil, ErrEmptySequence
	}
	out := make([]int8, len(s))
	var (
		i  int
		ix int8
	)
	for i = 0; i < len(s); i++ {
		ix = symIdx[s[i]]
		if ix < 0 {
			return nil, fmt.Errorf("%w: position %d, byte %q", ErrInvalidSymbol, i, s[i])
		}
		out[i] = ix
	}

	return out, nil
}
