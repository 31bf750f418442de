// This file declares the immutable CostModel, its validating
// constructor, and the canonical default cost table.
package core

import "fmt"

// CostModel is a total function from symbol pairs to non-negative
// substitution costs, plus a single linear gap penalty.
//
// Invariants (enforced by NewCostModel, reproduced by DefaultCostModel):
//
//   - Symmetry:      Sub(x,y) == Sub(y,x) for all symbol pairs.
//   - Zero diagonal: Sub(x,x) == 0 for every symbol x.
//   - Non-negative:  every table entry and the gap penalty are ≥ 0.
//
// CostModel is a plain value with no pointers; copying it is cheap and
// every copy is independently immutable. Pass it explicitly into the
// alignment engines — there is no package-level default in effect unless
// the caller asks for DefaultCostModel().
type CostModel struct {
	sub [AlphabetSize][AlphabetSize]int64
	gap int64
}

// NewCostModel validates the substitution table and gap penalty and
// returns the resulting model.
//
// The table is indexed by canonical alphabet indices (see Index):
// sub[Index('A')][Index('C')] is the A↔C substitution cost.
//
// Errors:
//   - ErrNegativeCost    if any entry or gap is negative.
//   - ErrDiagonalNotZero if sub[i][i] != 0 for some i.
//   - ErrAsymmetricTable if sub[i][j] != sub[j][i] for some i, j.
//
// Complexity: O(AlphabetSize²) — constant in practice.
func NewCostModel(sub [AlphabetSize][AlphabetSize]int64, gap int64) (CostModel, error) {
	// 1) Gap penalty must be non-negative.
	if gap < 0 {
		return CostModel{}, fmt.Errorf("%w: gap penalty %d", ErrNegativeCost, gap)
	}

	// 2) Scan the table once for negativity, diagonal, and symmetry.
	var i, j int
	for i = 0; i < AlphabetSize; i++ {
		if sub[i][i] != 0 {
			return CostModel{}, fmt.Errorf("%w: %c↔%c = %d", ErrDiagonalNotZero, Alphabet[i], Alphabet[i], sub[i][i])
		}
		for j = 0; j < AlphabetSize; j++ {
			if sub[i][j] < 0 {
				return CostModel{}, fmt.Errorf("%w: %c↔%c = %d", ErrNegativeCost, Alphabet[i], Alphabet[j], sub[i][j])
			}
			if sub[i][j] != sub[j][i] {
				return CostModel{}, fmt.Errorf("%w: %c↔%c = %d but %c↔%c = %d",
					ErrAsymmetricTable, Alphabet[i], Alphabet[j], sub[i][j], Alphabet[j], Alphabet[i], sub[j][i])
			}
		}
	}

	return CostModel{sub: sub, gap: gap}, nil
}

// Default substitution costs for the canonical model, by unordered pair.
const (
	defCostAC = 110 // A↔C
	defCostAG = 48  // A↔G
	defCostAT = 94  // A↔T
	defCostCG = 118 // C↔G
	defCostCT = 48  // C↔T
	defCostGT = 110 // G↔T
	defGap    = 30  // gap penalty per unmatched symbol
)

// DefaultCostModel returns the canonical cost model:
//
//	      A    C    G    T
//	A     0  110   48   94
//	C   110    0  118   48
//	G    48  118    0  110
//	T    94   48  110    0
//
// with a gap penalty of 30. These exact values are part of the public
// contract; no other defaults are ever substituted.
func DefaultCostModel() CostModel {
	return CostModel{
		sub: [AlphabetSize][AlphabetSize]int64{
			{0, defCostAC, defCostAG, defCostAT},
			{defCostAC, 0, defCostCG, defCostCT},
			{defCostAG, defCostCG, 0, defCostGT},
			{defCostAT, defCostCT, defCostGT, 0},
		},
		gap: defGap,
	}
}

// Substitution returns the cost of pairing symbols x and y.
//
// Errors: ErrInvalidSymbol (wrapped with the offending byte) if either
// argument is outside the alphabet.
//
// Complexity: O(1).
func (m CostModel) Substitution(x, y byte) (int64, error) {
	ix, iy := Index(x), Index(y)
	if ix < 0 {
		return 0, fmt.Errorf("%w: byte %q", ErrInvalidSymbol, x)
	}
	if iy < 0 {
		return 0, fmt.Errorf("%w: byte %q", ErrInvalidSymbol, y)
	}

	return m.sub[ix][iy], nil
}

// SubstitutionIndex returns the cost for a pair of canonical alphabet
// indices. It is the hot-path accessor used by the engines, which
// validate and convert their sequences up front; indices outside
// [0, AlphabetSize) are a programming error and panic via bounds checks.
//
// Complexity: O(1).
func (m CostModel) SubstitutionIndex(i, j int) int64 {
	return m.sub[i][j]
}

// Gap returns the fixed linear gap penalty.
func (m CostModel) Gap() int64 {
	return m.gap
}
