// Package align_test — tests dedicated to the LinearSpace engine: exact
// agreement with the FullMatrix reference, the forward/backward sweep
// laws (via the white-box bridge), and the linear-memory property on
// heavily skewed inputs.
package align_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dnalign/align"
	"github.com/katalvlaran/dnalign/builder"
	"github.com/katalvlaran/dnalign/core"
)

// randSeq builds a deterministic pseudo-random ACGT string of length n.
func randSeq(rng *rand.Rand, n int) string {
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		sb.WriteByte(core.Alphabet[rng.Intn(core.AlphabetSize)])
	}

	return sb.String()
}

// toIndices converts a fixture string for the white-box helpers.
func toIndices(t *testing.T, s string) []int8 {
	t.Helper()
	ix, err := core.Sequence(s).Indices()
	require.NoError(t, err)

	return ix
}

// ------------------------------------------------------------------------
// 1. Cross-validation: LinearSpace must equal FullMatrix exactly.
// ------------------------------------------------------------------------

// TestLinearSpace_MatchesFullMatrix_Random cross-validates the two
// engines on a deterministic batch of random sequence pairs covering odd
// and even lengths, near-equal and skewed shapes.
func TestLinearSpace_MatchesFullMatrix_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	model := core.DefaultCostModel()

	full := align.DefaultOptions()
	linear := align.DefaultOptions()
	linear.Mode = align.LinearSpace

	for trial := 0; trial < 100; trial++ {
		a := core.Sequence(randSeq(rng, 1+rng.Intn(80)))
		b := core.Sequence(randSeq(rng, 1+rng.Intn(80)))

		want, err := align.Align(a, b, model, &full)
		require.NoError(t, err, "trial %d", trial)

		got, err := align.Align(a, b, model, &linear)
		require.NoError(t, err, "trial %d", trial)

		require.Equal(t, want, got, "trial %d: %s vs %s", trial, a, b)
	}
}

// TestLinearSpace_MatchesFullMatrix_Shapes cross-validates on boundary
// shapes: single rows/columns and strongly unbalanced rectangles, where
// the recursion degenerates into base cases quickly.
func TestLinearSpace_MatchesFullMatrix_Shapes(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	model := core.DefaultCostModel()

	shapes := [][2]int{
		{1, 1}, {1, 2}, {2, 1}, {1, 50}, {50, 1},
		{2, 2}, {3, 2}, {2, 64}, {64, 2}, {5, 200}, {200, 5},
	}

	full := align.DefaultOptions()
	linear := align.DefaultOptions()
	linear.Mode = align.LinearSpace

	for _, sh := range shapes {
		a := core.Sequence(randSeq(rng, sh[0]))
		b := core.Sequence(randSeq(rng, sh[1]))

		want, err := align.Align(a, b, model, &full)
		require.NoError(t, err, "shape %v", sh)

		got, err := align.Align(a, b, model, &linear)
		require.NoError(t, err, "shape %v", sh)

		assert.Equal(t, want, got, "shape %v", sh)
	}
}

// ------------------------------------------------------------------------
// 2. White-box sweep laws (via export_privates_for_test.go).
// ------------------------------------------------------------------------

// TestForwardRow_EmptyPrefixLaw verifies the DP base case: with no rows
// consumed, aligning against bi[:j] costs exactly j gaps.
func TestForwardRow_EmptyPrefixLaw(t *testing.T) {
	model := core.DefaultCostModel()
	bi := toIndices(t, "ACGTACG")

	row := align.ExportedForwardRow(nil, bi, model)
	require.Len(t, row, len(bi)+1)
	for j, got := range row {
		assert.Equal(t, int64(j)*model.Gap(), got, "column %d", j)
	}
}

// TestSweeps_ForwardBackwardDuality verifies that the forward row's last
// entry and the backward row's first entry are both the full alignment
// cost of the pair — the two sweeps are exact mirrors.
func TestSweeps_ForwardBackwardDuality(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	model := core.DefaultCostModel()

	for trial := 0; trial < 25; trial++ {
		ai := toIndices(t, randSeq(rng, 1+rng.Intn(40)))
		bi := toIndices(t, randSeq(rng, 1+rng.Intn(40)))

		fwd := align.ExportedForwardRow(ai, bi, model)
		bwd := align.ExportedBackwardRow(ai, bi, model)
		want := align.ExportedAlignFull(ai, bi, model)

		require.Equal(t, want, fwd[len(bi)], "trial %d: forward sweep end", trial)
		require.Equal(t, want, bwd[0], "trial %d: backward sweep start", trial)
	}
}

// TestSplitColumn_RecombinationIsOptimal verifies that the chosen split
// decomposes the full cost exactly: cost(top, b[:j*]) + cost(bottom,
// b[j*:]) equals the optimum of the whole rectangle.
func TestSplitColumn_RecombinationIsOptimal(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	model := core.DefaultCostModel()

	for trial := 0; trial < 25; trial++ {
		ai := toIndices(t, randSeq(rng, 2+rng.Intn(40)))
		bi := toIndices(t, randSeq(rng, 2+rng.Intn(40)))
		mid := len(ai) / 2

		split, err := align.ExportedSplitColumn(ai[:mid], ai[mid:], bi, model)
		require.NoError(t, err, "trial %d", trial)
		require.GreaterOrEqual(t, split, 0)
		require.LessOrEqual(t, split, len(bi))

		top := align.ExportedAlignFull(ai[:mid], bi[:split], model)
		bottom := align.ExportedAlignFull(ai[mid:], bi[split:], model)
		whole := align.ExportedAlignFull(ai, bi, model)

		require.Equal(t, whole, top+bottom, "trial %d: split %d must be globally consistent", trial, split)

		// The recursive engine as a whole lands on the same optimum.
		lin, err := align.ExportedAlignLinear(ai, bi, model)
		require.NoError(t, err, "trial %d", trial)
		require.Equal(t, whole, lin, "trial %d: recursion must match the reference table", trial)
	}
}

// ------------------------------------------------------------------------
// 3. Resource property: no quadratic blow-up on skewed inputs.
// ------------------------------------------------------------------------

// TestLinearSpace_SkewedInputs runs the linear engine on rectangles whose
// full DP table would take hundreds of megabytes (2^18·256 and its
// transpose). Completing here — where FullMatrix is deliberately not
// attempted — exercises the O(n+m) memory contract in both skew
// directions; correctness is pinned by the symmetry law.
func TestLinearSpace_SkewedInputs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping large skewed-input run in -short mode")
	}

	// 4·2^16 = 262144 symbols via sixteen doubling steps.
	long, err := builder.Generate(builder.GenerationSpec{
		Base:    "ACGT",
		Indices: make([]int, 16),
	})
	require.NoError(t, err)
	require.Equal(t, 262144, long.Len())

	rng := rand.New(rand.NewSource(1))
	short := core.Sequence(randSeq(rng, 256))

	opts := align.DefaultOptions()
	opts.Mode = align.LinearSpace

	model := core.DefaultCostModel()

	wide, err := align.Align(long, short, model, &opts)
	require.NoError(t, err)

	tall, err := align.Align(short, long, model, &opts)
	require.NoError(t, err)

	assert.Equal(t, wide, tall, "skew direction must not change the optimum")
	// The long sequence is 261888 symbols longer; the cost is at least the
	// unavoidable gap run and at most gapping everything.
	assert.GreaterOrEqual(t, wide, int64(long.Len()-short.Len())*model.Gap())
	assert.LessOrEqual(t, wide, int64(long.Len()+short.Len())*model.Gap())
}
