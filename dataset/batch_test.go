package dataset_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dnalign/dataset"
)

// TestInputOutputNames pins the canonical naming scheme.
func TestInputOutputNames(t *testing.T) {
	assert.Equal(t, "in0.txt", dataset.InputName(0))
	assert.Equal(t, "in17.txt", dataset.InputName(17))
	assert.Equal(t, "output0.txt", dataset.OutputName(0))
	assert.Equal(t, "output17.txt", dataset.OutputName(17))
}

// TestMatchInput walks the acceptance and rejection table for the
// in<k>.txt convention.
func TestMatchInput(t *testing.T) {
	cases := []struct {
		name string
		k    int
		ok   bool
	}{
		{"in0.txt", 0, true},
		{"in1.txt", 1, true},
		{"in42.txt", 42, true},
		{"in.txt", 0, false},      // no digits
		{"in03.txt", 0, false},    // leading zero breaks the bijection
		{"in+3.txt", 0, false},    // Atoi-accepted sign, non-canonical
		{"in-1.txt", 0, false},    // negative index
		{"in3x.txt", 0, false},    // trailing junk
		{"input3.txt", 0, false},  // looks like an output-side name
		{"output3.txt", 0, false}, // output file, not input
		{"in3.text", 0, false},    // wrong extension
		{"xin3.txt", 0, false},    // wrong prefix
	}

	var (
		k  int
		ok bool
	)
	for _, tc := range cases {
		k, ok = dataset.MatchInput(tc.name)
		assert.Equal(t, tc.ok, ok, tc.name)
		assert.Equal(t, tc.k, k, tc.name)
	}
}

// TestJobs enumerates a directory with decoys and checks ordering and
// path construction.
func TestJobs(t *testing.T) {
	dir := t.TempDir()

	// Inputs written out of order, interleaved with decoys.
	for _, name := range []string{
		"in10.txt", "in2.txt", "in0.txt",
		"output2.txt", "readme.md", "in.txt", "in03.txt",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x\n"), 0o644))
	}
	// A directory whose name would otherwise match.
	require.NoError(t, os.Mkdir(filepath.Join(dir, "in5.txt"), 0o755))

	jobs, err := dataset.Jobs(dir)
	require.NoError(t, err)
	require.Len(t, jobs, 3)

	assert.Equal(t, []int{0, 2, 10}, []int{jobs[0].Index, jobs[1].Index, jobs[2].Index})
	assert.Equal(t, filepath.Join(dir, "in2.txt"), jobs[1].Input)
	assert.Equal(t, filepath.Join(dir, "output2.txt"), jobs[1].Output)
}

// TestJobs_EmptyAndMissing covers the degenerate directory cases.
func TestJobs_EmptyAndMissing(t *testing.T) {
	jobs, err := dataset.Jobs(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, jobs)

	_, err = dataset.Jobs(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}
