// Package dataset — problem-file parsing.
//
// This file implements the two accepted problem layouts with the
// explicit-count layout tried first and a fallback to implicit lists.
// Parsing is syntactic only; semantic validation (alphabet, index
// ranges, growth bounds) belongs to builder.Generate.
package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/dnalign/builder"
)

// Sentinel errors for problem parsing.
var (
	// ErrEmptyInput indicates an input with no non-blank lines.
	ErrEmptyInput = errors.New("dataset: input holds no content")

	// ErrMalformedSpec indicates that the input matches neither the
	// explicit-count nor the implicit-list layout.
	ErrMalformedSpec = errors.New("dataset: malformed problem description")
)

// maxLineBytes bounds a single input line; problem files are tiny, the
// headroom only guards against accidentally feeding a binary blob.
const maxLineBytes = 1 << 20

// Problem is one parsed alignment job: the two generation specs whose
// expansions are to be aligned.
type Problem struct {
	// S describes the first sequence.
	S builder.GenerationSpec

	// T describes the second sequence.
	T builder.GenerationSpec
}

// ParseFile reads and parses one problem file.
//
// Errors: *os.PathError from opening/reading, or the ParseReader
// sentinels wrapped with the file path.
func ParseFile(path string) (Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return Problem{}, fmt.Errorf("dataset: ParseFile: %w", err)
	}
	defer f.Close()

	p, err := ParseReader(f)
	if err != nil {
		return Problem{}, fmt.Errorf("dataset: ParseFile %s: %w", path, err)
	}

	return p, nil
}

// ParseReader parses one problem description from r.
//
// The explicit-count layout is attempted first; any inconsistency there
// falls back to the implicit-list layout (never to an error), so a file
// is only rejected when neither layout matches.
//
// Errors: ErrEmptyInput, ErrMalformedSpec, or a read error from r.
//
// Complexity: O(total input size).
func ParseReader(r io.Reader) (Problem, error) {
	// 1) Collect trimmed, non-blank lines.
	lines, err := readLines(r)
	if err != nil {
		return Problem{}, err
	}
	if len(lines) == 0 {
		return Problem{}, ErrEmptyInput
	}

	// 2) Layout 1: explicit counts.
	if p, ok := parseExplicit(lines); ok {
		return p, nil
	}

	// 3) Layout 2: implicit lists.
	return parseImplicit(lines)
}

// readLines scans r into trimmed non-blank lines.
func readLines(r io.Reader) ([]string, error) {
	var (
		lines []string
		line  string
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineBytes)
	for sc.Scan() {
		line = strings.TrimSpace(sc.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dataset: read: %w", err)
	}

	return lines, nil
}

// parseExplicit attempts the explicit-count layout:
//
//	s0, j, j×index, t0, k, k×index
//
// It reports ok=false — never an error — on any inconsistency, handing
// the lines over to the implicit parser. Trailing lines beyond the
// declared counts are ignored, matching the layout's contract that the
// counts are authoritative.
func parseExplicit(lines []string) (Problem, bool) {
	// Shortest well-formed file: s0, j=0, t0, k=0.
	if len(lines) < 4 {
		return Problem{}, false
	}

	j, err := strconv.Atoi(lines[1])
	if err != nil || j < 0 {
		return Problem{}, false
	}
	t0Line := 2 + j
	if len(lines) < t0Line+2 {
		return Problem{}, false
	}

	k, err := strconv.Atoi(lines[t0Line+1])
	if err != nil || k < 0 {
		return Problem{}, false
	}
	if len(lines) < t0Line+2+k {
		return Problem{}, false
	}

	sIdx, ok := parseIndices(lines[2:t0Line])
	if !ok {
		return Problem{}, false
	}
	tIdx, ok := parseIndices(lines[t0Line+2 : t0Line+2+k])
	if !ok {
		return Problem{}, false
	}

	return Problem{
		S: builder.GenerationSpec{Base: lines[0], Indices: sIdx},
		T: builder.GenerationSpec{Base: lines[t0Line], Indices: tIdx},
	}, true
}

// parseImplicit parses the implicit-list layout: a base string, its
// indices as consecutive integer lines, the second base string, its
// indices. Anything left over afterwards is a layout violation.
func parseImplicit(lines []string) (Problem, error) {
	s0 := lines[0]

	i := 1
	sIdx, i := consumeIndices(lines, i)

	if i >= len(lines) {
		return Problem{}, fmt.Errorf("%w: missing second base string", ErrMalformedSpec)
	}
	t0 := lines[i]
	i++

	tIdx, i := consumeIndices(lines, i)
	if i < len(lines) {
		return Problem{}, fmt.Errorf("%w: unexpected trailing line %q", ErrMalformedSpec, lines[i])
	}

	return Problem{
		S: builder.GenerationSpec{Base: s0, Indices: sIdx},
		T: builder.GenerationSpec{Base: t0, Indices: tIdx},
	}, nil
}

// parseIndices converts a fixed slice of lines to integers, reporting
// ok=false on the first non-integer.
func parseIndices(lines []string) ([]int, bool) {
	idx := make([]int, 0, len(lines))
	var (
		line string
		v    int
		err  error
	)
	for _, line = range lines {
		v, err = strconv.Atoi(line)
		if err != nil {
			return nil, false
		}
		idx = append(idx, v)
	}

	return idx, true
}

// consumeIndices greedily takes consecutive integer lines starting at i
// and returns them with the position of the first non-integer line.
func consumeIndices(lines []string, i int) ([]int, int) {
	var idx []int
	for i < len(lines) {
		v, err := strconv.Atoi(lines[i])
		if err != nil {
			break
		}
		idx = append(idx, v)
		i++
	}

	return idx, i
}
