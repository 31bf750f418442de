// Package dataset — batch file-naming convention.
//
// A batch directory holds numbered problem files in<k>.txt; each run
// writes the resulting cost to the sibling output<k>.txt. Only the
// naming and enumeration live here — reading, solving, and writing are
// the driver's job.
package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

const (
	inputPrefix  = "in"
	outputPrefix = "output"
	nameSuffix   = ".txt"
)

// Job locates one batch work item: the problem file to read and the
// result file to write.
type Job struct {
	// Index is the numeric k extracted from in<k>.txt.
	Index int

	// Input is the problem file path.
	Input string

	// Output is the result file path, in the same directory.
	Output string
}

// InputName returns the canonical problem-file name for index k.
func InputName(k int) string {
	return fmt.Sprintf("%s%d%s", inputPrefix, k, nameSuffix)
}

// OutputName returns the canonical result-file name for index k.
func OutputName(k int) string {
	return fmt.Sprintf("%s%d%s", outputPrefix, k, nameSuffix)
}

// MatchInput extracts k from a file name of the form in<k>.txt.
// It reports ok=false for any other name, including in.txt (no digits)
// and names with non-digit decoration around k.
func MatchInput(name string) (int, bool) {
	if !strings.HasPrefix(name, inputPrefix) || !strings.HasSuffix(name, nameSuffix) {
		return 0, false
	}
	digits := name[len(inputPrefix) : len(name)-len(nameSuffix)]
	if digits == "" {
		return 0, false
	}
	k, err := strconv.Atoi(digits)
	if err != nil || k < 0 {
		return 0, false
	}
	// Reject forms like in+3.txt or in03x.txt that Atoi would not, and
	// keep the name ↔ index mapping bijective.
	if InputName(k) != name {
		return 0, false
	}

	return k, true
}

// Jobs enumerates the batch jobs in dir, ordered by index. Files not
// matching the in<k>.txt convention are skipped silently; an empty
// directory yields an empty slice.
//
// Errors: the wrapped os.ReadDir failure.
func Jobs(dir string) ([]Job, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("dataset: Jobs: %w", err)
	}

	var (
		jobs []Job
		k    int
		ok   bool
	)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		k, ok = MatchInput(e.Name())
		if !ok {
			continue
		}
		jobs = append(jobs, Job{
			Index:  k,
			Input:  filepath.Join(dir, e.Name()),
			Output: filepath.Join(dir, OutputName(k)),
		})
	}
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].Index < jobs[j].Index })

	return jobs, nil
}
