// Command dnalign expands generator-described DNA sequences and computes
// their minimum global alignment cost.
//
// Single-file mode reads one problem description and prints the cost:
//
//	dnalign in1.txt
//
// Batch mode solves every in<k>.txt in a directory and writes each cost
// to the sibling output<k>.txt:
//
//	dnalign -batch testdata/problems
package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/katalvlaran/dnalign/align"
	"github.com/katalvlaran/dnalign/builder"
	"github.com/katalvlaran/dnalign/core"
	"github.com/katalvlaran/dnalign/dataset"
)

var (
	flagBatch = flag.String("batch", "",
		"directory of in<k>.txt problems; each cost is written to output<k>.txt")
	flagMode = flag.String("mode", "linear",
		"alignment engine: 'linear' (linear-space) or 'full' (full matrix)")
	flagMax = flag.Int("max", 0,
		"reject expanded sequences longer than this many symbols (0 = no ceiling)")
)

func main() {
	flag.Parse()

	opts, err := engineOptions()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *flagBatch != "" {
		if flag.NArg() != 0 {
			usage()
		}
		os.Exit(runBatch(*flagBatch, opts))
	}

	if flag.NArg() != 1 {
		usage()
	}
	cost, err := solveFile(flag.Arg(0), opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(cost)
}

// engineOptions maps the command-line flags onto align.Options.
func engineOptions() (*align.Options, error) {
	opts := align.DefaultOptions()
	switch *flagMode {
	case "linear":
		opts.Mode = align.LinearSpace
	case "full":
		opts.Mode = align.FullMatrix
	default:
		return nil, fmt.Errorf("unknown -mode %q (want 'linear' or 'full')", *flagMode)
	}
	if *flagMax < 0 {
		return nil, fmt.Errorf("-max must be non-negative, got %d", *flagMax)
	}
	opts.MaxLength = *flagMax

	return &opts, nil
}

// solveFile parses one problem file, expands both sequences and returns
// their alignment cost. The MaxLength ceiling bounds the expansion itself,
// not just the engine inputs: the doubling growth is rejected by length
// preflight before any bytes are materialized.
func solveFile(name string, opts *align.Options) (int64, error) {
	problem, err := dataset.ParseFile(name)
	if err != nil {
		return 0, err
	}

	var genOpts []builder.Option
	if opts.MaxLength > 0 {
		genOpts = append(genOpts, builder.WithMaxLength(opts.MaxLength))
	}

	s, err := builder.Generate(problem.S, genOpts...)
	if err != nil {
		return 0, fmt.Errorf("%s: first sequence: %w", name, err)
	}
	t, err := builder.Generate(problem.T, genOpts...)
	if err != nil {
		return 0, fmt.Errorf("%s: second sequence: %w", name, err)
	}

	return align.Align(s, t, core.DefaultCostModel(), opts)
}

// runBatch solves every job in dir, continuing past per-file failures,
// and returns the process exit code.
func runBatch(dir string, opts *align.Options) int {
	jobs, err := dataset.Jobs(dir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if len(jobs) == 0 {
		fmt.Fprintf(os.Stderr, "no in<k>.txt files in %s\n", dir)
		return 1
	}

	var (
		cost   int64
		failed int
	)
	for _, job := range jobs {
		cost, err = solveFile(job.Input, opts)
		if err == nil {
			err = os.WriteFile(job.Output, []byte(fmt.Sprintf("%d\n", cost)), 0o644)
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			failed++
			continue
		}
		fmt.Printf("%s: %d\n", job.Input, cost)
	}

	fmt.Printf("solved %d/%d problems\n", len(jobs)-failed, len(jobs))
	if failed > 0 {
		return 1
	}

	return 0
}

func init() {
	flag.Usage = usage
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] problem-file\n", path.Base(os.Args[0]))
	fmt.Fprintf(os.Stderr, "       %s [flags] -batch dir\n", path.Base(os.Args[0]))
	flag.PrintDefaults()
	os.Exit(1)
}
