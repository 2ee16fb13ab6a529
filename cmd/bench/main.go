// Command bench compares sequential and parallel solver runs across
// instance sizes and writes the aggregated measurements to CSV.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/jessbispo/tsp-parallel/internal/bench"
)

func main() {
	var (
		out          = flag.String("out", "artifacts/results.csv", "output CSV path")
		sizes        = flag.String("sizes", "50,100,200", "comma-separated city counts")
		modes        = flag.String("modes", "seq,par", "execution modes: seq, par (comma-separated)")
		runs         = flag.Int("runs", 10, "solver runs per (size, mode) pair, each with its own seed")
		baseSeed     = flag.Int64("seed", 1000, "base seed for solver runs")
		instanceSeed = flag.Int64("instance_seed", 777, "base seed for instance generation (fixed per size)")
		iterations   = flag.Int("iterations", 1000, "hill climbing sweep budget per restart")
		restarts     = flag.Int("restarts", 50, "independent restarts per run")
	)
	flag.Parse()

	cases, err := parseSizes(*sizes, *instanceSeed)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(2)
	}

	available := map[string]bench.Mode{
		"seq": {Name: "seq", Workers: 1},
		"par": {Name: "par", Workers: 0},
	}

	var selected []bench.Mode
	for _, name := range splitCSV(*modes) {
		mode, ok := available[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "Unknown mode %q; available: %v\n", name, keys(available))
			os.Exit(2)
		}
		selected = append(selected, mode)
	}

	runner := bench.Runner{
		Runs:       *runs,
		BaseSeed:   *baseSeed,
		Iterations: *iterations,
		Restarts:   *restarts,
	}

	var records []bench.Record
	for _, c := range cases {
		perMode := make(map[string]bench.Record, len(selected))

		for _, mode := range selected {
			fmt.Printf("Running %s on %d cities (%d runs, %d restarts x %d iterations)...\n",
				mode.Name, c.Cities, runner.Runs, runner.Restarts, runner.Iterations)

			rec, err := runner.RunCase(c, mode)
			if err != nil {
				fmt.Fprintln(os.Stderr, "Error:", err)
				os.Exit(1)
			}
			records = append(records, rec)
			perMode[mode.Name] = rec

			fmt.Printf("  length: best=%.2f mean=%.2f std=%.2f | time: mean=%.2fms std=%.2fms\n",
				rec.LengthBest, rec.LengthMean, rec.LengthStd,
				rec.TimeMeanMs, rec.TimeStdMs,
			)
		}

		if seq, ok := perMode["seq"]; ok {
			if par, ok := perMode["par"]; ok && par.TimeMeanMs > 0 {
				fmt.Printf("  speedup (seq/par mean time): %.2fx\n", seq.TimeMeanMs/par.TimeMeanMs)
			}
		}
	}

	if err := bench.WriteCSV(*out, records); err != nil {
		fmt.Fprintln(os.Stderr, "Error writing CSV:", err)
		os.Exit(1)
	}
	fmt.Println("Saved:", *out)
}

// helpers

func parseSizes(s string, baseInstanceSeed int64) ([]bench.Case, error) {
	parts := splitCSV(s)
	cases := make([]bench.Case, 0, len(parts))

	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("size %q: %w", p, err)
		}
		if n <= 0 {
			return nil, fmt.Errorf("size %q: city count must be > 0", p)
		}

		seed := baseInstanceSeed + int64(i)*10_000 + int64(n)

		cases = append(cases, bench.Case{
			Cities:       n,
			InstanceSeed: seed,
		})
	}

	return cases, nil
}

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func keys(m map[string]bench.Mode) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
