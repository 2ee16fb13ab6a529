// Command solve reads a TSP instance and prints the best tour found.
//
// The instance arrives on stdin (or from a file given as the only
// argument): a header line "numIterations numRestarts seed" followed by
// the CSV cost matrix. Results go to stdout; diagnostics go to stderr as
// structured logs. Host tuning comes from TSP_WORKERS and TSP_LOG_LEVEL.
//
//	$ ./solve < instance.txt
//	Best tour found: 0 1 3 2
//	Tour length: 80
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/jessbispo/tsp-parallel/internal/config"
	"github.com/jessbispo/tsp-parallel/problem"
	"github.com/jessbispo/tsp-parallel/shotgun"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	flag.Parse()

	inst, err := readInstance(flag.Arg(0))
	if err != nil {
		logger.Error("failed to read instance", "error", err)
		os.Exit(1)
	}

	opts := inst.Options()
	opts.Workers = cfg.Workers

	workers := opts.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	logger.Info("solving instance",
		"cities", inst.Matrix.N(),
		"iterations", opts.Iterations,
		"restarts", opts.Restarts,
		"seed", opts.Seed,
		"workers", workers,
	)

	start := time.Now()
	res, err := shotgun.Solve(inst.Matrix, opts)
	if err != nil {
		logger.Error("solving failed", "error", err)
		os.Exit(1)
	}
	logger.Info("solved", "length", res.Length, "elapsed", time.Since(start))

	printResult(res)
}

// readInstance pulls the instance from path, or from stdin when path is
// empty or "-".
func readInstance(path string) (*problem.Instance, error) {
	if path == "" || path == "-" {
		return problem.Read(os.Stdin)
	}
	return problem.ReadFile(path)
}

// printResult writes the tour and its length to stdout.
func printResult(res shotgun.Result) {
	fmt.Print("Best tour found:")
	for _, city := range res.Tour {
		fmt.Printf(" %d", city)
	}
	fmt.Println()
	fmt.Printf("Tour length: %g\n", res.Length)
}
