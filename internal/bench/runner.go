// Package bench measures solver throughput and tour quality across
// instance sizes, comparing sequential and parallel execution of the
// same restart budget.
package bench

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/jessbispo/tsp-parallel/distance"
	"github.com/jessbispo/tsp-parallel/shotgun"
)

// Mode names one execution strategy for the shared restart budget.
type Mode struct {
	Name    string
	Workers int // 1 pins the pool to one goroutine, 0 uses every CPU
}

// Case describes one benchmark instance.
type Case struct {
	Cities       int
	InstanceSeed int64
}

// Record aggregates the measurements of one (case, mode) pair.
type Record struct {
	Mode   string
	Cities int
	Runs   int

	TimeBestMs float64
	TimeMeanMs float64
	TimeStdMs  float64

	LengthBest float64
	LengthMean float64
	LengthStd  float64
}

// Runner repeats each case several times with distinct run seeds.
type Runner struct {
	Runs       int
	BaseSeed   int64
	Iterations int
	Restarts   int
}

// RunCase generates the case instance, solves it Runs times under the
// given mode and aggregates lengths and wall-clock times.
func (r Runner) RunCase(c Case, mode Mode) (Record, error) {
	m, err := distance.New(randomCosts(c.Cities, randForSeed(c.InstanceSeed)))
	if err != nil {
		return Record{}, fmt.Errorf("case %dc: build instance: %w", c.Cities, err)
	}

	lengths := make([]float64, 0, r.Runs)
	timesMs := make([]float64, 0, r.Runs)

	for i := 0; i < r.Runs; i++ {
		opts := shotgun.Options{
			Iterations: r.Iterations,
			Restarts:   r.Restarts,
			Seed:       r.BaseSeed + int64(i),
			Workers:    mode.Workers,
		}

		start := time.Now()
		res, err := shotgun.Solve(m, opts)
		dur := time.Since(start)

		if err != nil {
			return Record{}, fmt.Errorf("run %d: solve error: %w", i, err)
		}
		if len(res.Tour) != c.Cities {
			return Record{}, fmt.Errorf("run %d: invalid tour length %d (want %d)", i, len(res.Tour), c.Cities)
		}

		lengths = append(lengths, res.Length)
		timesMs = append(timesMs, float64(dur.Microseconds())/1000.0)
	}

	lStats := CalcFloatStats(lengths)
	tStats := CalcFloatStats(timesMs)

	return Record{
		Mode:   mode.Name,
		Cities: c.Cities,
		Runs:   r.Runs,

		TimeBestMs: tStats.Best,
		TimeMeanMs: tStats.Mean,
		TimeStdMs:  tStats.Std,

		LengthBest: lStats.Best,
		LengthMean: lStats.Mean,
		LengthStd:  lStats.Std,
	}, nil
}

// WriteCSV dumps records to path, creating parent directories as needed.
func WriteCSV(path string, records []Record) error {
	if dir := dirOf(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"mode", "cities", "runs",
		"time_best_ms", "time_mean_ms", "time_std_ms",
		"length_best", "length_mean", "length_std",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{
			r.Mode,
			itoa(r.Cities),
			itoa(r.Runs),

			ftoa(r.TimeBestMs),
			ftoa(r.TimeMeanMs),
			ftoa(r.TimeStdMs),

			ftoa(r.LengthBest),
			ftoa(r.LengthMean),
			ftoa(r.LengthStd),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}
