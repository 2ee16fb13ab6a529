// Package problem reads solver instances from their textual wire format.
//
// An instance is a header line followed by a CSV cost table:
//
//	numIterations numRestarts seed
//	0,10,15,20
//	10,0,35,25
//	15,35,0,30
//	20,25,30,0
//
// The header carries the run parameters as three space-separated integers.
// Every following line is one matrix row; row k lists the directed costs
// from city k to cities 0..n-1. The table must be square, which the
// distance package enforces on construction.
//
// Contracts:
//   - Read consumes the whole reader and never retains it.
//   - Syntax errors carry 1-based line numbers and match ErrBadHeader or
//     ErrBadRow via errors.Is.
//   - Shape errors surface distance.ErrInvalidMatrix unchanged.
//   - Range checking of the header values is left to shotgun.Solve.
package problem

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jessbispo/tsp-parallel/distance"
	"github.com/jessbispo/tsp-parallel/shotgun"
)

var (
	// ErrBadHeader - the first line is not three space-separated integers.
	ErrBadHeader = errors.New("problem: malformed header")

	// ErrBadRow - a matrix line holds a cell that does not parse as float.
	ErrBadRow = errors.New("problem: malformed matrix row")
)

// maxLineBytes caps a single input line; a dense thousand-city row of
// long decimals still fits with a wide margin.
const maxLineBytes = 8 << 20

// Instance bundles a cost table with the run parameters that arrived
// alongside it on the wire.
type Instance struct {
	// Iterations is the sweep budget for each hill climb.
	Iterations int

	// Restarts is the number of independent climbs to fire.
	Restarts int

	// Seed is the base seed for restart derivation.
	Seed int64

	// Matrix is the parsed directed cost table.
	Matrix *distance.Matrix
}

// Options maps the header values onto solver options. Workers is left at
// zero so the caller decides the degree of parallelism.
func (in *Instance) Options() shotgun.Options {
	return shotgun.Options{
		Iterations: in.Iterations,
		Restarts:   in.Restarts,
		Seed:       in.Seed,
	}
}

// Read parses one instance from r.
//
// The header is consumed first, then every remaining line is taken as a
// matrix row. Trailing carriage returns are tolerated; blank lines are not.
func Read(r io.Reader) (*Instance, error) {
	var (
		sc     = bufio.NewScanner(r)
		inst   = &Instance{}
		rows   [][]float64
		lineNo int
		err    error
	)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	// Header line: numIterations numRestarts seed.
	if !sc.Scan() {
		if err = sc.Err(); err != nil {
			return nil, fmt.Errorf("problem: read header: %w", err)
		}
		return nil, fmt.Errorf("%w: empty input", ErrBadHeader)
	}
	lineNo++
	if err = parseHeader(sc.Text(), inst); err != nil {
		return nil, err
	}

	// Matrix body: one CSV row per line until EOF.
	var row []float64
	for sc.Scan() {
		lineNo++
		if row, err = parseRow(sc.Text(), lineNo); err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("problem: read line %d: %w", lineNo+1, err)
	}

	if inst.Matrix, err = distance.New(rows); err != nil {
		return nil, err
	}

	return inst, nil
}

// ReadFile opens path and parses the instance it contains.
func ReadFile(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("problem: open %s: %w", path, err)
	}
	defer f.Close()

	return Read(f)
}

// parseHeader fills the run parameters from the first input line.
func parseHeader(line string, inst *Instance) error {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return fmt.Errorf("%w: want 3 fields, got %d", ErrBadHeader, len(fields))
	}

	var err error
	if inst.Iterations, err = strconv.Atoi(fields[0]); err != nil {
		return fmt.Errorf("%w: iterations %q", ErrBadHeader, fields[0])
	}
	if inst.Restarts, err = strconv.Atoi(fields[1]); err != nil {
		return fmt.Errorf("%w: restarts %q", ErrBadHeader, fields[1])
	}
	if inst.Seed, err = strconv.ParseInt(fields[2], 10, 64); err != nil {
		return fmt.Errorf("%w: seed %q", ErrBadHeader, fields[2])
	}

	return nil
}

// parseRow splits one comma-separated matrix line into costs.
func parseRow(line string, lineNo int) ([]float64, error) {
	var (
		cells = strings.Split(line, ",")
		row   = make([]float64, len(cells))
		cell  string
		k     int
		err   error
	)
	for k, cell = range cells {
		if row[k], err = strconv.ParseFloat(strings.TrimSpace(cell), 64); err != nil {
			return nil, fmt.Errorf("%w: line %d, cell %d: %q", ErrBadRow, lineNo, k+1, cell)
		}
	}

	return row, nil
}
