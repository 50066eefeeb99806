package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Abbub1/schedsim/internal/schedule"
)

// MaxHorizon caps the latest arrival plus the total burst of one process set.
// Every simulated clock value stays below it, so no running sum can overflow
// and round robin's sweep count stays small.
const MaxHorizon int64 = 1_000_000

var (
	ErrInvalidProcess  = errors.New("invalid process")
	ErrDuplicatePID    = errors.New("duplicate process id")
	ErrHorizonExceeded = fmt.Errorf("%w: schedule horizon exceeds %d", ErrInvalidProcess, MaxHorizon)
)

// LoadFile opens path and parses it with LoadProcesses.
func LoadFile(path string) ([]schedule.Process, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: error opening scheduling file", err)
	}
	defer f.Close()

	return LoadProcesses(f)
}

// LoadProcesses reads one process per CSV row: pid, burst, arrival and an
// optional priority. Blank lines and lines starting with '#' are skipped.
func LoadProcesses(r io.Reader) ([]schedule.Process, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	processes := make([]schedule.Process, 0)
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: reading CSV", err)
		}
		line, _ := reader.FieldPos(0)

		p, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		processes = append(processes, p)
	}

	if err := Validate(processes); err != nil {
		return nil, err
	}
	return processes, nil
}

// Validate enforces what the schedulers assume: positive bursts, arrivals at
// or after zero, unique ids, and a latest arrival plus total burst no larger
// than MaxHorizon.
func Validate(processes []schedule.Process) error {
	var lastArrival, totalBurst int64
	seen := make(map[int64]int, len(processes))
	for i, p := range processes {
		if p.BurstDuration <= 0 {
			return fmt.Errorf("%w: process %d: burst must be positive, got %d", ErrInvalidProcess, p.ProcessID, p.BurstDuration)
		}
		if p.ArrivalTime < 0 {
			return fmt.Errorf("%w: process %d: arrival must not be negative, got %d", ErrInvalidProcess, p.ProcessID, p.ArrivalTime)
		}
		if first, ok := seen[p.ProcessID]; ok {
			return fmt.Errorf("%w: %d at positions %d and %d", ErrDuplicatePID, p.ProcessID, first+1, i+1)
		}
		seen[p.ProcessID] = i

		// each term is checked before adding so the sum cannot wrap
		if p.ArrivalTime > MaxHorizon || p.BurstDuration > MaxHorizon-totalBurst {
			return fmt.Errorf("%w: at process %d", ErrHorizonExceeded, p.ProcessID)
		}
		totalBurst += p.BurstDuration
		lastArrival = max(lastArrival, p.ArrivalTime)
		if lastArrival > MaxHorizon-totalBurst {
			return fmt.Errorf("%w: at process %d", ErrHorizonExceeded, p.ProcessID)
		}
	}
	return nil
}

func parseRow(row []string) (schedule.Process, error) {
	if len(row) != 3 && len(row) != 4 {
		return schedule.Process{}, fmt.Errorf("%w: want 3 or 4 fields, got %d", ErrInvalidProcess, len(row))
	}

	fields := make([]int64, len(row))
	for i := range row {
		v, err := strconv.ParseInt(strings.TrimSpace(row[i]), 10, 64)
		if err != nil {
			return schedule.Process{}, fmt.Errorf("%w: field %d: %v", ErrInvalidProcess, i+1, err)
		}
		fields[i] = v
	}

	p := schedule.Process{
		ProcessID:     fields[0],
		BurstDuration: fields[1],
		ArrivalTime:   fields[2],
	}
	if len(fields) == 4 {
		p.Priority = fields[3]
	}
	return p, nil
}
