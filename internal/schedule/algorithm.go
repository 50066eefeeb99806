package schedule

import (
	"errors"
	"fmt"
	"strings"
)

// Algorithm identifies one of the scheduling policies.
type Algorithm string

const (
	AlgorithmFCFS       Algorithm = "fcfs"
	AlgorithmSJF        Algorithm = "sjf"
	AlgorithmPriority   Algorithm = "priority"
	AlgorithmRoundRobin Algorithm = "rr"
)

// DefaultQuantum is the round robin time slice used when none is configured.
const DefaultQuantum int64 = 2

var (
	ErrUnknownAlgorithm = errors.New("unknown scheduling algorithm")
	ErrInvalidQuantum   = errors.New("round robin quantum must be positive")
)

// Algorithms lists every policy in presentation order.
var Algorithms = []Algorithm{AlgorithmFCFS, AlgorithmSJF, AlgorithmPriority, AlgorithmRoundRobin}

// ParseAlgorithm maps a name such as "rr" or "FCFS" to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	alg := Algorithm(strings.ToLower(strings.TrimSpace(name)))
	switch alg {
	case AlgorithmFCFS, AlgorithmSJF, AlgorithmPriority, AlgorithmRoundRobin:
		return alg, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Title is the section heading used when printing a result.
func (a Algorithm) Title(quantum int64) string {
	switch a {
	case AlgorithmFCFS:
		return "First-come, first-serve"
	case AlgorithmSJF:
		return "Shortest-job-first"
	case AlgorithmPriority:
		return "Priority"
	case AlgorithmRoundRobin:
		return fmt.Sprintf("Round-robin (quantum = %d)", quantum)
	}
	return string(a)
}

// Result is the outcome of one algorithm over one copy of the input.
type Result struct {
	Algorithm     Algorithm   `json:"algorithm"`
	Title         string      `json:"title"`
	Quantum       int64       `json:"quantum,omitempty"`
	Processes     []Process   `json:"processes"`
	Gantt         []TimeSlice `json:"gantt"`
	AveWait       float64     `json:"average_waiting_time"`
	AveTurnaround float64     `json:"average_turnaround_time"`
	Throughput    float64     `json:"throughput"`
}

// Run schedules a private copy of processes with alg and derives turnaround
// times and averages. The caller's slice is never modified. quantum is only
// read by round robin.
func Run(alg Algorithm, processes []Process, quantum int64) (Result, error) {
	work := Clone(processes)

	var gantt []TimeSlice
	switch alg {
	case AlgorithmFCFS:
		gantt = FCFS(work)
	case AlgorithmSJF:
		gantt = SJF(work)
	case AlgorithmPriority:
		gantt = Priority(work)
	case AlgorithmRoundRobin:
		if quantum <= 0 {
			return Result{}, fmt.Errorf("%w: got %d", ErrInvalidQuantum, quantum)
		}
		gantt = RoundRobin(work, quantum)
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(alg))
	}

	FindTurnaroundTimes(work)
	aveWait, aveTurnaround := Averages(work)

	res := Result{
		Algorithm:     alg,
		Title:         alg.Title(quantum),
		Processes:     work,
		Gantt:         gantt,
		AveWait:       aveWait,
		AveTurnaround: aveTurnaround,
		Throughput:    Throughput(len(work), gantt),
	}
	if alg == AlgorithmRoundRobin {
		res.Quantum = quantum
	}
	return res, nil
}
