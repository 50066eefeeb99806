package schedule

import (
	"golang.org/x/exp/slices"
)

type (
	// Process is one schedulable record. WaitingTime and TurnaroundTime are
	// written by a scheduling run; the other fields are never changed by one.
	Process struct {
		ProcessID      int64 `json:"pid"`
		ArrivalTime    int64 `json:"arrival_time"`
		BurstDuration  int64 `json:"burst_time"`
		Priority       int64 `json:"priority"`
		WaitingTime    int64 `json:"waiting_time"`
		TurnaroundTime int64 `json:"turnaround_time"`
	}
	// TimeSlice is a contiguous stretch of CPU time given to one process.
	TimeSlice struct {
		PID   int64 `json:"pid"`
		Start int64 `json:"start"`
		Stop  int64 `json:"stop"`
	}
)

// Clone returns a copy of processes with the computed outputs reset, so every
// algorithm starts from the same unscheduled state.
func Clone(processes []Process) []Process {
	clone := slices.Clone(processes)
	for i := range clone {
		clone[i].WaitingTime = 0
		clone[i].TurnaroundTime = 0
	}
	return clone
}

// appendSlice adds [start, stop) for pid to gantt, merging it into the last
// slice when the same process simply keeps running.
func appendSlice(gantt []TimeSlice, pid, start, stop int64) []TimeSlice {
	if n := len(gantt); n > 0 && gantt[n-1].PID == pid && gantt[n-1].Stop == start {
		gantt[n-1].Stop = stop
		return gantt
	}
	return append(gantt, TimeSlice{PID: pid, Start: start, Stop: stop})
}

func clampWait(wait int64) int64 {
	if wait < 0 {
		return 0
	}
	return wait
}
