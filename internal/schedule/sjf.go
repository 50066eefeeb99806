package schedule

import "math"

// SJF runs preemptive shortest-remaining-time-first.
//
// A process that is already running keeps the CPU until one with strictly
// less remaining time has arrived; when the CPU is free, the arrived process
// with the least remaining time wins and ties go to the lowest index. Waiting
// time is finish - burst - arrival, clamped at zero.
//
// The clock advances from event to event: an idle CPU jumps to the next
// arrival and a running process keeps the CPU until it finishes or something
// new arrives, since nothing can preempt it in between.
func SJF(processes []Process) []TimeSlice {
	var (
		n         = len(processes)
		remaining = make([]int64, n)
		gantt     = make([]TimeSlice, 0)
		complete  int
		t         int64
		shortest  = -1
		minimum   = int64(math.MaxInt64)
	)
	for i := range processes {
		remaining[i] = processes[i].BurstDuration
	}

	for complete != n {
		for j := range processes {
			if processes[j].ArrivalTime <= t && remaining[j] > 0 && remaining[j] < minimum {
				minimum = remaining[j]
				shortest = j
			}
		}

		next, pending := nextArrival(processes, remaining, t)

		// nothing has arrived yet
		if shortest < 0 {
			t = next
			continue
		}

		run := remaining[shortest]
		if pending && next-t < run {
			run = next - t
		}
		remaining[shortest] -= run
		gantt = appendSlice(gantt, processes[shortest].ProcessID, t, t+run)
		t += run

		if remaining[shortest] == 0 {
			processes[shortest].WaitingTime = clampWait(t - processes[shortest].BurstDuration - processes[shortest].ArrivalTime)
			complete++
			shortest = -1
			minimum = math.MaxInt64
		} else {
			minimum = remaining[shortest]
		}
	}

	return gantt
}

// nextArrival reports the earliest arrival after t among unfinished processes.
func nextArrival(processes []Process, remaining []int64, t int64) (int64, bool) {
	next, ok := int64(math.MaxInt64), false
	for j := range processes {
		if remaining[j] > 0 && processes[j].ArrivalTime > t && processes[j].ArrivalTime < next {
			next, ok = processes[j].ArrivalTime, true
		}
	}
	return next, ok
}
