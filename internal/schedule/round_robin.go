package schedule

// RoundRobin sweeps the processes in input order, granting each unfinished one
// up to quantum units per sweep, until all are done. Arrival time does not gate
// participation: every process is eligible from t=0 and the sweep order never
// changes. Waiting time is completion - burst - arrival, clamped at zero.
//
// quantum must be positive; Run enforces that.
func RoundRobin(processes []Process, quantum int64) []TimeSlice {
	var (
		remaining = make([]int64, len(processes))
		gantt     = make([]TimeSlice, 0)
		t         int64
	)
	for i := range processes {
		remaining[i] = processes[i].BurstDuration
	}

	for {
		done := true

		for i := range processes {
			if remaining[i] <= 0 {
				continue
			}
			done = false

			if remaining[i] > quantum {
				gantt = appendSlice(gantt, processes[i].ProcessID, t, t+quantum)
				t += quantum
				remaining[i] -= quantum
				continue
			}

			gantt = appendSlice(gantt, processes[i].ProcessID, t, t+remaining[i])
			t += remaining[i]
			remaining[i] = 0
			processes[i].WaitingTime = clampWait(t - processes[i].BurstDuration - processes[i].ArrivalTime)
		}

		if done {
			return gantt
		}
	}
}
