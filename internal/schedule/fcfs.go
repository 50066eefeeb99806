package schedule

// FCFS fills in waiting times for processes in the order given. The first
// process waits for its own arrival time; every later one waits for the
// previous process's wait plus its burst. Arrival times after the first are
// not consulted and the slice is not reordered.
func FCFS(processes []Process) []TimeSlice {
	if len(processes) == 0 {
		return nil
	}

	gantt := make([]TimeSlice, 0, len(processes))
	processes[0].WaitingTime = processes[0].ArrivalTime
	for i := 1; i < len(processes); i++ {
		processes[i].WaitingTime = processes[i-1].WaitingTime + processes[i-1].BurstDuration
	}
	for i := range processes {
		start := processes[i].WaitingTime
		gantt = append(gantt, TimeSlice{
			PID:   processes[i].ProcessID,
			Start: start,
			Stop:  start + processes[i].BurstDuration,
		})
	}

	return gantt
}
