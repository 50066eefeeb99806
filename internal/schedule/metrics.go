package schedule

// FindTurnaroundTimes sets TurnaroundTime = BurstDuration + WaitingTime for
// every process. It is the same for every algorithm.
func FindTurnaroundTimes(processes []Process) {
	for i := range processes {
		processes[i].TurnaroundTime = processes[i].BurstDuration + processes[i].WaitingTime
	}
}

// Averages returns the mean waiting and turnaround times. Both are 0 for an
// empty slice.
func Averages(processes []Process) (aveWait, aveTurnaround float64) {
	if len(processes) == 0 {
		return 0, 0
	}

	var totalWait, totalTurnaround int64
	for i := range processes {
		totalWait += processes[i].WaitingTime
		totalTurnaround += processes[i].TurnaroundTime
	}

	count := float64(len(processes))
	return float64(totalWait) / count, float64(totalTurnaround) / count
}

// Throughput is processes completed per time unit over the whole timeline.
func Throughput(count int, gantt []TimeSlice) float64 {
	var lastCompletion int64
	for _, slice := range gantt {
		if slice.Stop > lastCompletion {
			lastCompletion = slice.Stop
		}
	}
	if count == 0 || lastCompletion == 0 {
		return 0
	}
	return float64(count) / float64(lastCompletion)
}
