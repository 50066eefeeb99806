package schedule

import (
	"cmp"

	"golang.org/x/exp/slices"
)

// Priority reorders processes by ascending priority value, keeping input
// order among equal priorities, and then applies the FCFS formula to the new
// order. The slice is sorted in place.
func Priority(processes []Process) []TimeSlice {
	slices.SortStableFunc(processes, func(a, b Process) int {
		return cmp.Compare(a.Priority, b.Priority)
	})
	return FCFS(processes)
}
