package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abbub1/schedsim/internal/schedule"
)

func results(t *testing.T) []schedule.Result {
	t.Helper()
	canonical := []schedule.Process{
		{ProcessID: 1, BurstDuration: 5, Priority: 3},
		{ProcessID: 2, BurstDuration: 3, Priority: 1},
		{ProcessID: 3, BurstDuration: 8, Priority: 2},
	}
	out := make([]schedule.Result, 0, len(schedule.Algorithms))
	for _, alg := range schedule.Algorithms {
		res, err := schedule.Run(alg, canonical, 2)
		require.NoError(t, err)
		out = append(out, res)
	}
	return out
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	Write(&buf, results(t)[0])
	out := buf.String()

	assert.Contains(t, out, "First-come, first-serve")
	assert.Contains(t, out, "Gantt schedule")
	assert.Contains(t, out, "|   1   |   2   |   3   |")
	assert.Contains(t, out, "0\t5\t8\t16")
	assert.Contains(t, out, "Schedule table")
	assert.Contains(t, out, "TURNAROUND")
	assert.Contains(t, out, "Average waiting time = 4.33")
	assert.Contains(t, out, "Average turn around time = 9.67")
}

func TestWriteGanttIdle(t *testing.T) {
	t.Run("before first arrival", func(t *testing.T) {
		res, err := schedule.Run(schedule.AlgorithmSJF, []schedule.Process{{ProcessID: 1, BurstDuration: 1, ArrivalTime: 2}}, 2)
		require.NoError(t, err)

		var buf bytes.Buffer
		Write(&buf, res)
		assert.Contains(t, buf.String(), "|  idle  |   1   |\n0\t2\t3\n")
	})

	t.Run("between bursts", func(t *testing.T) {
		res, err := schedule.Run(schedule.AlgorithmSJF, []schedule.Process{
			{ProcessID: 1, BurstDuration: 2},
			{ProcessID: 2, BurstDuration: 1, ArrivalTime: 10},
		}, 2)
		require.NoError(t, err)

		var buf bytes.Buffer
		Write(&buf, res)
		assert.Contains(t, buf.String(), "|   1   |  idle  |   2   |\n0\t2\t10\t11\n")
	})

	t.Run("long ids keep a space either side", func(t *testing.T) {
		var buf bytes.Buffer
		outputGantt(&buf, []schedule.TimeSlice{{PID: 1234567890, Start: 0, Stop: 4}})
		assert.Contains(t, buf.String(), "| 1234567890 |\n0\t4\n")
	})
}

func TestWriteEmpty(t *testing.T) {
	res, err := schedule.Run(schedule.AlgorithmSJF, nil, 2)
	require.NoError(t, err)

	var buf bytes.Buffer
	Write(&buf, res)
	assert.Contains(t, buf.String(), "Average waiting time = 0.00")
	assert.Contains(t, buf.String(), "Average turn around time = 0.00")
}

func TestWriteAll(t *testing.T) {
	var buf bytes.Buffer
	WriteAll(&buf, results(t))
	out := buf.String()

	for _, title := range []string{"Shortest-job-first", "Priority", "Round-robin (quantum = 2)", "Comparison"} {
		assert.Contains(t, out, title)
	}
	assert.Contains(t, out, "Average waiting time = 7.00")
	assert.Contains(t, out, "0.19/t")
}

func TestSaveChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "comparison.png")
	require.NoError(t, SaveChart(path, results(t)))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	assert.ErrorIs(t, SaveChart(path, nil), errNoResults)
}
