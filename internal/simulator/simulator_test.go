package simulator

import (
	"testing"

	"github.com/rcrowley/go-metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/Abbub1/schedsim/internal/schedule"
	"github.com/Abbub1/schedsim/internal/telemetry"
)

func canonical() []schedule.Process {
	return []schedule.Process{
		{ProcessID: 1, BurstDuration: 5, Priority: 3},
		{ProcessID: 2, BurstDuration: 3, Priority: 1},
		{ProcessID: 3, BurstDuration: 8, Priority: 2},
	}
}

func TestSimulatorRun(t *testing.T) {
	logger := zaptest.NewLogger(t)
	rec := telemetry.NewRecorder(logger)
	sim := New(2, logger, rec)

	input := canonical()
	results, err := sim.Run(input, schedule.Algorithms)
	require.NoError(t, err)
	require.Len(t, results, 4)

	want := map[schedule.Algorithm][]int64{
		schedule.AlgorithmFCFS:       {0, 5, 8},
		schedule.AlgorithmSJF:        {3, 0, 8},
		schedule.AlgorithmPriority:   {0, 3, 11},
		schedule.AlgorithmRoundRobin: {7, 6, 8},
	}
	for i, res := range results {
		assert.Equal(t, schedule.Algorithms[i], res.Algorithm)
		got := make([]int64, 0, len(res.Processes))
		for _, p := range res.Processes {
			got = append(got, p.WaitingTime)
		}
		assert.Equal(t, want[res.Algorithm], got, res.Algorithm)
	}

	assert.Equal(t, canonical(), input)
	assert.Equal(t, int64(3), rec.Registry().Get("rr.processes").(metrics.Counter).Count())
}

func TestSimulatorRunWithQuantum(t *testing.T) {
	sim := New(2, zaptest.NewLogger(t), nil)

	results, err := sim.RunWithQuantum(canonical(), []schedule.Algorithm{schedule.AlgorithmRoundRobin}, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(100), results[0].Quantum)
	assert.InDelta(t, 13.0/3.0, results[0].AveWait, 1e-9)

	_, err = sim.RunWithQuantum(canonical(), []schedule.Algorithm{schedule.AlgorithmRoundRobin}, 0)
	assert.ErrorIs(t, err, schedule.ErrInvalidQuantum)
}

func TestSimulatorRecordsFailures(t *testing.T) {
	logger := zaptest.NewLogger(t)
	rec := telemetry.NewRecorder(logger)
	sim := New(2, logger, rec)

	_, err := sim.Run(canonical(), []schedule.Algorithm{"lottery"})
	assert.ErrorIs(t, err, schedule.ErrUnknownAlgorithm)
	assert.Equal(t, int64(1), rec.Registry().Get("lottery.failures").(metrics.Counter).Count())
}
