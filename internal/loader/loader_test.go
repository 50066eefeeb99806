package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abbub1/schedsim/internal/schedule"
)

func TestLoadProcesses(t *testing.T) {
	t.Run("three and four column rows", func(t *testing.T) {
		input := "# pid, burst, arrival, priority\n1, 5, 0, 2\n\n2,3,1\n"
		got, err := LoadProcesses(strings.NewReader(input))
		require.NoError(t, err)
		assert.Equal(t, []schedule.Process{
			{ProcessID: 1, BurstDuration: 5, ArrivalTime: 0, Priority: 2},
			{ProcessID: 2, BurstDuration: 3, ArrivalTime: 1},
		}, got)
	})

	t.Run("empty input", func(t *testing.T) {
		got, err := LoadProcesses(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	tests := []struct {
		name  string
		input string
		err   error
		line  string
	}{
		{"not a number", "1,5,0\n2,x,0\n", ErrInvalidProcess, "line 2"},
		{"too few fields", "1,5\n", ErrInvalidProcess, "line 1"},
		{"too many fields", "1,5,0,1,9\n", ErrInvalidProcess, "line 1"},
		{"zero burst", "1,0,0\n", ErrInvalidProcess, "burst"},
		{"negative arrival", "1,3,-1\n", ErrInvalidProcess, "arrival"},
		{"duplicate pid", "7,3,0\n7,4,1\n", ErrDuplicatePID, "positions 1 and 2"},
		{"burst at int64 limit", "1,5,0\n2,9223372036854775807,0\n3,8,0\n", ErrHorizonExceeded, "process 2"},
		{"arrival past horizon", "1,5,4000000000000000000\n", ErrHorizonExceeded, "process 1"},
		{"total burst past horizon", "1,600000,0\n2,400001,0\n", ErrHorizonExceeded, "process 2"},
		{"late arrival plus bursts past horizon", "1,10,0\n2,1,999990\n", ErrHorizonExceeded, "process 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadProcesses(strings.NewReader(tt.input))
			require.ErrorIs(t, err, tt.err)
			assert.Contains(t, err.Error(), tt.line)
		})
	}
}

func TestValidateHorizon(t *testing.T) {
	t.Run("exactly at horizon", func(t *testing.T) {
		err := Validate([]schedule.Process{
			{ProcessID: 1, BurstDuration: 10, ArrivalTime: 0},
			{ProcessID: 2, BurstDuration: 5, ArrivalTime: MaxHorizon - 15},
		})
		assert.NoError(t, err)
	})

	t.Run("bursts that would wrap int64", func(t *testing.T) {
		err := Validate([]schedule.Process{
			{ProcessID: 1, BurstDuration: 1 << 62, ArrivalTime: 0},
			{ProcessID: 2, BurstDuration: 1 << 62, ArrivalTime: 0},
			{ProcessID: 3, BurstDuration: 1 << 62, ArrivalTime: 0},
		})
		require.ErrorIs(t, err, ErrHorizonExceeded)
		assert.ErrorIs(t, err, ErrInvalidProcess)
	})
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "processes.csv")
	require.NoError(t, os.WriteFile(path, []byte("1,5,0,3\n2,3,0,1\n3,8,0,2\n"), 0o600))

	got, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, got, 3)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadSample(t *testing.T) {
	got, err := LoadFile(filepath.Join("testdata", "processes.csv"))
	require.NoError(t, err)
	require.Len(t, got, 4)

	res, err := schedule.Run(schedule.AlgorithmSJF, got, schedule.DefaultQuantum)
	require.NoError(t, err)
	wait := make([]int64, 0, len(res.Processes))
	for _, p := range res.Processes {
		wait = append(wait, p.WaitingTime)
	}
	assert.Equal(t, []int64{9, 1, 0, 2}, wait)
}
