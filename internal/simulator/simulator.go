package simulator

import (
	"time"

	"go.uber.org/zap"

	"github.com/Abbub1/schedsim/internal/schedule"
	"github.com/Abbub1/schedsim/internal/telemetry"
)

// Simulator runs scheduling algorithms against one canonical process set.
type Simulator struct {
	quantum  int64
	logger   *zap.Logger
	recorder *telemetry.Recorder
}

// New returns a Simulator. recorder may be nil.
func New(quantum int64, logger *zap.Logger, recorder *telemetry.Recorder) *Simulator {
	return &Simulator{
		quantum:  quantum,
		logger:   logger,
		recorder: recorder,
	}
}

// Run schedules a fresh copy of canonical with each algorithm, in the order
// given, and returns one result per algorithm. canonical is not modified.
func (s *Simulator) Run(canonical []schedule.Process, algorithms []schedule.Algorithm) ([]schedule.Result, error) {
	return s.RunWithQuantum(canonical, algorithms, s.quantum)
}

// RunWithQuantum is Run with a per-call round robin quantum.
func (s *Simulator) RunWithQuantum(canonical []schedule.Process, algorithms []schedule.Algorithm, quantum int64) ([]schedule.Result, error) {
	results := make([]schedule.Result, 0, len(algorithms))
	for _, alg := range algorithms {
		start := time.Now()
		res, err := schedule.Run(alg, canonical, quantum)
		if err != nil {
			s.logger.Error("scheduling failed", zap.String("algorithm", string(alg)), zap.Error(err))
			if s.recorder != nil {
				s.recorder.Failure(alg)
			}
			return nil, err
		}

		s.logger.Debug("scheduled",
			zap.String("algorithm", string(alg)),
			zap.Int("processes", len(res.Processes)),
			zap.Float64("avg_wait", res.AveWait),
			zap.Float64("avg_turnaround", res.AveTurnaround),
			zap.Duration("took", time.Since(start)))
		if s.recorder != nil {
			s.recorder.Observe(res, start)
		}
		results = append(results, res)
	}
	return results, nil
}
