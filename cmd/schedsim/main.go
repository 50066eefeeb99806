package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/Abbub1/schedsim/internal/config"
	"github.com/Abbub1/schedsim/internal/loader"
	"github.com/Abbub1/schedsim/internal/report"
	"github.com/Abbub1/schedsim/internal/simulator"
	"github.com/Abbub1/schedsim/internal/telemetry"
)

var ErrInvalidArgs = errors.New("invalid args")

func main() {
	os.Exit(run(os.Stdout, os.Stderr, os.Args...))
}

// run is main without the process exit; it returns the exit code.
func run(stdout, stderr io.Writer, args ...string) int {
	// CLI args
	path, err := processingFile(args...)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "%v\nUsage: %s <input-file-path>\n", err, programName(args))
		return 1
	}

	cfg, err := config.Load(".env")
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "Error:", err)
		return 1
	}

	logger, err := telemetry.NewLogger(cfg.LogLevel)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	// Load and parse processes once; every algorithm works on its own copy
	processes, err := loader.LoadFile(path)
	if err != nil {
		logger.Error("cannot load processes", zap.String("path", path), zap.Error(err))
		_, _ = fmt.Fprintln(stderr, "Error: Invalid filepath or input:", err)
		return 1
	}
	logger.Debug("processes loaded", zap.String("path", path), zap.Int("count", len(processes)))

	algorithms, err := cfg.SelectedAlgorithms()
	if err != nil {
		logger.Error("invalid algorithm selection", zap.Error(err))
		return 1
	}

	recorder := telemetry.NewRecorder(logger)
	results, err := simulator.New(cfg.Quantum, logger, recorder).Run(processes, algorithms)
	if err != nil {
		logger.Error("simulation failed", zap.Error(err))
		return 1
	}

	report.WriteAll(stdout, results)

	if cfg.ChartPath != "" {
		if err := report.SaveChart(cfg.ChartPath, results); err != nil {
			logger.Error("cannot save comparison chart", zap.Error(err))
			return 1
		}
		logger.Info("comparison chart saved", zap.String("path", cfg.ChartPath))
	}

	if err := recorder.Flush(cfg.GraphiteHost); err != nil {
		logger.Warn("metrics not exported", zap.Error(err))
	}
	return 0
}

func processingFile(args ...string) (string, error) {
	if len(args) != 2 {
		return "", fmt.Errorf("%w: must give a scheduling file to process", ErrInvalidArgs)
	}
	return args[1], nil
}

func programName(args []string) string {
	if len(args) == 0 {
		return "schedsim"
	}
	return args[0]
}
