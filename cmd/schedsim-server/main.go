package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgraph-io/ristretto"
	"go.uber.org/zap"

	"github.com/Abbub1/schedsim/internal/api"
	"github.com/Abbub1/schedsim/internal/config"
	"github.com/Abbub1/schedsim/internal/simulator"
	"github.com/Abbub1/schedsim/internal/telemetry"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalln(err)
	}

	logger, err := telemetry.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalln(err)
	}
	defer func() { _ = logger.Sync() }()

	algorithms, err := cfg.SelectedAlgorithms()
	if err != nil {
		logger.Fatal("invalid algorithm selection", zap.Error(err))
	}

	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e5,
		MaxCost:     cfg.CacheMaxCost,
		BufferItems: 64,
	})
	if err != nil {
		logger.Fatal("error initializing ristretto cache", zap.Error(err))
	}
	defer cache.Close()

	recorder := telemetry.NewRecorder(logger)
	sim := simulator.New(cfg.Quantum, logger, recorder)
	app := api.NewApp(api.NewSchedulerHandler(sim, recorder, cache, logger, cfg.Quantum, algorithms))

	go func() {
		addr := fmt.Sprintf(":%d", cfg.Port)
		logger.Info("started api service", zap.String("addr", addr))
		if err := app.Listen(addr); err != nil {
			logger.Error("HTTP server error", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 2)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	shutdownCtx, shutdownRelease := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownRelease()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Error("HTTP shutdown error", zap.Error(err))
	}
	if err := recorder.Flush(cfg.GraphiteHost); err != nil {
		logger.Warn("metrics not exported", zap.Error(err))
	}

	logger.Info("graceful shutdown complete")
}
