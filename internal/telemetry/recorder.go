package telemetry

import (
	"fmt"
	"io"
	"net"
	"time"

	graphite "github.com/cyberdelia/go-metrics-graphite"
	"github.com/rcrowley/go-metrics"
	"go.uber.org/zap"

	"github.com/Abbub1/schedsim/internal/schedule"
)

const prefix = "schedsim"

// Recorder keeps per-algorithm run metrics in a go-metrics registry.
type Recorder struct {
	registry metrics.Registry
	logger   *zap.Logger
}

// NewRecorder returns a Recorder with its own registry.
func NewRecorder(logger *zap.Logger) *Recorder {
	return &Recorder{
		registry: metrics.NewRegistry(),
		logger:   logger,
	}
}

// Registry exposes the underlying registry for direct reads of a single
// metric.
func (r *Recorder) Registry() metrics.Registry {
	return r.registry
}

// WriteJSON writes every metric in the registry to w as one JSON object
// keyed by metric name.
func (r *Recorder) WriteJSON(w io.Writer) {
	metrics.WriteJSONOnce(r.registry, w)
}

// Observe records one finished run that started at start.
func (r *Recorder) Observe(res schedule.Result, start time.Time) {
	name := string(res.Algorithm)
	metrics.GetOrRegisterTimer(metricName(name, "run"), r.registry).UpdateSince(start)
	metrics.GetOrRegisterCounter(metricName(name, "processes"), r.registry).Inc(int64(len(res.Processes)))
	metrics.GetOrRegisterGaugeFloat64(metricName(name, "avg_wait"), r.registry).Update(res.AveWait)
	metrics.GetOrRegisterGaugeFloat64(metricName(name, "avg_turnaround"), r.registry).Update(res.AveTurnaround)
}

// Failure counts a run that could not be scheduled.
func (r *Recorder) Failure(alg schedule.Algorithm) {
	metrics.GetOrRegisterCounter(metricName(string(alg), "failures"), r.registry).Inc(1)
}

// Flush sends the registry to graphite once. An empty host is a no-op.
func (r *Recorder) Flush(host string) error {
	if host == "" {
		return nil
	}

	addr, err := net.ResolveTCPAddr("tcp", host)
	if err != nil {
		return fmt.Errorf("resolving graphite address %q: %w", host, err)
	}

	err = graphite.Once(graphite.Config{
		Addr:          addr,
		Registry:      r.registry,
		FlushInterval: time.Second,
		DurationUnit:  time.Microsecond,
		Prefix:        prefix,
		Percentiles:   []float64{0.5, 0.99},
	})
	if err != nil {
		return fmt.Errorf("flushing metrics to graphite: %w", err)
	}
	r.logger.Debug("metrics flushed to graphite", zap.String("host", host))
	return nil
}

func metricName(alg, metric string) string {
	return alg + "." + metric
}
