package api

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/dgraph-io/ristretto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Abbub1/schedsim/internal/loader"
	"github.com/Abbub1/schedsim/internal/schedule"
	"github.com/Abbub1/schedsim/internal/simulator"
	"github.com/Abbub1/schedsim/internal/telemetry"
)

const (
	requestIDHeader = "X-Request-ID"
	cacheHeader     = "X-Cache"
	requestIDKey    = "request_id"
)

// SchedulerHandler serves scheduling runs over HTTP.
type SchedulerHandler struct {
	simulator  *simulator.Simulator
	recorder   *telemetry.Recorder
	cache      *ristretto.Cache
	logger     *zap.Logger
	quantum    int64
	algorithms []schedule.Algorithm
}

// NewSchedulerHandler returns a SchedulerHandler. quantum and algorithms are
// the defaults used when a request does not say otherwise. recorder should be
// the one sim reports to; it may be nil.
func NewSchedulerHandler(sim *simulator.Simulator, recorder *telemetry.Recorder, cache *ristretto.Cache,
	logger *zap.Logger, quantum int64, algorithms []schedule.Algorithm) *SchedulerHandler {
	return &SchedulerHandler{
		simulator:  sim,
		recorder:   recorder,
		cache:      cache,
		logger:     logger,
		quantum:    quantum,
		algorithms: algorithms,
	}
}

// Health reports that the server is up.
func (h *SchedulerHandler) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "ok"})
}

// Metrics dumps the run metrics recorded so far.
func (h *SchedulerHandler) Metrics(ctx *fiber.Ctx) error {
	if h.recorder == nil {
		return ctx.JSON(fiber.Map{})
	}
	var buf bytes.Buffer
	h.recorder.WriteJSON(&buf)
	ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return ctx.Send(buf.Bytes())
}

// ScheduleOne runs the algorithm named in the path.
func (h *SchedulerHandler) ScheduleOne(ctx *fiber.Ctx) error {
	alg, err := schedule.ParseAlgorithm(ctx.Params("algorithm"))
	if err != nil {
		return h.writeError(ctx, fiber.StatusNotFound, err)
	}
	return h.schedule(ctx, []schedule.Algorithm{alg})
}

// ScheduleAll runs every configured algorithm.
func (h *SchedulerHandler) ScheduleAll(ctx *fiber.Ctx) error {
	return h.schedule(ctx, h.algorithms)
}

func (h *SchedulerHandler) schedule(ctx *fiber.Ctx, algorithms []schedule.Algorithm) error {
	request := ScheduleRequest{}
	if err := ctx.BodyParser(&request); err != nil {
		return h.writeError(ctx, fiber.StatusBadRequest, err)
	}
	if err := loader.Validate(request.Processes); err != nil {
		return h.writeError(ctx, fiber.StatusBadRequest, err)
	}
	quantum := h.quantum
	if request.Quantum != nil {
		quantum = *request.Quantum
	}

	key, err := json.Marshal(cacheKey{Algorithms: algorithms, Quantum: quantum, Processes: schedule.Clone(request.Processes)})
	if err != nil {
		return h.writeError(ctx, fiber.StatusInternalServerError, err)
	}
	if cached, found := h.cache.Get(key); found {
		h.logger.Debug("found in cache", zap.String(requestIDKey, requestID(ctx)))
		ctx.Set(cacheHeader, "HIT")
		ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return ctx.Send(cached.([]byte))
	}

	results, err := h.simulator.RunWithQuantum(request.Processes, algorithms, quantum)
	if err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, schedule.ErrInvalidQuantum) {
			status = fiber.StatusBadRequest
		}
		return h.writeError(ctx, status, err)
	}

	body, err := json.Marshal(ScheduleResponse{Results: results})
	if err != nil {
		return h.writeError(ctx, fiber.StatusInternalServerError, err)
	}
	h.cache.Set(key, body, int64(len(body)))
	h.cache.Wait()

	h.logger.Info("scheduled",
		zap.String(requestIDKey, requestID(ctx)),
		zap.Int("algorithms", len(algorithms)),
		zap.Int("processes", len(request.Processes)))
	ctx.Set(cacheHeader, "MISS")
	ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return ctx.Send(body)
}

func (h *SchedulerHandler) writeError(ctx *fiber.Ctx, status int, err error) error {
	h.logger.Warn("request rejected",
		zap.String(requestIDKey, requestID(ctx)),
		zap.Int("status", status),
		zap.Error(err))
	return ctx.Status(status).JSON(ErrorResponse{
		Message:    err.Error(),
		StatusCode: status,
	})
}

func requestID(ctx *fiber.Ctx) string {
	id, _ := ctx.Locals(requestIDKey).(string)
	return id
}
