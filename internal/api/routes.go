package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// NewApp returns a fiber app with every route registered.
func NewApp(h *SchedulerHandler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "schedsim",
		DisableStartupMessage: true,
	})
	app.Use(assignRequestID)

	api := app.Group("/api")
	v1 := api.Group("/v1")
	{
		v1.Get("/health", h.Health)
		v1.Get("/metrics", h.Metrics)
		v1.Post("/schedule", h.ScheduleAll)
		v1.Post("/schedule/:algorithm", h.ScheduleOne)
	}

	return app
}

func assignRequestID(ctx *fiber.Ctx) error {
	id := ctx.Get(requestIDHeader)
	if id == "" {
		id = uuid.New().String()
	}
	ctx.Locals(requestIDKey, id)
	ctx.Set(requestIDHeader, id)
	return ctx.Next()
}
