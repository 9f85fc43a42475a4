package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"

	"priority-scheduler/config"
)

// NewApp builds the fiber application with every scheduler route registered.
func NewApp(cfg *config.SchedulerConfig, logger zerolog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "priority-scheduler",
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(requestLogger(logger))

	Register(app, NewSchedulerHandlerImpl(cfg, logger))
	return app
}

func Register(app *fiber.App, handler SchedulerHandler) {
	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Get("/health", handler.Health)
		v1.Post("/priority", handler.PriorityScheduling)
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/all", handler.AllAlgorithms)
	}
}

func requestLogger(logger zerolog.Logger) fiber.Handler {
	logger = logger.With().Str("component", "http").Logger()

	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()

		logger.Debug().
			Str("method", ctx.Method()).
			Str("path", ctx.Path()).
			Int("status", ctx.Response().StatusCode()).
			Dur("latency", time.Since(start)).
			Msg("request")
		return err
	}
}
