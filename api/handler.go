package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"priority-scheduler/config"
	"priority-scheduler/internal/requests"
	"priority-scheduler/internal/responses"
	"priority-scheduler/internal/schedulers"
)

var errInvalidRequestFormat = errors.New("invalid request format")

type SchedulerHandler interface {
	PriorityScheduling(ctx *fiber.Ctx) error
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
	logger zerolog.Logger
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, logger zerolog.Logger) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{
		config: config,
		logger: logger.With().Str("component", "scheduler_handler").Logger(),
	}
}

func (s *SchedulerHandlerImpl) parseRequest(ctx *fiber.Ctx) (requests.ScheduleRequests, error) {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		s.logger.Debug().Err(err).Msg("body parse failed")
		return requests.ScheduleRequests{}, errInvalidRequestFormat
	}

	if request.Processes == nil {
		request.Processes = []requests.Process{}
	}

	if s.config.StrictValidation {
		if err := request.IsValid(); err != nil {
			return requests.ScheduleRequests{}, err
		}
	}

	return request, nil
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, algorithm schedulers.Algorithm) error {
	request, err := s.parseRequest(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	runID := uuid.NewString()
	ctx.Set("X-Run-Id", runID)

	response, err := schedulers.Schedule(algorithm, request.Processes, s.config.AveragePrecision)
	if err != nil {
		s.logger.Error().Err(err).Str("run_id", runID).Msg("schedule failed")
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not process request"})
	}

	s.logger.Info().
		Str("run_id", runID).
		Str("algorithm", response.Algorithm).
		Int("processes", len(response.Details)).
		Int("total_time", response.TotalTime).
		Msg("schedule computed")

	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) PriorityScheduling(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.AlgorithmPriority)
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.AlgorithmFirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.AlgorithmShortestJobFirst)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, err := s.parseRequest(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	runID := uuid.NewString()
	ctx.Set("X-Run-Id", runID)

	results := schedulers.All(request.Processes, s.config.AveragePrecision)

	s.logger.Info().
		Str("run_id", runID).
		Int("processes", len(request.Processes)).
		Int("algorithms", len(results)).
		Msg("comparison computed")

	return ctx.JSON(responses.CompareResponse{Results: results})
}

func (s *SchedulerHandlerImpl) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "ok"})
}
