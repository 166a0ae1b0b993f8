package api

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"cpu-scheduling-simulator/config"
	"cpu-scheduling-simulator/internal/core"
	"cpu-scheduling-simulator/internal/generator"
	"cpu-scheduling-simulator/internal/requests"
	"cpu-scheduling-simulator/internal/responses"
	"cpu-scheduling-simulator/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	ShortestTimeToCompletionFirst(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	MultilevelFeedbackQueue(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	GenerateProcesses(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.FirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestJobFirst)
}

func (s *SchedulerHandlerImpl) ShortestTimeToCompletionFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestTimeToCompletionFirst)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.RoundRobin)
}

func (s *SchedulerHandlerImpl) MultilevelFeedbackQueue(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.MultilevelFeedbackQueue)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return invalidFormat(ctx)
	}
	algs, err := schedulers.ParseAlgorithms(request.Algorithms)
	if err != nil {
		return fail(ctx, err)
	}
	results, err := schedulers.ScheduleAll(request.Processes(), algs, s.options(&request))
	if err != nil {
		return fail(ctx, err)
	}

	response := responses.AllSchedulesResponse{Results: make([]responses.ScheduleResponse, len(results))}
	for i, result := range results {
		response.Results[i] = schedulers.GenerateResponse(algs[i], result)
	}
	return ctx.JSON(response)
}

// GenerateProcesses returns a random workload in request form, ready to be
// posted back to any scheduling endpoint.
func (s *SchedulerHandlerImpl) GenerateProcesses(ctx *fiber.Ctx) error {
	seed := time.Now().UnixNano()
	if raw := ctx.Query("seed"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "seed must be an integer"})
		}
		seed = parsed
	}
	processes, err := generator.Generate(ctx.QueryInt("count", 5), generator.NewRand(seed))
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(requests.FromProcesses(processes))
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, alg schedulers.Algorithm) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return invalidFormat(ctx)
	}
	result, err := schedulers.Schedule(alg, request.Processes(), s.options(&request))
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(schedulers.GenerateResponse(alg, result))
}

// options fills the policy parameters the request left out from config.
func (s *SchedulerHandlerImpl) options(request *requests.ScheduleRequests) schedulers.Options {
	opts := schedulers.Options{
		TimeQuantum:       s.config.RoundRobinTimeQuantum,
		LevelsTimeQuantum: s.config.MultilevelFeedbackQueueLevelsTimeQuantum,
	}
	if request.TimeQuantum != 0 {
		opts.TimeQuantum = request.TimeQuantum
	}
	if len(request.LevelsTimeQuantum) > 0 {
		opts.LevelsTimeQuantum = request.LevelsTimeQuantum
	}
	return opts
}

func invalidFormat(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "invalid request format",
	})
}

func fail(ctx *fiber.Ctx, err error) error {
	if errors.Is(err, core.ErrInvalidInput) || errors.Is(err, schedulers.ErrUnknownAlgorithm) {
		logrus.WithError(err).Debug("rejected scheduling request")
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	logrus.WithError(err).Error("can not process request")
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not process request"})
}
