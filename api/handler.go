package api

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"os-scheduler/config"
	"os-scheduler/internal/core"
	"os-scheduler/internal/disk"
	"os-scheduler/internal/requests"
	"os-scheduler/internal/schedulers"
)

var errInvalidFormat = errors.New("invalid request format")

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	ShortestRemainingTimeFirst(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Look(ctx *fiber.Ctx) error
	CLook(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

// Register mounts the scheduler routes on router.
func Register(router fiber.Router, handler SchedulerHandler) {
	v1 := router.Group("/v1")
	{
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/priority", handler.Priority)
		v1.Post("/srtf", handler.ShortestRemainingTimeFirst)
		v1.Post("/all", handler.AllAlgorithms)
		v1.Post("/disk/look", handler.Look)
		v1.Post("/disk/clook", handler.CLook)
	}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.scheduleCpu(ctx, schedulers.AlgorithmFCFS)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.scheduleCpu(ctx, schedulers.AlgorithmRoundRobin)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.scheduleCpu(ctx, schedulers.AlgorithmSJF)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.scheduleCpu(ctx, schedulers.AlgorithmPriority)
}

func (s *SchedulerHandlerImpl) ShortestRemainingTimeFirst(ctx *fiber.Ctx) error {
	return s.scheduleCpu(ctx, schedulers.AlgorithmSRTF)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, err := parseScheduleRequest(ctx)
	if err != nil {
		return failure(ctx, err)
	}
	response, err := schedulers.RunAll(request.Processes(), request.TimeQuantum.OrElse(s.config.RoundRobinTimeQuantum))
	if err != nil {
		return failure(ctx, err)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) Look(ctx *fiber.Ctx) error {
	return s.scheduleDisk(ctx, disk.AlgorithmLook)
}

func (s *SchedulerHandlerImpl) CLook(ctx *fiber.Ctx) error {
	return s.scheduleDisk(ctx, disk.AlgorithmCLook)
}

func (s *SchedulerHandlerImpl) scheduleCpu(ctx *fiber.Ctx, algorithm schedulers.Algorithm) error {
	request, err := parseScheduleRequest(ctx)
	if err != nil {
		return failure(ctx, err)
	}
	log.Println("scheduling", len(request.Jobs), "jobs with", algorithm)

	response, err := schedulers.Run(algorithm, request.Processes(), schedulers.Options{
		TimeQuantum: request.TimeQuantum.OrElse(s.config.RoundRobinTimeQuantum),
		Preemptive:  request.Preemptive.OrElse(false),
	})
	if err != nil {
		return failure(ctx, err)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) scheduleDisk(ctx *fiber.Ctx, algorithm disk.Algorithm) error {
	var request requests.DiskScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return failure(ctx, fmt.Errorf("%w: %v", errInvalidFormat, err))
	}
	if err := request.Validate(); err != nil {
		return failure(ctx, err)
	}
	log.Println("scheduling", len(request.Requests), "track requests with", algorithm)

	direction := disk.Direction(request.Direction.OrElse(s.config.DiskDirection))
	response, err := disk.Schedule(algorithm, request.Requests, request.Head, direction)
	if err != nil {
		return failure(ctx, err)
	}
	return ctx.JSON(response)
}

func parseScheduleRequest(ctx *fiber.Ctx) (*requests.ScheduleRequests, error) {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidFormat, err)
	}
	if err := request.Validate(); err != nil {
		return nil, err
	}
	return &request, nil
}

func failure(ctx *fiber.Ctx, err error) error {
	log.Println("can not process request:", err)
	if errors.Is(err, errInvalidFormat) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": errInvalidFormat.Error(),
		})
	}

	kind := core.ErrorKind(err)
	status := fiber.StatusBadRequest
	if kind == "internal" {
		status = fiber.StatusInternalServerError
	}
	return ctx.Status(status).JSON(fiber.Map{
		"error": err.Error(),
		"kind":  kind,
	})
}
