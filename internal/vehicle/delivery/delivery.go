package delivery

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/ridepark/vehicle-rental/internal/pkg/app"
	pkgErrors "github.com/ridepark/vehicle-rental/internal/pkg/errors"
	"github.com/ridepark/vehicle-rental/internal/vehicle/usecase"
)

type Delivery struct {
	useCase UseCase
	logger  *slog.Logger
}

func New(useCase UseCase, logger *slog.Logger) *Delivery {
	return &Delivery{
		useCase: useCase,
		logger:  logger,
	}
}

func (d *Delivery) HealthCheck(ctx context.Context) error {
	return d.useCase.HealthCheck(ctx)
}

func (d *Delivery) AddHandlers(router fiber.Router) {
	router.Post("/vehicles", d.create)
	router.Get("/vehicles", d.list)
	router.Get("/vehicles/:id", d.get)
}

func (d *Delivery) create(ctx *fiber.Ctx) error {
	session, err := app.SessionFromCtx(ctx)
	if err != nil {
		return err
	}

	var dto CreateVehicleDTO
	err = ctx.BodyParser(&dto)
	if err != nil {
		d.logger.Error(err.Error())
		return pkgErrors.ErrBadRequest
	}

	params := usecase.CreateParams{
		VehicleName:        dto.VehicleName,
		RegistrationNumber: dto.RegistrationNumber,
		Type:               dto.Type,
		DailyRentPrice:     dto.DailyRentPrice,
	}

	vehicle, err := d.useCase.Create(ctx.Context(), params, session)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(NewVehicleResponse(vehicle))
}

func (d *Delivery) list(ctx *fiber.Ctx) error {
	vehicles, err := d.useCase.List(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(NewVehicleList(vehicles))
}

func (d *Delivery) get(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return pkgErrors.ErrBadRequest
	}

	vehicle, err := d.useCase.GetByID(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(NewVehicleResponse(vehicle))
}
