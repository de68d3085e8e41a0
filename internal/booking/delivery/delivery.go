package delivery

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/ridepark/vehicle-rental/internal/booking/usecase"
	"github.com/ridepark/vehicle-rental/internal/models"
	"github.com/ridepark/vehicle-rental/internal/pkg/app"
	pkgErrors "github.com/ridepark/vehicle-rental/internal/pkg/errors"
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
	router.Post("/bookings", d.create)
	router.Get("/bookings", d.list)
	router.Patch("/bookings/:id", d.update)
}

func (d *Delivery) create(ctx *fiber.Ctx) error {
	if _, err := app.SessionFromCtx(ctx); err != nil {
		return err
	}

	var dto CreateBookingDTO
	err := ctx.BodyParser(&dto)
	if err != nil {
		d.logger.Error(err.Error())
		return pkgErrors.ErrBadRequest
	}

	params := usecase.CreateParams{
		CustomerID:    dto.CustomerID,
		VehicleID:     dto.VehicleID,
		RentStartDate: dto.RentStartDate,
		RentEndDate:   dto.RentEndDate,
	}

	booking, info, err := d.useCase.Create(ctx.Context(), params)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(NewCreateBookingResponse(booking, info))
}

func (d *Delivery) list(ctx *fiber.Ctx) error {
	session, err := app.SessionFromCtx(ctx)
	if err != nil {
		return err
	}

	details, err := d.useCase.List(ctx.Context(), session)
	if err != nil {
		return err
	}

	if session.Role == models.RoleAdmin {
		return ctx.Status(fiber.StatusOK).JSON(NewAdminBookingList(details))
	}

	return ctx.Status(fiber.StatusOK).JSON(NewCustomerBookingList(details))
}

func (d *Delivery) update(ctx *fiber.Ctx) error {
	session, err := app.SessionFromCtx(ctx)
	if err != nil {
		return err
	}

	var dto UpdateBookingDTO
	err = ctx.BodyParser(&dto)
	if err != nil {
		d.logger.Error(err.Error())
		return pkgErrors.ErrBadRequest
	}

	booking, err := d.useCase.Update(ctx.Context(), ctx.Params("id"), models.BookingStatus(dto.Status), session)
	if err != nil {
		return err
	}

	if session.Role == models.RoleAdmin {
		return ctx.Status(fiber.StatusOK).JSON(NewReturnBookingResponse(booking))
	}

	return ctx.Status(fiber.StatusOK).JSON(NewBookingResponse(booking))
}
