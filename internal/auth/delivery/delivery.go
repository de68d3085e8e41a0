package delivery

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/ridepark/vehicle-rental/internal/auth/usecase"
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
	router.Post("/signup", d.signup)
	router.Post("/signin", d.signin)
}

func (d *Delivery) signup(ctx *fiber.Ctx) error {
	var dto SignUpDTO
	err := ctx.BodyParser(&dto)
	if err != nil {
		d.logger.Error(err.Error())
		return pkgErrors.ErrBadRequest
	}

	params := usecase.SignUpParams{
		Name:     dto.Name,
		Email:    dto.Email,
		Password: dto.Password,
	}

	user, token, err := d.useCase.SignUp(ctx.Context(), params)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(NewAuthResponse(user, token))
}

func (d *Delivery) signin(ctx *fiber.Ctx) error {
	var dto SignInDTO
	err := ctx.BodyParser(&dto)
	if err != nil {
		d.logger.Error(err.Error())
		return pkgErrors.ErrBadRequest
	}

	params := usecase.SignInParams{
		Email:    dto.Email,
		Password: dto.Password,
	}

	user, token, err := d.useCase.SignIn(ctx.Context(), params)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(NewAuthResponse(user, token))
}
