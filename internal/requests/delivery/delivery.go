package delivery

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/ridepark/vehicle-rental/internal/models"
	"github.com/ridepark/vehicle-rental/internal/pkg/app"
	pkgErrors "github.com/ridepark/vehicle-rental/internal/pkg/errors"
	"github.com/ridepark/vehicle-rental/internal/requests/repository"
)

type Delivery struct {
	repo   *repository.SqlxRepository
	logger *slog.Logger
}

func New(repo *repository.SqlxRepository, logger *slog.Logger) *Delivery {
	return &Delivery{
		repo:   repo,
		logger: logger,
	}
}

func (d *Delivery) AddHandlers(router fiber.Router) {
	router.Get("/statistics", d.list)
}

func (d *Delivery) list(ctx *fiber.Ctx) error {
	session, err := app.SessionFromCtx(ctx)
	if err != nil {
		return err
	}

	if session.Role != models.RoleAdmin {
		return pkgErrors.ErrAccessForbidden
	}

	requests, err := d.repo.GetRequests(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(requests)
}
