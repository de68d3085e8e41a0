package usecase

import (
	"context"
	"log/slog"

	"github.com/ridepark/vehicle-rental/internal/models"
	pkgErrors "github.com/ridepark/vehicle-rental/internal/pkg/errors"
)

type UseCase struct {
	repo   Repository
	logger *slog.Logger
}

func New(repo Repository, logger *slog.Logger) *UseCase {
	return &UseCase{
		repo:   repo,
		logger: logger,
	}
}

func (u *UseCase) HealthCheck(ctx context.Context) error {
	return u.repo.HealthCheck(ctx)
}

// Create adds a vehicle to the catalog. Admin only.
func (u *UseCase) Create(ctx context.Context, params CreateParams, session models.Session) (models.Vehicle, error) {
	if session.Role != models.RoleAdmin {
		return models.Vehicle{}, pkgErrors.ErrAccessForbidden
	}

	return u.repo.Create(ctx, params)
}

func (u *UseCase) GetByID(ctx context.Context, id int) (models.Vehicle, error) {
	return u.repo.GetByID(ctx, id)
}

func (u *UseCase) List(ctx context.Context) ([]models.Vehicle, error) {
	return u.repo.List(ctx)
}
