package delivery

import (
	"context"

	"github.com/ridepark/vehicle-rental/internal/models"
	"github.com/ridepark/vehicle-rental/internal/pkg/app"
	"github.com/ridepark/vehicle-rental/internal/vehicle/usecase"
)

type UseCase interface {
	app.HealthChecker

	Create(ctx context.Context, params usecase.CreateParams, session models.Session) (models.Vehicle, error)
	GetByID(ctx context.Context, id int) (models.Vehicle, error)
	List(ctx context.Context) ([]models.Vehicle, error)
}
