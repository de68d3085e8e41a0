package usecase

import (
	"context"

	"github.com/ridepark/vehicle-rental/internal/models"
)

type CreateParams struct {
	VehicleName        string
	RegistrationNumber string
	Type               string
	DailyRentPrice     float64
}

type Repository interface {
	HealthCheck(ctx context.Context) error

	Create(ctx context.Context, params CreateParams) (models.Vehicle, error)
	GetByID(ctx context.Context, id int) (models.Vehicle, error)
	List(ctx context.Context) ([]models.Vehicle, error)
}
