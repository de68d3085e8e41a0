package usecase

import (
	"context"

	"github.com/ridepark/vehicle-rental/internal/models"
)

type SignInParams struct {
	Email    string
	Password string
}

type SignUpParams struct {
	Name     string
	Email    string
	Password string
}

type CreateParams struct {
	Name           string
	Email          string
	HashedPassword string
	Role           models.Role
}

type Repository interface {
	HealthCheck(ctx context.Context) error

	Create(ctx context.Context, params CreateParams) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	GetByID(ctx context.Context, id int) (models.User, error)
}
