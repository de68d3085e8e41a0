package delivery

import (
	"context"

	"github.com/ridepark/vehicle-rental/internal/auth/usecase"
	"github.com/ridepark/vehicle-rental/internal/models"
	"github.com/ridepark/vehicle-rental/internal/pkg/app"
)

type UseCase interface {
	app.HealthChecker

	SignIn(ctx context.Context, params usecase.SignInParams) (models.User, string, error)
	SignUp(ctx context.Context, params usecase.SignUpParams) (models.User, string, error)
}
