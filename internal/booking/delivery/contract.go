package delivery

import (
	"context"

	"github.com/ridepark/vehicle-rental/internal/booking/usecase"
	"github.com/ridepark/vehicle-rental/internal/models"
	"github.com/ridepark/vehicle-rental/internal/pkg/app"
)

type UseCase interface {
	app.HealthChecker

	Create(ctx context.Context, params usecase.CreateParams) (models.Booking, models.VehicleInfo, error)
	List(ctx context.Context, session models.Session) ([]models.BookingDetails, error)
	Update(ctx context.Context, bookingID string, status models.BookingStatus, session models.Session) (models.Booking, error)
}
