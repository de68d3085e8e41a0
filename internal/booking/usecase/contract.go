package usecase

import (
	"context"
	"time"

	"github.com/ridepark/vehicle-rental/internal/models"
)

type CreateParams struct {
	CustomerID    int
	VehicleID     int
	RentStartDate time.Time
	RentEndDate   time.Time
}

type CreateBookingParams struct {
	CustomerID    int
	VehicleID     int
	RentStartDate time.Time
	RentEndDate   time.Time
	TotalPrice    float64
	Status        models.BookingStatus
}

type BookingRepository interface {
	HealthCheck(ctx context.Context) error

	Create(ctx context.Context, params CreateBookingParams) (models.Booking, error)
	GetByID(ctx context.Context, id int) (models.Booking, error)
	ListAll(ctx context.Context) ([]models.BookingDetails, error)
	ListByCustomer(ctx context.Context, customerID int) ([]models.BookingDetails, error)
	UpdateStatus(ctx context.Context, bookingID int, status models.BookingStatus, vehicleID int) (models.Booking, error)
}

type VehicleRepository interface {
	GetByID(ctx context.Context, id int) (models.Vehicle, error)
	GetInfo(ctx context.Context, id int) (models.VehicleInfo, error)
}
