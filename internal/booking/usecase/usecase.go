package usecase

import (
	"context"
	"log/slog"
	"math"
	"strconv"
	"time"

	"github.com/ridepark/vehicle-rental/internal/models"
	pkgErrors "github.com/ridepark/vehicle-rental/internal/pkg/errors"
)

type UseCase struct {
	bookings BookingRepository
	vehicles VehicleRepository
	logger   *slog.Logger
}

func New(bookings BookingRepository, vehicles VehicleRepository, logger *slog.Logger) *UseCase {
	return &UseCase{
		bookings: bookings,
		vehicles: vehicles,
		logger:   logger,
	}
}

func (u *UseCase) HealthCheck(ctx context.Context) error {
	return u.bookings.HealthCheck(ctx)
}

// Create books a vehicle for the rental window. A partial day counts
// as a full billed day.
func (u *UseCase) Create(ctx context.Context, params CreateParams) (models.Booking, models.VehicleInfo, error) {
	vehicle, err := u.vehicles.GetByID(ctx, params.VehicleID)
	if err != nil {
		return models.Booking{}, models.VehicleInfo{}, err
	}

	if vehicle.AvailabilityStatus != models.VehicleAvailable {
		return models.Booking{}, models.VehicleInfo{}, pkgErrors.ErrVehicleUnavailable
	}

	if !params.RentEndDate.After(params.RentStartDate) {
		return models.Booking{}, models.VehicleInfo{}, pkgErrors.ErrInvalidRentalPeriod
	}

	rentDays := int(math.Ceil(params.RentEndDate.Sub(params.RentStartDate).Hours() / 24))
	totalPrice := float64(rentDays) * vehicle.DailyRentPrice

	// The vehicle stays "available" after a booking is created; only
	// cancel/return touch the flag.
	// TODO: flip availability_status here once the double-booking
	// policy is settled.
	booking, err := u.bookings.Create(ctx, CreateBookingParams{
		CustomerID:    params.CustomerID,
		VehicleID:     params.VehicleID,
		RentStartDate: params.RentStartDate,
		RentEndDate:   params.RentEndDate,
		TotalPrice:    totalPrice,
		Status:        models.BookingActive,
	})
	if err != nil {
		return models.Booking{}, models.VehicleInfo{}, err
	}

	info, err := u.vehicles.GetInfo(ctx, params.VehicleID)
	if err != nil {
		return models.Booking{}, models.VehicleInfo{}, err
	}

	return booking, info, nil
}

// List returns bookings scoped by the caller role: admins see every
// booking with customer details, customers see only their own.
func (u *UseCase) List(ctx context.Context, session models.Session) ([]models.BookingDetails, error) {
	switch session.Role {
	case models.RoleAdmin:
		return u.bookings.ListAll(ctx)
	case models.RoleCustomer:
		return u.bookings.ListByCustomer(ctx, session.UserID)
	default:
		return nil, pkgErrors.ErrUnauthorized
	}
}

// Update transitions a booking. Customers may cancel their own booking
// before the rental starts; admins may mark any booking returned. Both
// transitions release the vehicle.
func (u *UseCase) Update(ctx context.Context, bookingID string, status models.BookingStatus, session models.Session) (models.Booking, error) {
	id, err := strconv.Atoi(bookingID)
	if err != nil {
		return models.Booking{}, pkgErrors.ErrInvalidBookingID
	}

	booking, err := u.bookings.GetByID(ctx, id)
	if err != nil {
		return models.Booking{}, err
	}

	// cancelled and returned are terminal
	if booking.Status != models.BookingActive {
		return models.Booking{}, pkgErrors.ErrInvalidStatus
	}

	switch session.Role {
	case models.RoleCustomer:
		if booking.CustomerID != session.UserID {
			return models.Booking{}, pkgErrors.ErrAccessForbidden
		}
		if status != models.BookingCancelled {
			return models.Booking{}, pkgErrors.ErrInvalidStatus
		}
		if !booking.RentStartDate.After(time.Now()) {
			return models.Booking{}, pkgErrors.ErrCancelAfterRentalStart
		}

		return u.bookings.UpdateStatus(ctx, id, models.BookingCancelled, booking.VehicleID)

	case models.RoleAdmin:
		if status != models.BookingReturned {
			return models.Booking{}, pkgErrors.ErrInvalidStatus
		}

		return u.bookings.UpdateStatus(ctx, id, models.BookingReturned, booking.VehicleID)

	default:
		return models.Booking{}, pkgErrors.ErrUnauthorized
	}
}
