package errors

import "errors"

var (
	ErrDb = errors.New("database error")

	// auth
	ErrUserNotFound         = errors.New("user not found")
	ErrUserAlreadyExists    = errors.New("user already exists")
	ErrWrongLoginOrPassword = errors.New("wrong login or password")
	ErrGetHashedPassword    = errors.New("get hashed password")
	ErrUnauthorized         = errors.New("unauthorized")

	// vehicles
	ErrVehicleNotFound    = errors.New("vehicle not found")
	ErrVehicleUnavailable = errors.New("vehicle not available")

	// bookings
	ErrBookingNotFound        = errors.New("booking not found")
	ErrInvalidBookingID       = errors.New("invalid booking id")
	ErrInvalidStatus          = errors.New("invalid status")
	ErrInvalidRentalPeriod    = errors.New("invalid rental period")
	ErrCancelAfterRentalStart = errors.New("cannot cancel after rental start")
	ErrAccessForbidden        = errors.New("access forbidden")

	ErrBadRequest = errors.New("bad request")
)
