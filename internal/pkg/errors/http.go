package errors

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Status maps a usecase error to the HTTP status code the API returns.
// Unknown errors fall through to 500.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrVehicleNotFound),
		errors.Is(err, ErrBookingNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrVehicleUnavailable),
		errors.Is(err, ErrCancelAfterRentalStart),
		errors.Is(err, ErrUserAlreadyExists):
		return fiber.StatusConflict
	case errors.Is(err, ErrInvalidBookingID),
		errors.Is(err, ErrInvalidStatus),
		errors.Is(err, ErrInvalidRentalPeriod),
		errors.Is(err, ErrBadRequest):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrAccessForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, ErrUnauthorized),
		errors.Is(err, ErrWrongLoginOrPassword):
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

// Handler is the fiber error handler: every error bubbles out of the
// deliveries untouched and is translated to a status code here.
func Handler(ctx *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return ctx.Status(fiberErr.Code).JSON(fiber.Map{"message": fiberErr.Message})
	}

	return ctx.Status(Status(err)).JSON(fiber.Map{"message": err.Error()})
}
