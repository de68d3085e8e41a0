package delivery_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridepark/vehicle-rental/internal/booking/delivery"
	"github.com/ridepark/vehicle-rental/internal/booking/usecase"
	"github.com/ridepark/vehicle-rental/internal/models"
	"github.com/ridepark/vehicle-rental/internal/pkg/app"
	pkgErrors "github.com/ridepark/vehicle-rental/internal/pkg/errors"
)

type stubUseCase struct {
	booking models.Booking
	info    models.VehicleInfo
	details []models.BookingDetails
	err     error
}

func (s *stubUseCase) HealthCheck(context.Context) error { return nil }

func (s *stubUseCase) Create(context.Context, usecase.CreateParams) (models.Booking, models.VehicleInfo, error) {
	return s.booking, s.info, s.err
}

func (s *stubUseCase) List(context.Context, models.Session) ([]models.BookingDetails, error) {
	return s.details, s.err
}

func (s *stubUseCase) Update(context.Context, string, models.BookingStatus, models.Session) (models.Booking, error) {
	return s.booking, s.err
}

func newTestApp(uc delivery.UseCase, session models.Session) *fiber.App {
	testApp := fiber.New(fiber.Config{ErrorHandler: pkgErrors.Handler})
	testApp.Use(func(ctx *fiber.Ctx) error {
		ctx.Locals(app.SessionKey, session)
		return ctx.Next()
	})

	delivery.New(uc, slog.New(slog.DiscardHandler)).AddHandlers(testApp)

	return testApp
}

func doRequest(t *testing.T, testApp *fiber.App, method, target, body string) (int, string) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}

	req, err := http.NewRequest(method, target, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := testApp.Test(req, -1)
	require.NoError(t, err)

	resBody := new(strings.Builder)
	_, err = io.Copy(resBody, res.Body)
	require.NoError(t, err)

	return res.StatusCode, resBody.String()
}

func TestCreateBooking(t *testing.T) {
	uc := &stubUseCase{
		booking: models.Booking{
			ID:         1,
			CustomerID: 7,
			VehicleID:  3,
			TotalPrice: 300,
			Status:     models.BookingActive,
		},
		info: models.VehicleInfo{VehicleName: "Toyota Corolla", DailyRentPrice: 100},
	}
	testApp := newTestApp(uc, models.Session{UserID: 7, Role: models.RoleCustomer})

	code, body := doRequest(t, testApp, http.MethodPost, "/bookings",
		`{"customer_id":7,"vehicle_id":3,"rent_start_date":"2026-09-01T00:00:00Z","rent_end_date":"2026-09-04T00:00:00Z"}`)

	assert.Equal(t, fiber.StatusCreated, code)
	assert.Contains(t, body, `"total_price":300`)
	assert.Contains(t, body, `"vehicle_name":"Toyota Corolla"`)
}

func TestCreateBookingVehicleUnavailable(t *testing.T) {
	uc := &stubUseCase{err: pkgErrors.ErrVehicleUnavailable}
	testApp := newTestApp(uc, models.Session{UserID: 7, Role: models.RoleCustomer})

	code, _ := doRequest(t, testApp, http.MethodPost, "/bookings",
		`{"customer_id":7,"vehicle_id":3,"rent_start_date":"2026-09-01T00:00:00Z","rent_end_date":"2026-09-04T00:00:00Z"}`)

	assert.Equal(t, fiber.StatusConflict, code)
}

func TestListBookingsCustomerHidesCustomerDetails(t *testing.T) {
	uc := &stubUseCase{details: []models.BookingDetails{
		{
			Booking: models.Booking{ID: 1, VehicleID: 3, TotalPrice: 300, Status: models.BookingActive,
				RentStartDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
				RentEndDate:   time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)},
			Vehicle: models.VehicleSummary{VehicleName: "Toyota Corolla", RegistrationNumber: "AB-123", Type: "sedan"},
		},
	}}
	testApp := newTestApp(uc, models.Session{UserID: 7, Role: models.RoleCustomer})

	code, body := doRequest(t, testApp, http.MethodGet, "/bookings", "")

	assert.Equal(t, fiber.StatusOK, code)
	assert.Contains(t, body, `"type":"sedan"`)
	assert.NotContains(t, body, `"customer"`)
	assert.NotContains(t, body, `"email"`)
}

func TestListBookingsAdminIncludesCustomer(t *testing.T) {
	uc := &stubUseCase{details: []models.BookingDetails{
		{
			Booking:  models.Booking{ID: 1, CustomerID: 7, VehicleID: 3, Status: models.BookingActive},
			Customer: &models.CustomerInfo{Name: "Kate", Email: "kate@example.com"},
			Vehicle:  models.VehicleSummary{VehicleName: "Toyota Corolla", RegistrationNumber: "AB-123"},
		},
	}}
	testApp := newTestApp(uc, models.Session{UserID: 1, Role: models.RoleAdmin})

	code, body := doRequest(t, testApp, http.MethodGet, "/bookings", "")

	assert.Equal(t, fiber.StatusOK, code)
	assert.Contains(t, body, `"customer"`)
	assert.Contains(t, body, `"email":"kate@example.com"`)
}

func TestUpdateBookingForbidden(t *testing.T) {
	uc := &stubUseCase{err: pkgErrors.ErrAccessForbidden}
	testApp := newTestApp(uc, models.Session{UserID: 7, Role: models.RoleCustomer})

	code, _ := doRequest(t, testApp, http.MethodPatch, "/bookings/12", `{"status":"cancelled"}`)

	assert.Equal(t, fiber.StatusForbidden, code)
}

func TestUpdateBookingInvalidID(t *testing.T) {
	uc := &stubUseCase{err: pkgErrors.ErrInvalidBookingID}
	testApp := newTestApp(uc, models.Session{UserID: 7, Role: models.RoleCustomer})

	code, _ := doRequest(t, testApp, http.MethodPatch, "/bookings/abc", `{"status":"cancelled"}`)

	assert.Equal(t, fiber.StatusBadRequest, code)
}

func TestUpdateBookingAdminReportsVehicleReleased(t *testing.T) {
	uc := &stubUseCase{
		booking: models.Booking{ID: 12, CustomerID: 9, VehicleID: 3, Status: models.BookingReturned},
	}
	testApp := newTestApp(uc, models.Session{UserID: 1, Role: models.RoleAdmin})

	code, body := doRequest(t, testApp, http.MethodPatch, "/bookings/12", `{"status":"returned"}`)

	assert.Equal(t, fiber.StatusOK, code)
	assert.Contains(t, body, `"status":"returned"`)
	assert.Contains(t, body, `"availability_status":"available"`)
}
