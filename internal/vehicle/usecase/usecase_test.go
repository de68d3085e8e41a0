package usecase_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridepark/vehicle-rental/internal/models"
	pkgErrors "github.com/ridepark/vehicle-rental/internal/pkg/errors"
	"github.com/ridepark/vehicle-rental/internal/vehicle/usecase"
)

type fakeRepo struct {
	created []usecase.CreateParams
}

func (f *fakeRepo) HealthCheck(context.Context) error { return nil }

func (f *fakeRepo) Create(_ context.Context, params usecase.CreateParams) (models.Vehicle, error) {
	f.created = append(f.created, params)
	return models.Vehicle{
		ID:                 1,
		VehicleName:        params.VehicleName,
		RegistrationNumber: params.RegistrationNumber,
		Type:               params.Type,
		DailyRentPrice:     params.DailyRentPrice,
		AvailabilityStatus: models.VehicleAvailable,
	}, nil
}

func (f *fakeRepo) GetByID(context.Context, int) (models.Vehicle, error) {
	return models.Vehicle{}, pkgErrors.ErrVehicleNotFound
}

func (f *fakeRepo) List(context.Context) ([]models.Vehicle, error) {
	return []models.Vehicle{}, nil
}

func TestCreateVehicleAdminOnly(t *testing.T) {
	repo := &fakeRepo{}
	uc := usecase.New(repo, slog.New(slog.DiscardHandler))

	_, err := uc.Create(context.Background(), usecase.CreateParams{VehicleName: "Toyota Corolla"},
		models.Session{UserID: 7, Role: models.RoleCustomer})

	assert.ErrorIs(t, err, pkgErrors.ErrAccessForbidden)
	assert.Empty(t, repo.created)
}

func TestCreateVehicle(t *testing.T) {
	repo := &fakeRepo{}
	uc := usecase.New(repo, slog.New(slog.DiscardHandler))

	vehicle, err := uc.Create(context.Background(), usecase.CreateParams{
		VehicleName:        "Toyota Corolla",
		RegistrationNumber: "AB-123",
		Type:               "sedan",
		DailyRentPrice:     100,
	}, models.Session{UserID: 1, Role: models.RoleAdmin})

	require.NoError(t, err)
	assert.Equal(t, models.VehicleAvailable, vehicle.AvailabilityStatus)
	assert.Len(t, repo.created, 1)
}
