package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/ridepark/vehicle-rental/internal/models"
	pkgErrors "github.com/ridepark/vehicle-rental/internal/pkg/errors"
	"github.com/ridepark/vehicle-rental/internal/vehicle/usecase"
	"github.com/ridepark/vehicle-rental/pkg/sqlxutils"
)

type SqlxRepository struct {
	db     *sqlx.DB
	logger *slog.Logger
}

func NewSqlxRepository(db *sqlx.DB, logger *slog.Logger) *SqlxRepository {
	return &SqlxRepository{
		db:     db,
		logger: logger,
	}
}

func (r *SqlxRepository) HealthCheck(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *SqlxRepository) Create(ctx context.Context, params usecase.CreateParams) (models.Vehicle, error) {
	const createCmd = `
	INSERT INTO vehicles (vehicle_name, registration_number, type, daily_rent_price, availability_status)
	VALUES ($1, $2, $3, $4, 'available')
	RETURNING id, vehicle_name, registration_number, type, daily_rent_price, availability_status;`

	var vehicle models.Vehicle
	err := sqlxutils.Get(ctx, r.db, &vehicle, createCmd,
		params.VehicleName, params.RegistrationNumber, params.Type, params.DailyRentPrice)
	if err != nil {
		r.logger.Error(err.Error())
		return models.Vehicle{}, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return vehicle, nil
}

func (r *SqlxRepository) GetByID(ctx context.Context, id int) (models.Vehicle, error) {
	const getByIDCmd = `
	SELECT id, vehicle_name, registration_number, type, daily_rent_price, availability_status
	FROM vehicles
	WHERE id = $1;`

	var vehicle models.Vehicle
	err := sqlxutils.Get(ctx, r.db, &vehicle, getByIDCmd, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Vehicle{}, pkgErrors.ErrVehicleNotFound
		}

		r.logger.Error(err.Error())
		return models.Vehicle{}, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return vehicle, nil
}

// GetInfo returns the display projection merged into booking responses.
func (r *SqlxRepository) GetInfo(ctx context.Context, id int) (models.VehicleInfo, error) {
	const getInfoCmd = `
	SELECT vehicle_name, daily_rent_price
	FROM vehicles
	WHERE id = $1;`

	var info models.VehicleInfo
	err := sqlxutils.Get(ctx, r.db, &info, getInfoCmd, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.VehicleInfo{}, pkgErrors.ErrVehicleNotFound
		}

		r.logger.Error(err.Error())
		return models.VehicleInfo{}, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return info, nil
}

func (r *SqlxRepository) List(ctx context.Context) ([]models.Vehicle, error) {
	const listCmd = `
	SELECT id, vehicle_name, registration_number, type, daily_rent_price, availability_status
	FROM vehicles
	ORDER BY id;`

	vehicles := make([]models.Vehicle, 0)
	err := sqlxutils.Select(ctx, r.db, &vehicles, listCmd)
	if err != nil {
		r.logger.Error(err.Error())
		return nil, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return vehicles, nil
}
