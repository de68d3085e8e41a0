package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/ridepark/vehicle-rental/internal/booking/usecase"
	"github.com/ridepark/vehicle-rental/internal/models"
	pkgErrors "github.com/ridepark/vehicle-rental/internal/pkg/errors"
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

func (r *SqlxRepository) Create(ctx context.Context, params usecase.CreateBookingParams) (models.Booking, error) {
	const createCmd = `
	INSERT INTO bookings (customer_id, vehicle_id, rent_start_date, rent_end_date, total_price, status)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id, customer_id, vehicle_id, rent_start_date, rent_end_date, total_price, status;`

	var booking models.Booking
	err := sqlxutils.Get(ctx, r.db, &booking, createCmd,
		params.CustomerID, params.VehicleID, params.RentStartDate, params.RentEndDate, params.TotalPrice, params.Status)
	if err != nil {
		r.logger.Error(err.Error())
		return models.Booking{}, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return booking, nil
}

func (r *SqlxRepository) GetByID(ctx context.Context, id int) (models.Booking, error) {
	const getByIDCmd = `
	SELECT id, customer_id, vehicle_id, rent_start_date, rent_end_date, total_price, status
	FROM bookings
	WHERE id = $1;`

	var booking models.Booking
	err := sqlxutils.Get(ctx, r.db, &booking, getByIDCmd, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Booking{}, pkgErrors.ErrBookingNotFound
		}

		r.logger.Error(err.Error())
		return models.Booking{}, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return booking, nil
}

type adminBookingRow struct {
	models.Booking
	CustomerName       string `db:"customer_name"`
	CustomerEmail      string `db:"customer_email"`
	VehicleName        string `db:"vehicle_name"`
	RegistrationNumber string `db:"registration_number"`
}

func (r *SqlxRepository) ListAll(ctx context.Context) ([]models.BookingDetails, error) {
	const listAllCmd = `
	SELECT b.id, b.customer_id, b.vehicle_id, b.rent_start_date, b.rent_end_date, b.total_price, b.status,
	       u.name AS customer_name, u.email AS customer_email,
	       v.vehicle_name, v.registration_number
	FROM bookings b
	JOIN users u ON b.customer_id = u.id
	JOIN vehicles v ON b.vehicle_id = v.id
	ORDER BY b.id;`

	rows := make([]adminBookingRow, 0)
	err := sqlxutils.Select(ctx, r.db, &rows, listAllCmd)
	if err != nil {
		r.logger.Error(err.Error())
		return nil, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	details := make([]models.BookingDetails, 0, len(rows))
	for _, row := range rows {
		details = append(details, models.BookingDetails{
			Booking: row.Booking,
			Customer: &models.CustomerInfo{
				Name:  row.CustomerName,
				Email: row.CustomerEmail,
			},
			Vehicle: models.VehicleSummary{
				VehicleName:        row.VehicleName,
				RegistrationNumber: row.RegistrationNumber,
			},
		})
	}

	return details, nil
}

type customerBookingRow struct {
	models.Booking
	VehicleName        string `db:"vehicle_name"`
	RegistrationNumber string `db:"registration_number"`
	VehicleType        string `db:"vehicle_type"`
}

func (r *SqlxRepository) ListByCustomer(ctx context.Context, customerID int) ([]models.BookingDetails, error) {
	const listByCustomerCmd = `
	SELECT b.id, b.vehicle_id, b.rent_start_date, b.rent_end_date, b.total_price, b.status,
	       v.vehicle_name, v.registration_number, v.type AS vehicle_type
	FROM bookings b
	JOIN vehicles v ON b.vehicle_id = v.id
	WHERE b.customer_id = $1
	ORDER BY b.id;`

	rows := make([]customerBookingRow, 0)
	err := sqlxutils.Select(ctx, r.db, &rows, listByCustomerCmd, customerID)
	if err != nil {
		r.logger.Error(err.Error())
		return nil, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	details := make([]models.BookingDetails, 0, len(rows))
	for _, row := range rows {
		details = append(details, models.BookingDetails{
			Booking: row.Booking,
			Vehicle: models.VehicleSummary{
				VehicleName:        row.VehicleName,
				RegistrationNumber: row.RegistrationNumber,
				Type:               row.VehicleType,
			},
		})
	}

	return details, nil
}

// UpdateStatus sets the booking status and releases the vehicle in one
// transaction, so a failure between the two writes cannot leave them
// inconsistent.
func (r *SqlxRepository) UpdateStatus(ctx context.Context, bookingID int, status models.BookingStatus, vehicleID int) (models.Booking, error) {
	const updateBookingCmd = `
	UPDATE bookings
	SET status = $1
	WHERE id = $2
	RETURNING id, customer_id, vehicle_id, rent_start_date, rent_end_date, total_price, status;`

	const releaseVehicleCmd = `
	UPDATE vehicles
	SET availability_status = 'available'
	WHERE id = $1;`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error(err.Error())
		return models.Booking{}, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var booking models.Booking
	err = tx.GetContext(ctx, &booking, updateBookingCmd, status, bookingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Booking{}, pkgErrors.ErrBookingNotFound
		}

		r.logger.Error(err.Error())
		return models.Booking{}, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	_, err = tx.ExecContext(ctx, releaseVehicleCmd, vehicleID)
	if err != nil {
		r.logger.Error(err.Error())
		return models.Booking{}, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	if err = tx.Commit(); err != nil {
		r.logger.Error(err.Error())
		return models.Booking{}, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return booking, nil
}
