package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/ridepark/vehicle-rental/internal/auth/usecase"
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

func (r *SqlxRepository) Create(ctx context.Context, params usecase.CreateParams) (models.User, error) {
	const createCmd = `
	INSERT INTO users (name, email, hashed_password, role)
	VALUES ($1, $2, $3, $4)
	RETURNING id, name, email, hashed_password, role, created_at, updated_at;`

	var user models.User
	err := sqlxutils.Get(ctx, r.db, &user, createCmd, params.Name, params.Email, params.HashedPassword, params.Role)
	if err != nil {
		r.logger.Error(err.Error())
		return models.User{}, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return user, nil
}

func (r *SqlxRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	const getByEmailCmd = `
	SELECT id, name, email, hashed_password, role, created_at, updated_at
	FROM users
	WHERE email = $1;`

	var user models.User
	err := sqlxutils.Get(ctx, r.db, &user, getByEmailCmd, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, pkgErrors.ErrUserNotFound
		}

		r.logger.Error(err.Error())
		return models.User{}, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return user, nil
}

func (r *SqlxRepository) GetByID(ctx context.Context, id int) (models.User, error) {
	const getByIDCmd = `
	SELECT id, name, email, hashed_password, role, created_at, updated_at
	FROM users
	WHERE id = $1;`

	var user models.User
	err := sqlxutils.Get(ctx, r.db, &user, getByIDCmd, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, pkgErrors.ErrUserNotFound
		}

		r.logger.Error(err.Error())
		return models.User{}, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return user, nil
}
