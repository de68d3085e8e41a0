package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"github.com/ridepark/vehicle-rental/internal/models"
	pkgErrors "github.com/ridepark/vehicle-rental/internal/pkg/errors"
	pkgHasher "github.com/ridepark/vehicle-rental/internal/pkg/hasher"
)

type UseCase struct {
	repo      Repository
	logger    *slog.Logger
	hasher    pkgHasher.Hasher
	jwtSecret string
	tokenTTL  time.Duration
}

func New(repo Repository, logger *slog.Logger, hasher pkgHasher.Hasher, jwtSecret string, tokenTTL time.Duration) *UseCase {
	return &UseCase{
		repo:      repo,
		logger:    logger,
		hasher:    hasher,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

func (u *UseCase) HealthCheck(ctx context.Context) error {
	return u.repo.HealthCheck(ctx)
}

// SignUp registers a new customer account and returns it with a fresh
// access token. Admin accounts are seeded by migration, not signed up.
func (u *UseCase) SignUp(ctx context.Context, params SignUpParams) (models.User, string, error) {
	_, err := u.repo.GetByEmail(ctx, params.Email)
	if !errors.Is(err, pkgErrors.ErrUserNotFound) {
		if err != nil {
			return models.User{}, "", err
		}
		return models.User{}, "", pkgErrors.ErrUserAlreadyExists
	}

	hashedPassword, err := u.hasher.GetHashedPassword(ctx, params.Password)
	if err != nil {
		return models.User{}, "", errors.Wrap(pkgErrors.ErrGetHashedPassword, err.Error())
	}

	repParams := CreateParams{
		Name:           params.Name,
		Email:          params.Email,
		HashedPassword: hashedPassword,
		Role:           models.RoleCustomer,
	}

	user, err := u.repo.Create(ctx, repParams)
	if err != nil {
		return models.User{}, "", err
	}

	token, err := u.generateToken(user)
	if err != nil {
		return models.User{}, "", err
	}

	return user, token, nil
}

func (u *UseCase) SignIn(ctx context.Context, params SignInParams) (models.User, string, error) {
	user, err := u.repo.GetByEmail(ctx, params.Email)
	if err != nil {
		if errors.Is(err, pkgErrors.ErrUserNotFound) {
			return models.User{}, "", pkgErrors.ErrWrongLoginOrPassword
		}
		return models.User{}, "", err
	}

	if err = u.hasher.CompareHashAndPassword(ctx, user.HashedPassword, params.Password); err != nil {
		return models.User{}, "", errors.Wrap(pkgErrors.ErrWrongLoginOrPassword, err.Error())
	}

	token, err := u.generateToken(user)
	if err != nil {
		return models.User{}, "", err
	}

	return user, token, nil
}

func (u *UseCase) GetByID(ctx context.Context, id int) (models.User, error) {
	return u.repo.GetByID(ctx, id)
}

func (u *UseCase) generateToken(user models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"role":  string(user.Role),
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(u.tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(u.jwtSecret))
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}
