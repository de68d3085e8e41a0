package app

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"

	"github.com/ridepark/vehicle-rental/internal/models"
	pkgErrors "github.com/ridepark/vehicle-rental/internal/pkg/errors"
)

// SessionKey is the fiber.Ctx locals key the auth middleware stores
// the caller identity under.
const SessionKey = "session"

// NewAuth creates a middleware that validates the bearer token and
// attaches a models.Session to the request.
func NewAuth(jwtSecret string, logger *slog.Logger) (fiber.Handler, error) {
	return func(ctx *fiber.Ctx) error {
		header := ctx.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			return pkgErrors.ErrUnauthorized
		}

		token := strings.TrimPrefix(header, "Bearer ")

		session, err := extractSession(token, jwtSecret)
		if err != nil {
			logger.Error(err.Error())
			return pkgErrors.ErrUnauthorized
		}

		ctx.Locals(SessionKey, session)

		return ctx.Next()
	}, nil
}

// SessionFromCtx returns the identity the auth middleware attached.
func SessionFromCtx(ctx *fiber.Ctx) (models.Session, error) {
	session, ok := ctx.Locals(SessionKey).(models.Session)
	if !ok {
		return models.Session{}, pkgErrors.ErrUnauthorized
	}

	return session, nil
}

func extractSession(token, jwtSecret string) (models.Session, error) {
	parsedToken, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(jwtSecret), nil
	})
	if err != nil {
		return models.Session{}, errors.Wrap(err, "parse jwt")
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok {
		return models.Session{}, errors.New("invalid type of token claims")
	}

	sub, ok := claims["sub"].(float64)
	if !ok {
		return models.Session{}, errors.New("missing 'sub' in claims")
	}

	role, ok := claims["role"].(string)
	if !ok {
		return models.Session{}, errors.New("missing 'role' in claims")
	}

	return models.Session{UserID: int(sub), Role: models.Role(role)}, nil
}
