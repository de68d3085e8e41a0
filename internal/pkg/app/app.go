package app

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	slogfiber "github.com/samber/slog-fiber"

	pkgErrors "github.com/ridepark/vehicle-rental/internal/pkg/errors"
)

// Delivery registers a group of HTTP handlers on a router.
type Delivery interface {
	AddHandlers(router fiber.Router)
}

type FiberApp struct {
	app  *fiber.App
	addr string
}

// NewFiberApp wires the full HTTP surface: auth endpoints stay public,
// everything else sits behind the JWT middleware.
func NewFiberApp(
	config WebConfig,
	authDelivery Delivery,
	protected []Delivery,
	statisticsMW fiber.Handler,
	authMW fiber.Handler,
	checker HealthChecker,
	logger *slog.Logger,
) *FiberApp {
	app := fiber.New(fiber.Config{
		ErrorHandler: pkgErrors.Handler,
	})

	app.Use(slogfiber.New(logger))
	app.Use(statisticsMW)

	app.Get("/health", func(ctx *fiber.Ctx) error {
		if err := checker.HealthCheck(ctx.Context()); err != nil {
			return err
		}
		return ctx.SendStatus(fiber.StatusOK)
	})

	api := app.Group("/api/v1")
	authDelivery.AddHandlers(api.Group("/auth"))

	// Routes registered after this Use are token protected.
	api.Use(authMW)
	for _, delivery := range protected {
		delivery.AddHandlers(api)
	}

	return &FiberApp{
		app:  app,
		addr: config.Host + ":" + config.Port,
	}
}

func (a *FiberApp) Start() error {
	return a.app.Listen(a.addr)
}

func (a *FiberApp) Shutdown(ctx context.Context) error {
	return a.app.ShutdownWithContext(ctx)
}

// Router exposes the underlying fiber app for tests.
func (a *FiberApp) Router() *fiber.App {
	return a.app
}
