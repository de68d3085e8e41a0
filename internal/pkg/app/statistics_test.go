package app

import (
	"bytes"
	"log/slog"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgErrors "github.com/ridepark/vehicle-rental/internal/pkg/errors"
	"github.com/ridepark/vehicle-rental/pkg/statistics"
)

func newStatisticsApp(t *testing.T, logBuf *bytes.Buffer) *fiber.App {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(logBuf, nil))
	stat := statistics.NewKafkaStatistics(nil, nil, logger, nil)

	statisticsMW, err := NewStatisticsMW(stat, logger)
	require.NoError(t, err)

	app := fiber.New(fiber.Config{ErrorHandler: pkgErrors.Handler})
	app.Use(statisticsMW)
	app.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(fiber.StatusOK)
	})
	app.Get("/api/v1/vehicles", func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(fiber.StatusOK)
	})

	return app
}

func TestStatisticsMWPushFailureKeepsRequestAlive(t *testing.T) {
	logBuf := new(bytes.Buffer)
	app := newStatisticsApp(t, logBuf)

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/vehicles", nil)
	res, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, res.StatusCode)
	assert.Contains(t, logBuf.String(), "push request statistics")
}

func TestStatisticsMWSkipsHealth(t *testing.T) {
	logBuf := new(bytes.Buffer)
	app := newStatisticsApp(t, logBuf)

	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	res, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, res.StatusCode)
	assert.NotContains(t, logBuf.String(), "push request statistics")
}
