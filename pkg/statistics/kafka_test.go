package statistics_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ridepark/vehicle-rental/pkg/statistics"
)

func TestPushWithoutWriter(t *testing.T) {
	stat := statistics.NewKafkaStatistics(nil, nil, slog.New(slog.DiscardHandler), nil)

	err := stat.Push(context.Background(), statistics.Request{
		Method: "GET",
		URL:    "/api/v1/vehicles",
	})

	assert.ErrorIs(t, err, statistics.ErrNoWriter)
}

func TestSaveRequestWithoutReader(t *testing.T) {
	stat := statistics.NewKafkaStatistics(nil, nil, slog.New(slog.DiscardHandler), nil)

	err := stat.SaveRequest(context.Background())

	assert.ErrorIs(t, err, statistics.ErrNoReader)
}
