package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/lmittmann/tint"
	"github.com/segmentio/kafka-go"
	"github.com/spf13/pflag"
	"go.uber.org/multierr"

	"github.com/ridepark/vehicle-rental/internal/pkg/app"
	"github.com/ridepark/vehicle-rental/internal/requests/repository"
	"github.com/ridepark/vehicle-rental/pkg/statistics"
)

// The statistics consumer drains the request topic and persists the
// records into the requests table.
func main() {
	var configPath string
	pflag.StringVarP(&configPath, "config", "c", "configs/statistics.yaml", "Config file path")
	pflag.Parse()

	config, err := app.ReadLocalConfig(configPath)
	if err != nil {
		panic(err)
	}

	logger := slog.New(tint.NewHandler(os.Stdout, &tint.Options{Level: slog.Level(config.Logging.Level)}))

	db, err := sqlx.Connect(config.DB.DriverName, config.DB.ConnectionString)
	if err != nil {
		panic(err)
	}

	repo := repository.NewSqlxRepository(db, logger)

	kafkaReader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: config.Kafka.Addresses,
		Topic:   config.Kafka.Topic,
	})

	defer func() {
		if err := multierr.Combine(kafkaReader.Close(), db.Close()); err != nil {
			logger.Error(err.Error())
		}
	}()

	stat := statistics.NewKafkaStatistics(kafkaReader, nil, logger, repo)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())

	for {
		select {
		case <-quit:
			cancel()
			return
		default:
			err = stat.SaveRequest(ctx)
			if err != nil {
				logger.Error(err.Error())
			}
		}
	}
}
