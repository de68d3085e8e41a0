package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/lmittmann/tint"
	"github.com/segmentio/kafka-go"
	"github.com/spf13/pflag"
	"go.uber.org/multierr"

	authDelivery "github.com/ridepark/vehicle-rental/internal/auth/delivery"
	authRepository "github.com/ridepark/vehicle-rental/internal/auth/repository"
	authUsecase "github.com/ridepark/vehicle-rental/internal/auth/usecase"
	bookingDelivery "github.com/ridepark/vehicle-rental/internal/booking/delivery"
	bookingRepository "github.com/ridepark/vehicle-rental/internal/booking/repository"
	bookingUsecase "github.com/ridepark/vehicle-rental/internal/booking/usecase"
	"github.com/ridepark/vehicle-rental/internal/pkg/app"
	pkgHasher "github.com/ridepark/vehicle-rental/internal/pkg/hasher"
	requestsDelivery "github.com/ridepark/vehicle-rental/internal/requests/delivery"
	requestsRepository "github.com/ridepark/vehicle-rental/internal/requests/repository"
	vehicleDelivery "github.com/ridepark/vehicle-rental/internal/vehicle/delivery"
	vehicleRepository "github.com/ridepark/vehicle-rental/internal/vehicle/repository"
	vehicleUsecase "github.com/ridepark/vehicle-rental/internal/vehicle/usecase"
	"github.com/ridepark/vehicle-rental/pkg/migrations"
	"github.com/ridepark/vehicle-rental/pkg/statistics"
)

type WebApp interface {
	Start() error
	Shutdown(ctx context.Context) error
}

func startApp(webApp WebApp, config app.Config, logger *slog.Logger) {
	logger.Debug(fmt.Sprintf("web app starts at %s with configuration: %+v", config.Web.Host+":"+config.Web.Port, config))

	go func() {
		err := webApp.Start()
		if err != nil {
			panic(err)
		}
	}()
}

func shutdownApp(webApp WebApp, logger *slog.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Debug("shutdown web app ...")

	const shutdownTimeout = time.Minute
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)

	err := webApp.Shutdown(ctx)
	if err != nil {
		panic(err)
	}

	cancel()
	logger.Debug("web app exited")
}

func main() {
	var configPath, migrationsPath string
	pflag.StringVarP(&configPath, "config", "c", "configs/rental.yaml", "Config file path")
	pflag.StringVarP(&migrationsPath, "migrations", "m", "migrations", "Migrations directory path")
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

	kafkaWriter := &kafka.Writer{
		Addr:                   kafka.TCP(config.Kafka.Addresses...),
		Topic:                  config.Kafka.Topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}

	defer func() {
		if err := multierr.Combine(db.Close(), kafkaWriter.Close()); err != nil {
			logger.Error(err.Error())
		}
	}()

	err = migrations.Do(config.DB.ConnectionString, migrationsPath, logger)
	if err != nil {
		panic(err)
	}

	authRepo := authRepository.NewSqlxRepository(db, logger)
	bookingRepo := bookingRepository.NewSqlxRepository(db, logger)
	vehicleRepo := vehicleRepository.NewSqlxRepository(db, logger)
	requestsRepo := requestsRepository.NewSqlxRepository(db, logger)

	stat := statistics.NewKafkaStatistics(nil, kafkaWriter, logger, nil)

	tokenTTL := time.Duration(config.Auth.TokenTTLHours) * time.Hour
	authUC := authUsecase.New(authRepo, logger, pkgHasher.NewBcryptHasher(), config.Auth.JWTSecret, tokenTTL)
	bookingUC := bookingUsecase.New(bookingRepo, vehicleRepo, logger)
	vehicleUC := vehicleUsecase.New(vehicleRepo, logger)

	authDel := authDelivery.New(authUC, logger)
	bookingDel := bookingDelivery.New(bookingUC, logger)
	vehicleDel := vehicleDelivery.New(vehicleUC, logger)
	requestsDel := requestsDelivery.New(requestsRepo, logger)

	authMW, err := app.NewAuth(config.Auth.JWTSecret, logger)
	if err != nil {
		panic(err)
	}

	statisticsMW, err := app.NewStatisticsMW(stat, logger)
	if err != nil {
		panic(err)
	}

	webApp := app.NewFiberApp(
		config.Web,
		authDel,
		[]app.Delivery{bookingDel, vehicleDel, requestsDel},
		statisticsMW,
		authMW,
		authDel,
		logger,
	)

	startApp(webApp, config, logger)
	shutdownApp(webApp, logger)
}
