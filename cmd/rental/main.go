package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/gorent/gorent/internal/pkg/config"
	"github.com/gorent/gorent/internal/pkg/database"
	"github.com/gorent/gorent/internal/pkg/health"
	"github.com/gorent/gorent/internal/pkg/logger"
	"github.com/gorent/gorent/internal/pkg/nsq"
	"github.com/gorent/gorent/internal/pkg/scheduler"
	"github.com/gorent/gorent/internal/pkg/server"
	paymentGW "github.com/gorent/gorent/services/payment/gateway"
	paymentHandler "github.com/gorent/gorent/services/payment/handler"
	paymentRepo "github.com/gorent/gorent/services/payment/repository"
	paymentUC "github.com/gorent/gorent/services/payment/usecase"
	rentalGW "github.com/gorent/gorent/services/rental/gateway"
	rentalHandler "github.com/gorent/gorent/services/rental/handler"
	rentalRepo "github.com/gorent/gorent/services/rental/repository"
	rentalUC "github.com/gorent/gorent/services/rental/usecase"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	configPath := flag.String("config", "", "path to env config file")
	flag.Parse()

	cfg := config.InitConfig(*configPath)

	zapLogger, err := logger.NewZapLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	pg, err := database.NewPostgresClient(cfg.Database)
	if err != nil {
		zapLogger.Fatal("failed to connect to postgres", logger.Err(err))
	}
	defer pg.Close()

	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		zapLogger.Fatal("failed to connect to redis", logger.Err(err))
	}
	defer redisClient.Close()

	producer, err := nsq.NewProducer(cfg.NSQ.Address)
	if err != nil {
		zapLogger.Fatal("failed to create nsq producer", logger.Err(err))
	}
	defer producer.Stop()

	db := pg.GetDB()
	rentalRepository := rentalRepo.NewRentalRepository(db)
	vehicleRepository := rentalRepo.NewVehicleRepository(db, redisClient)
	customerRepository := rentalRepo.NewCustomerRepository(db)
	paymentRepository := paymentRepo.NewPaymentRepository(db)

	rentalNotifier := rentalGW.NewRentalGW(producer, cfg.NSQ.Topic)
	paymentNotifier := paymentGW.NewPaymentNotifierGW(producer, cfg.NSQ.Topic)
	checkout := paymentGW.NewCheckoutGW(cfg.Gateway, cfg.Payment.Currency)

	clock := scheduler.RealClock{}
	rentals := rentalUC.NewRentalUC(cfg, rentalRepository, vehicleRepository, customerRepository, rentalNotifier)
	payments := paymentUC.NewPaymentUC(cfg, paymentRepository, rentalRepository, vehicleRepository, checkout, paymentNotifier, clock)

	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	rentalHandler.NewHandler(rentals, cfg).RegisterRoutes(e)
	paymentHandler.NewHandler(payments, cfg).RegisterRoutes(e)

	healthSvc := health.NewService()
	healthSvc.AddChecker("postgres", health.CheckerFunc(pg.Ping))
	healthSvc.AddChecker("redis", health.CheckerFunc(redisClient.Ping))
	healthSvc.AddChecker("nsq", health.CheckerFunc(func(context.Context) error { return producer.Ping() }))
	health.RegisterEndpoints(e, cfg.App.Name, cfg.App.Version, healthSvc)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runner := scheduler.NewRunner(time.Duration(cfg.Scheduler.SweepIntervalSec) * time.Second)
	runner.Register(scheduler.Job{Name: "expire-pending-payments", Run: payments.ExpirePendingPayments})
	runner.Register(scheduler.Job{Name: "fine-overdue-rentals", Run: payments.FineOverdueRentals})
	runner.Start(ctx)

	srv := server.NewGracefulServer(e, zapLogger, cfg.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Error("server exited with error", logger.Err(err))
	}

	cancel()
	runner.Wait()
}
