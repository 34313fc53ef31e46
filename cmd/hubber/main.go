package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/piresc/hubber/internal/pkg/amqp"
	"github.com/piresc/hubber/internal/pkg/config"
	"github.com/piresc/hubber/internal/pkg/constants"
	"github.com/piresc/hubber/internal/pkg/database"
	"github.com/piresc/hubber/internal/pkg/events"
	"github.com/piresc/hubber/internal/pkg/health"
	"github.com/piresc/hubber/internal/pkg/logger"
	"github.com/piresc/hubber/internal/pkg/middleware"
	"github.com/piresc/hubber/internal/pkg/models"
	natspkg "github.com/piresc/hubber/internal/pkg/nats"
	nrpkg "github.com/piresc/hubber/internal/pkg/newrelic"
	"github.com/piresc/hubber/internal/pkg/server"
	bookingGateway "github.com/piresc/hubber/services/bookings/gateway"
	bookingHandler "github.com/piresc/hubber/services/bookings/handler"
	bookingRepository "github.com/piresc/hubber/services/bookings/repository"
	bookingUsecase "github.com/piresc/hubber/services/bookings/usecase"
	paymentGateway "github.com/piresc/hubber/services/payments/gateway"
	paymentHandler "github.com/piresc/hubber/services/payments/handler"
	paymentRepository "github.com/piresc/hubber/services/payments/repository"
	paymentUsecase "github.com/piresc/hubber/services/payments/usecase"
	reviewGateway "github.com/piresc/hubber/services/reviews/gateway"
	reviewHandler "github.com/piresc/hubber/services/reviews/handler"
	reviewRepository "github.com/piresc/hubber/services/reviews/repository"
	reviewUsecase "github.com/piresc/hubber/services/reviews/usecase"
	rideGateway "github.com/piresc/hubber/services/rides/gateway"
	rideHandler "github.com/piresc/hubber/services/rides/handler"
	rideRepository "github.com/piresc/hubber/services/rides/repository"
	rideUsecase "github.com/piresc/hubber/services/rides/usecase"
	"go.uber.org/zap"
)

func main() {
	appName := "hubber"
	configPath := "config/hubber.env"
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		} else {
			log.Println("New Relic connection established")
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
		zap.String("events_driver", configs.Events.Driver),
	)

	shutdown := server.NewShutdownManager(zapLogger)
	healthService := health.NewHealthService(zapLogger)

	// PostgreSQL
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	shutdown.Register("postgres", func(context.Context) error { return postgresClient.Close() })
	healthService.AddChecker("postgres", health.NewPingChecker(postgresClient))

	if configs.Database.AutoMigrate {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		err := database.Migrate(ctx, postgresClient.GetDB())
		cancel()
		if err != nil {
			zapLogger.Fatal("Failed to apply migrations", zap.Error(err))
		}
		zapLogger.Info("Database migrations applied")
	}

	// Redis
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	shutdown.Register("redis", func(context.Context) error { return redisClient.Close() })
	healthService.AddChecker("redis", health.NewPingChecker(redisClient))

	// Event transport
	publisher := initPublisher(configs, zapLogger, shutdown, healthService)

	// Repositories
	bookingRepo := bookingRepository.NewBookingRepository(configs, postgresClient.GetDB())
	idempotencyRepo := bookingRepository.NewIdempotencyRepository(redisClient, configs.Booking.IdempotencyTTL)
	rideRepo := rideRepository.NewRideRepository(configs, postgresClient.GetDB())
	paymentRepo := paymentRepository.NewPaymentRepository(configs, postgresClient.GetDB())
	reviewRepo := reviewRepository.NewReviewRepository(configs, postgresClient.GetDB())

	// UseCases
	bookingUC, err := bookingUsecase.NewBookingUC(configs, bookingRepo, idempotencyRepo, bookingGateway.NewBookingGW(publisher))
	if err != nil {
		zapLogger.Fatal("Failed to initialize booking usecase", zap.Error(err))
	}
	rideUC, err := rideUsecase.NewRideUC(configs, rideRepo, rideGateway.NewRideGW(publisher), bookingUC)
	if err != nil {
		zapLogger.Fatal("Failed to initialize ride usecase", zap.Error(err))
	}
	paymentUC, err := paymentUsecase.NewPaymentUC(configs, paymentRepo, paymentGateway.NewDefaultResilientProvider(paymentGateway.NewStubProvider()), bookingUC)
	if err != nil {
		zapLogger.Fatal("Failed to initialize payment usecase", zap.Error(err))
	}
	reviewUC, err := reviewUsecase.NewReviewUC(configs, reviewRepo, reviewGateway.NewReviewGW(publisher))
	if err != nil {
		zapLogger.Fatal("Failed to initialize review usecase", zap.Error(err))
	}

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	if nrApp != nil {
		e.Use(nrecho.Middleware(nrApp))
	}
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: configs.Server.CORSOrigins,
		AllowHeaders: []string{
			echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept,
			echo.HeaderAuthorization, "Idempotency-Key",
		},
	}))

	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	api := e.Group("/api/v1")
	auth := api.Group("", middleware.JWTAuthMiddleware(configs.JWT),
		middleware.UserSyncMiddleware(database.NewUserStore(postgresClient.GetDB())))
	driver := auth.Group("/driver", middleware.RequireRole(models.RoleDriver))
	createLimiter := middleware.BookingRateLimiter(configs.Booking.RateLimitPerMinute, redisClient)

	rideHandler.NewHandler(rideUC).RegisterRoutes(api, driver)
	bookingHandler.NewHandler(bookingUC).RegisterRoutes(auth, createLimiter)
	paymentHandler.NewHandler(paymentUC).RegisterRoutes(auth)
	reviewHandler.NewHandler(reviewUC).RegisterRoutes(auth)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server stopped with error", zap.String("app", appName), zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := shutdown.Shutdown(ctx); err != nil {
		zapLogger.Error("Failed to release resources", zap.Error(err))
	}
	if nrApp != nil {
		nrApp.Shutdown(5 * time.Second)
	}
	zapLogger.Close()
}

// initPublisher connects the broker named by EVENTS_DRIVER and returns the
// matching publisher
func initPublisher(configs *models.Config, zapLogger *logger.ZapLogger, shutdown *server.ShutdownManager, healthService *health.HealthService) events.Publisher {
	var (
		natsConn events.SubjectPublisher
		amqpConn events.RoutingPublisher
	)

	switch configs.Events.Driver {
	case "", constants.EventsDriverNATS:
		natsClient, err := natspkg.NewClient(configs.NATS.URL)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
		}
		shutdown.Register("nats", func(context.Context) error {
			natsClient.Close()
			return nil
		})
		healthService.AddChecker("nats", health.NewConnectionChecker("NATS", natsClient))
		natsConn = natsClient
	case constants.EventsDriverAMQP:
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		amqpPublisher, err := amqp.NewPublisher(ctx, configs.AMQP.URL, configs.AMQP.Exchange, amqp.DefaultOptions)
		cancel()
		if err != nil {
			zapLogger.Fatal("Failed to connect to RabbitMQ", zap.Error(err))
		}
		shutdown.Register("amqp", func(context.Context) error {
			amqpPublisher.Close()
			return nil
		})
		healthService.AddChecker("amqp", health.NewConnectionChecker("RabbitMQ", amqpPublisher))
		amqpConn = amqpPublisher
	}

	publisher, err := events.NewPublisher(configs, natsConn, amqpConn)
	if err != nil {
		zapLogger.Fatal("Failed to initialize event publisher", zap.Error(err))
	}
	return publisher
}
