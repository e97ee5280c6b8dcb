package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/roundup/internal/pkg/audit"
	"github.com/piresc/roundup/internal/pkg/config"
	"github.com/piresc/roundup/internal/pkg/database"
	"github.com/piresc/roundup/internal/pkg/health"
	"github.com/piresc/roundup/internal/pkg/lock"
	"github.com/piresc/roundup/internal/pkg/logger"
	"github.com/piresc/roundup/internal/pkg/middleware"
	natspkg "github.com/piresc/roundup/internal/pkg/nats"
	nrpkg "github.com/piresc/roundup/internal/pkg/newrelic"
	nsqpkg "github.com/piresc/roundup/internal/pkg/nsq"
	"github.com/piresc/roundup/internal/pkg/observability"
	"github.com/piresc/roundup/internal/pkg/server"
	investmentGateway "github.com/piresc/roundup/services/investment/gateway"
	investmentHandler "github.com/piresc/roundup/services/investment/handler"
	investmentRepository "github.com/piresc/roundup/services/investment/repository"
	investmentUsecase "github.com/piresc/roundup/services/investment/usecase"
	mandateGateway "github.com/piresc/roundup/services/mandate/gateway"
	mandateHandler "github.com/piresc/roundup/services/mandate/handler"
	mandateNATS "github.com/piresc/roundup/services/mandate/handler/nats"
	mandateRepository "github.com/piresc/roundup/services/mandate/repository"
	mandateUsecase "github.com/piresc/roundup/services/mandate/usecase"
	roundupHandler "github.com/piresc/roundup/services/roundup/handler"
	roundupRepository "github.com/piresc/roundup/services/roundup/repository"
	roundupUsecase "github.com/piresc/roundup/services/roundup/usecase"
	"github.com/piresc/roundup/services/scheduler"
	schedulerGateway "github.com/piresc/roundup/services/scheduler/gateway"
	schedulerHandler "github.com/piresc/roundup/services/scheduler/handler"
	schedulerNSQ "github.com/piresc/roundup/services/scheduler/handler/nsq"
	schedulerRepository "github.com/piresc/roundup/services/scheduler/repository"
	schedulerUsecase "github.com/piresc/roundup/services/scheduler/usecase"
	"github.com/piresc/roundup/services/scheduler/worker"
	"go.uber.org/zap"
)

func main() {
	appName := "roundup-service"
	configPath := "config/roundup.env"
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	if configs.Database.AutoMigrate {
		if err := database.RunMigrations(postgresClient.GetDB().DB, configs.Database.MigrationsPath, configs.Database.Database); err != nil {
			zapLogger.Fatal("Failed to run migrations", zap.Error(err))
		}
	}

	// Initialize Redis client and the mandate lock
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	locker := lock.NewRedisLocker(redisClient.GetClient())

	// Initialize NATS for audit fan-out and relayed callbacks
	natsClient, err := natspkg.NewClient(configs.NATS.URL, appName)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	publisher := audit.NewNATSPublisher(natsClient)

	// Pre-debit notices go to NSQ when configured, otherwise to the log
	var noticeGW scheduler.NoticeGW = schedulerGateway.LogNoticeGW{}
	var nsqProducer *nsqpkg.Producer
	if configs.NSQ.Address != "" {
		nsqProducer, err = nsqpkg.NewProducer(configs.NSQ.Address)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NSQ", zap.Error(err))
		}
		noticeGW = schedulerGateway.NewNoticeGW(nsqProducer)
	}

	// Providers are chosen once at start-up
	paymentGW, paymentProvider := mandateGateway.NewPaymentGW(&configs.Providers)
	investmentGW := investmentGateway.NewInvestmentGW(&configs.Providers)

	// Initialize repositories
	db := postgresClient.GetDB()
	roundupRepo := roundupRepository.NewRoundupRepository(configs, db)
	investmentRepo := investmentRepository.NewInvestmentRepository(configs, db)
	mandateRepo := mandateRepository.NewMandateRepository(configs, db)
	schedulerRepo := schedulerRepository.NewSchedulerRepository(db)
	deduper := mandateRepository.NewCallbackDeduper(redisClient)

	// Initialize use cases
	roundupUC := roundupUsecase.NewRoundupUC(configs, roundupRepo)
	investmentUC := investmentUsecase.NewInvestmentUC(configs, investmentRepo, investmentGW, locker, publisher)
	mandateUC := mandateUsecase.NewMandateUC(configs, mandateRepo, paymentGW, investmentUC, deduper, publisher)
	schedulerUC := schedulerUsecase.NewSchedulerUC(configs, schedulerRepo, mandateRepo, paymentGW, noticeGW,
		investmentUC, locker, publisher, observability.NewTracer(nrApp))

	// Relayed provider callbacks
	callbackHandler := mandateNATS.NewCallbackHandler(mandateUC, natsClient, configs.Providers.WebhookSecret)
	if err := callbackHandler.InitNATSConsumers(); err != nil {
		zapLogger.Fatal("Failed to initialize NATS consumers", zap.Error(err))
	}

	var noticeHandler *schedulerNSQ.NoticeHandler
	if nsqProducer != nil {
		noticeHandler = schedulerNSQ.NewNoticeHandler(schedulerNSQ.LogDeliverer{})
		if err := noticeHandler.Start(configs.NSQ.Address); err != nil {
			zapLogger.Fatal("Failed to initialize NSQ consumer", zap.Error(err))
		}
	}

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(nrpkg.Middleware(nrApp))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	healthService := health.NewHealthService()
	healthService.AddChecker("postgres", health.Postgres(postgresClient))
	healthService.AddChecker("redis", health.Redis(redisClient))
	healthService.AddChecker("nats", health.NATS(natsClient))
	if nsqProducer != nil {
		healthService.AddChecker("nsq", health.NSQ(nsqProducer))
	}
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	// Register service routes
	api := e.Group("/api", middleware.JWTAuthMiddleware(configs.JWT))
	internal := e.Group("/internal",
		middleware.NewAPIKeyMiddleware(&configs.APIKey).ValidateAPIKey(middleware.CallerScheduler, middleware.CallerAdmin))
	webhooks := e.Group("/webhooks")

	roundupHandler.NewHandler(roundupUC).RegisterRoutes(api)
	investmentHandler.NewHandler(investmentUC).RegisterRoutes(api, internal)
	mandateHandler.NewHandler(mandateUC, configs.Providers.WebhookSecret).RegisterRoutes(api, webhooks)
	schedulerHandler.NewHandler(schedulerUC).RegisterRoutes(internal)

	// Scheduled debit and sweep passes
	var cronWorker *worker.Worker
	if configs.Scheduler.Enabled {
		cronWorker = worker.NewWorker(configs.Scheduler, schedulerUC)
		if err := cronWorker.Start(); err != nil {
			zapLogger.Fatal("Failed to start scheduler", zap.Error(err))
		}
	}

	// Components close in reverse registration order: scheduler and consumers first, connections last
	sm := server.NewShutdownManager(zapLogger)
	if nrApp != nil {
		sm.Register("newrelic", func(ctx context.Context) error {
			nrApp.Shutdown(5 * time.Second)
			return nil
		})
	}
	sm.Register("postgres", func(ctx context.Context) error {
		return postgresClient.Close()
	})
	sm.Register("redis", func(ctx context.Context) error {
		return redisClient.Close()
	})
	sm.Register("nats", func(ctx context.Context) error {
		natsClient.Close()
		return nil
	})
	if nsqProducer != nil {
		sm.Register("nsq-producer", func(ctx context.Context) error {
			nsqProducer.Stop()
			return nil
		})
	}
	if noticeHandler != nil {
		sm.Register("nsq-consumer", func(ctx context.Context) error {
			noticeHandler.Stop()
			return nil
		})
	}
	sm.Register("nats-consumers", func(ctx context.Context) error {
		callbackHandler.Close()
		return nil
	})
	if cronWorker != nil {
		sm.Register("scheduler", cronWorker.Stop)
	}

	zapLogger.Info("Service configured",
		zap.String("payment_provider", paymentProvider),
		zap.Bool("scheduler_enabled", configs.Scheduler.Enabled),
		zap.Int("port", configs.Server.Port),
	)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second, sm)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error", zap.String("app", appName), zap.Error(err))
	}
}
