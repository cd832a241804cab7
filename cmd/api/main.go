package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/rafaelmelo2/maonamassa/internal/api/http"
	"github.com/rafaelmelo2/maonamassa/internal/api/http/handlers"
	"github.com/rafaelmelo2/maonamassa/internal/auth"
	"github.com/rafaelmelo2/maonamassa/internal/config"
	"github.com/rafaelmelo2/maonamassa/internal/events"
	"github.com/rafaelmelo2/maonamassa/internal/observability"
	"github.com/rafaelmelo2/maonamassa/internal/persistence"
	"github.com/rafaelmelo2/maonamassa/internal/repository"
	"github.com/rafaelmelo2/maonamassa/internal/service"
	"github.com/rafaelmelo2/maonamassa/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	professionalRepo := repository.NewProfessionalRepository(pool)
	serviceRepo := repository.NewServiceRepository(pool)
	contractRepo := repository.NewContractRepository(pool)
	resetRepo := repository.NewPasswordResetRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	summaryCache := persistence.NewSummaryCache(redis, cfg.Redis.SummaryCacheTTL)

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		UserRepo:          userRepo,
		PasswordResetRepo: resetRepo,
		Dispatcher:        dispatcher,
	})
	userService := service.NewUserService(userRepo, dispatcher)
	professionalService := service.NewProfessionalService(service.ProfessionalDependencies{
		ProfessionalRepo: professionalRepo,
		UserRepo:         userRepo,
		Cache:            summaryCache,
		Dispatcher:       dispatcher,
		Logger:           logger,
	})
	catalogService := service.NewCatalogService(serviceRepo, professionalRepo)
	contractService := service.NewContractService(contractRepo, serviceRepo, professionalRepo, dispatcher)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)

	worker.StartNotificationWorker(notificationService)
	worker.StartMetricsWorker(ctx, professionalService, 5*time.Minute, logger)

	authMiddleware := auth.NewMiddleware(authService.TokenManager(), userRepo)
	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Users:          handlers.NewUsersHandler(userService),
		Professionals:  handlers.NewProfessionalsHandler(professionalService),
		Services:       handlers.NewServicesHandler(catalogService),
		Contracts:      handlers.NewContractsHandler(contractService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
