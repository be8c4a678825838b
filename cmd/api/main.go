package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	httptransport "github.com/michaeljohnaustria/my-garden/internal/api/http"
	"github.com/michaeljohnaustria/my-garden/internal/api/http/handlers"
	"github.com/michaeljohnaustria/my-garden/internal/auth"
	"github.com/michaeljohnaustria/my-garden/internal/config"
	"github.com/michaeljohnaustria/my-garden/internal/events"
	"github.com/michaeljohnaustria/my-garden/internal/observability"
	"github.com/michaeljohnaustria/my-garden/internal/persistence"
	"github.com/michaeljohnaustria/my-garden/internal/repository"
	"github.com/michaeljohnaustria/my-garden/internal/service"
	"github.com/michaeljohnaustria/my-garden/internal/worker"
)

const shutdownTimeout = 10 * time.Second

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

	shutdownTracing, err := observability.InitTracing(ctx, cfg.App, cfg.Tracing, logger)
	if err != nil {
		logger.Fatal("failed to init tracing", zap.Error(err))
	}

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	pool := pg.PoolHandle()
	if pool == nil {
		logger.Fatal("POSTGRES_DSN is required")
	}
	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pool, cfg.Postgres.MigrationsDir, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := observability.NewMetrics(registry)

	tokenManager, err := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTAlgorithm, cfg.Auth.TokenTTL())
	if err != nil {
		logger.Fatal("failed to init token manager", zap.Error(err))
	}
	authService := service.NewAuthService(cfg.Auth, tokenManager)
	authMiddleware := auth.NewAuthMiddleware(tokenManager, logger)

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartChangeFeedWorker(service.NewChangeFeedService(dispatcher, logger, metrics, redis.Client, cfg.Redis.EventsChannel, cfg.Redis.PublishTimeout()))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ErrorHandler: httptransport.ErrorHandler(logger, metrics),
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Vegetables:     handlers.NewVegetablesHandler(repository.NewVegetableRepository(pool), dispatcher, logger),
		SoilTypes:      handlers.NewSoilTypesHandler(repository.NewSoilTypeRepository(pool), dispatcher, logger),
		Pests:          handlers.NewPestsHandler(repository.NewPestRepository(pool), dispatcher, logger),
		Facts:          handlers.NewFactsHandler(repository.NewFactRepository(pool), dispatcher, logger),
		AuthMiddleware: authMiddleware,
		WriteRoles:     cfg.Auth.WriteRoles,
		Gatherer:       registry,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		logger.Warn("http shutdown", zap.Error(err))
	}
	flushCtx, flushCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer flushCancel()
	if err := shutdownTracing(flushCtx); err != nil {
		logger.Warn("tracing shutdown", zap.Error(err))
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
