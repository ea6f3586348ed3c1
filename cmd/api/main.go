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

	httptransport "github.com/spec-kit/resty-service/internal/api/http"
	"github.com/spec-kit/resty-service/internal/api/http/handlers"
	"github.com/spec-kit/resty-service/internal/assistant"
	"github.com/spec-kit/resty-service/internal/config"
	"github.com/spec-kit/resty-service/internal/events"
	"github.com/spec-kit/resty-service/internal/observability"
	"github.com/spec-kit/resty-service/internal/persistence"
	"github.com/spec-kit/resty-service/internal/ratelimit"
	"github.com/spec-kit/resty-service/internal/realtime"
	"github.com/spec-kit/resty-service/internal/seed"
	"github.com/spec-kit/resty-service/internal/service"
	"github.com/spec-kit/resty-service/internal/shell"
	"github.com/spec-kit/resty-service/internal/store"
	"github.com/spec-kit/resty-service/internal/worker"
)

const metricsNamespace = "resty"

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
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), cfg.Postgres.MigrationsDir, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	metrics := observability.NewMetrics(metricsNamespace)

	appStore := store.New()
	defer metrics.ObserveStore(appStore)()

	dispatcher := events.NewInMemoryDispatcher(logger)
	notifications := service.NewNotificationService(dispatcher, logger.Named("notifications"), cfg.Notification)
	defer worker.StartNotificationWorker(appStore, dispatcher, notifications)()

	provider, err := seed.NewFromConfig(cfg.Seed, pg, logger)
	if err != nil {
		logger.Fatal("failed to select seed source", zap.Error(err))
	}
	if err := seed.Apply(ctx, provider, appStore); err != nil {
		logger.Fatal("failed to seed store", zap.Error(err))
	}
	logger.Info("store seeded",
		zap.String("source", cfg.Seed.Source),
		zap.Int("staff", len(appStore.Staff())),
		zap.Int("insights", len(appStore.Insights())))

	randomSeed := cfg.Chat.RandomSeed
	if randomSeed == 0 {
		randomSeed = uint64(time.Now().UnixNano())
	}
	chat := assistant.New(appStore, assistant.NewSeededProvider(randomSeed), assistant.Config{
		Delay:   cfg.Chat.ResponseDelay(),
		Timeout: cfg.Chat.ResponseTimeout(),
	}, logger.Named("assistant"))
	sessions := assistant.NewSessions(chat, cfg.Chat.SessionIdle())
	if err := metrics.TrackChatSessions(sessions.Count); err != nil {
		logger.Warn("chat session gauge not registered", zap.Error(err))
	}

	var limiter ratelimit.Limiter = ratelimit.Unlimited{}
	if redis.Configured() {
		limiter = ratelimit.NewFixedWindow(ratelimit.NewRedisCounter(redis.Client), "chat", cfg.Chat.RateLimitPerMinute, time.Minute, logger)
	}

	hub := realtime.NewHub(logger.Named("realtime"))
	go hub.Run(ctx)
	defer hub.Attach(appStore)()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name, DisableStartupMessage: true})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health: handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, map[string]handlers.Dependency{
			"postgres": pg,
			"redis":    redis,
		}),
		Shell:     handlers.NewShellHandler(appStore, shell.New(appStore, shell.DefaultRouter()), sessions),
		Staff:     handlers.NewStaffHandler(appStore),
		Shifts:    handlers.NewShiftHandler(appStore),
		Chat:      handlers.NewChatHandler(appStore, sessions, limiter),
		Insights:  handlers.NewInsightHandler(appStore),
		Analytics: handlers.NewAnalyticsHandler(appStore),
		Stream:    handlers.NewStreamHandler(ctx, hub, appStore),
		Metrics:   metrics.Handler(),
	})

	go func() {
		logger.Info("listening", zap.String("addr", cfg.App.Addr()))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	sessions.CloseAll()
	cancel()
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Warn("shutdown", zap.Error(err))
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
