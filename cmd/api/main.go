// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/b2bmarket/backend/internal/admin"
	"github.com/b2bmarket/backend/internal/advertisement"
	"github.com/b2bmarket/backend/internal/auth"
	"github.com/b2bmarket/backend/internal/business"
	"github.com/b2bmarket/backend/internal/config"
	"github.com/b2bmarket/backend/internal/core"
	"github.com/b2bmarket/backend/internal/email"
	"github.com/b2bmarket/backend/internal/franchise"
	"github.com/b2bmarket/backend/internal/health"
	"github.com/b2bmarket/backend/internal/inquiry"
	"github.com/b2bmarket/backend/internal/middleware"
	"github.com/b2bmarket/backend/internal/payment"
	"github.com/b2bmarket/backend/internal/server"
	"github.com/b2bmarket/backend/internal/user"
)

const (
	drainDelay = 5 * time.Second
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

//nolint:funlen // bootstrap code is inherently verbose
func run(configPath string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	var telemetry *core.Telemetry
	if cfg.Otel.Enabled {
		tel, telErr := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
		if telErr != nil {
			logger.Warn("failed to initialize telemetry", "error", telErr)
		} else {
			telemetry = tel
			logger.Info("OpenTelemetry tracer initialized",
				"endpoint", cfg.Otel.Endpoint,
			)
		}
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	logger.Info("database connected",
		"max_open_conns", cfg.Database.MaxOpenConns,
		"max_idle_conns", cfg.Database.MaxIdleConns,
	)

	redis, err := core.NewRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	logger.Info("redis connected",
		"pool_size", cfg.Redis.PoolSize,
	)

	tokenManager, err := auth.NewTokenManager(cfg.JWT)
	if err != nil {
		return err
	}
	logger.Info("token manager initialized", "algorithm", "HS256")

	sessions := auth.NewRedisSessionStore(redis.Client)
	mailer := email.NewMailer(cfg.Email, logger)

	userRepo := user.NewRepository(db.DB)

	authRepo := auth.NewRepository(db.DB)
	authSvc := auth.NewService(
		authRepo, userRepo, tokenManager, sessions, mailer, cfg, logger,
	)
	authHandler := auth.NewHandler(authSvc, cfg, logger)

	inquiryRepo := inquiry.NewRepository(db.DB)
	inquirySvc := inquiry.NewService(inquiryRepo)
	inquiryHandler := inquiry.NewHandler(inquirySvc, logger)

	franchiseRepo := franchise.NewRepository(db.DB)
	franchiseSvc := franchise.NewService(franchiseRepo)
	franchiseHandler := franchise.NewHandler(franchiseSvc, inquirySvc, logger)

	businessRepo := business.NewRepository(db.DB)
	businessSvc := business.NewService(businessRepo)
	businessHandler := business.NewHandler(businessSvc, inquirySvc, logger)

	adRepo := advertisement.NewRepository(db.DB)
	adSvc := advertisement.NewService(adRepo)
	adHandler := advertisement.NewHandler(adSvc, logger)

	userHandler := user.NewHandler(userRepo, businessSvc, adSvc, logger)

	paymentSvc := payment.NewService(cfg.Stripe)
	paymentHandler := payment.NewHandler(paymentSvc, logger)
	if !paymentSvc.Configured() {
		logger.Warn("stripe secret key not set, payment endpoints disabled")
	}

	healthHandler := health.NewHandler(db, redis)

	adminHandler := admin.NewHandler(admin.HandlerConfig{
		DBStats:    db.Stats,
		RedisStats: redis.PoolStats,
		DBPing:     db.Ping,
		RedisPing:  redis.Ping,
		Sessions:   sessions,
		Logger:     logger,
	})

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	router := srv.Router()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger))
	router.Use(
		middleware.NewRateLimiter(redis.Client, middleware.RateLimitConfig{
			Limit: middleware.PerMinute(
				cfg.RateLimit.Requests,
				cfg.RateLimit.Burst,
			),
			FailOpen: true,
		}).Handler,
	)
	router.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	router.Use(middleware.CORS(cfg.CORS))

	healthHandler.RegisterRoutes(router)

	authenticator := middleware.Authenticator(authSvc, cfg.Session.CookieName)
	adminOnly := middleware.RequireAdmin

	router.Route("/v1", func(r chi.Router) {
		authHandler.RegisterRoutes(r, authenticator)
		userHandler.RegisterRoutes(r, authenticator)
		franchiseHandler.RegisterRoutes(r, authenticator)
		businessHandler.RegisterRoutes(r, authenticator)
		adHandler.RegisterRoutes(r, authenticator)
		inquiryHandler.RegisterRoutes(r, authenticator)
		paymentHandler.RegisterRoutes(r, authenticator)

		adminHandler.RegisterRoutes(r, authenticator, adminOnly,
			franchiseHandler.RegisterAdminRoutes,
			businessHandler.RegisterAdminRoutes,
			adHandler.RegisterAdminRoutes,
		)
	})

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+drainDelay+5*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, drainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown error", "error", err)
		}
	}

	if err := redis.Close(); err != nil {
		logger.Error("redis close error", "error", err)
	}

	if err := db.Close(); err != nil {
		logger.Error("database close error", "error", err)
	}

	logger.Info("application stopped")
	return nil
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var handler slog.Handler

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
