package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"github.com/user/audit-scope/internal/adapter/api"
	"github.com/user/audit-scope/internal/adapter/api/handler"
	"github.com/user/audit-scope/internal/adapter/api/middleware"
	"github.com/user/audit-scope/internal/adapter/metrics"
	filesource "github.com/user/audit-scope/internal/adapter/source/file"
	pgsource "github.com/user/audit-scope/internal/adapter/source/postgres"
	redissource "github.com/user/audit-scope/internal/adapter/source/redis"
	"github.com/user/audit-scope/internal/domain"
	"github.com/user/audit-scope/internal/pkg/config"
	"github.com/user/audit-scope/internal/pkg/logger"
	"github.com/user/audit-scope/internal/usecase"

	_ "github.com/lib/pq" // Keep for postgres driver
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := logger.New(cfg.LogLevel)
	slog.SetDefault(logger)

	m := metrics.NewAuditMetrics()

	// --- Graceful Shutdown Context ---
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Admin and Metrics Server ---
	adminMux := http.NewServeMux()
	adminMux.Handle("/metrics", promhttp.Handler())

	adminServer := &http.Server{
		Addr:    cfg.AdminServerAddr,
		Handler: adminMux,
	}

	go func() {
		logger.Info("starting admin & metrics server", "addr", adminServer.Addr)
		if err := adminServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("admin & metrics server failed", "error", err)
		}
	}()

	// --- Audit Source ---
	var source domain.AuditSource
	switch cfg.SourceBackend {
	case config.BackendPostgres:
		db, err := sql.Open("postgres", cfg.PostgresURL)
		if err != nil {
			logger.Error("failed to connect to postgres", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		if err := db.PingContext(ctx); err != nil {
			logger.Warn("could not reach postgres on startup, views will degrade to empty until it recovers", "error", err)
		}
		source = pgsource.NewSource(db, logger)

	case config.BackendRedis:
		redisOpts, err := redis.ParseURL(cfg.RedisAddr)
		if err != nil {
			logger.Error("failed to parse redis url", "error", err)
			os.Exit(1)
		}
		redisClient := redis.NewClient(redisOpts)
		defer redisClient.Close()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Warn("could not reach redis on startup, views will degrade to empty until it recovers", "error", err)
		}
		source = redissource.NewSource(redisClient, logger)

	default:
		source = filesource.NewSource(cfg.AuditFilePath, logger)
	}

	// --- Use Cases ---
	decoder := usecase.NewRecordDecoder(logger)
	cache := usecase.NewAuditCache(source, decoder, logger, m)
	query := usecase.NewAuditQueryUseCase(cache, logger)

	// Warm the cache so the first request does not pay for the full decode.
	snap := cache.Load(ctx)
	logger.Info("audit cache warmed", "records", len(snap.Records), "decode_failures", len(snap.Failures))

	// --- API Server ---
	auditHandler := handler.NewAuditHandler(query, logger, m)
	router := api.NewRouter(auditHandler)

	limiter := rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	chain := middleware.RequestID()(
		middleware.Logging(logger)(
			middleware.RateLimit(limiter, logger)(router),
		),
	)

	apiServer := &http.Server{
		Addr:         cfg.APIServerAddr,
		Handler:      chain,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  15 * time.Second,
	}

	go func() {
		logger.Info("starting audit api server", "addr", apiServer.Addr, "source_backend", cfg.SourceBackend)
		if err := apiServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("audit api server failed", "error", err)
			stop() // Trigger shutdown on server error
		}
	}()

	// --- Wait for shutdown signal ---
	<-ctx.Done()
	logger.Info("shutting down servers...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("api server shutdown failed", "error", err)
	}
	if err := adminServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("admin server shutdown failed", "error", err)
	}

	logger.Info("shutdown complete")
}
