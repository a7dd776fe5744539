// Copyright (c) 2026 Vow Directory. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the vendor directory HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Open the directory store (PostgreSQL, or a YAML dataset in memory).
//  4. Connect to Redis when REDIS_URL is set.
//  5. Wire HTTP handlers.
//  6. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/taibuivan/vowdirectory/internal/api"
	"github.com/taibuivan/vowdirectory/internal/core/catalog"
	"github.com/taibuivan/vowdirectory/internal/core/fixture"
	"github.com/taibuivan/vowdirectory/internal/core/landing"
	"github.com/taibuivan/vowdirectory/internal/core/vendor"
	"github.com/taibuivan/vowdirectory/internal/platform/config"
	"github.com/taibuivan/vowdirectory/internal/platform/constants"
	"github.com/taibuivan/vowdirectory/internal/platform/middleware"
	"github.com/taibuivan/vowdirectory/internal/platform/migration"
	pgstore "github.com/taibuivan/vowdirectory/internal/platform/postgres"
	redisstore "github.com/taibuivan/vowdirectory/internal/platform/redis"
	"github.com/taibuivan/vowdirectory/internal/platform/sec"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	log := newLogger(slog.LevelInfo)
	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("storage_driver", cfg.StorageDriver),
	)

	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	var checks []api.HealthCheck

	// ── 3. Directory Store ────────────────────────────────────────────────
	var (
		vendorRepository  vendor.Repository
		catalogRepository catalog.Repository
	)

	if cfg.UsesPostgres() {
		pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
		must(log, err, "connect to postgres")
		defer func() {
			log.Info("closing_postgres_pool")
			pool.Close()
		}()

		if cfg.AutoMigrate {
			must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")
		}

		vendorRepository = vendor.NewPostgresRepository(pool)
		catalogRepository = catalog.NewPostgresRepository(pool)
		checks = append(checks, postgresCheck(pool))
	} else {
		dataset, err := fixture.Load(cfg.SeedPath)
		must(log, err, "load seed dataset")

		log.Info("memory_store_loaded",
			slog.String("path", cfg.SeedPath),
			slog.Int("vendors", len(dataset.Vendors)),
		)
		vendorRepository = vendor.NewMemoryRepository(dataset)
		catalogRepository = catalog.NewMemoryRepository(dataset)
	}

	// ── 4. Redis ──────────────────────────────────────────────────────────
	if cfg.RedisURL != "" {
		rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing_redis_client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis_close_error", slog.Any("error", cerr))
			}
		}()

		catalogRepository = catalog.NewCachedRepository(catalogRepository, rdb, cfg.CatalogCacheTTL, log)
		checks = append(checks, redisCheck(rdb))
	}

	// ── 5. Admin Token Verification ───────────────────────────────────────
	var verifier middleware.TokenVerifier
	if cfg.AdminEnabled() {
		tokenVerifier, err := sec.NewTokenVerifier(cfg.JWTPubKeyPath, cfg.JWTIssuer)
		must(log, err, "initialize token verifier")
		verifier = tokenVerifier
	} else {
		log.Warn("admin_routes_disabled", slog.String("reason", "JWT_PUBLIC_KEY_PATH not set"))
	}

	// ── 6. Domain Wiring ──────────────────────────────────────────────────
	vendorService := vendor.NewService(vendorRepository, log)
	catalogService := catalog.NewService(catalogRepository, log)
	landingService := landing.NewService(vendorService, catalogService)

	liveness, readiness := api.NewHealthHandlers(checks, log)

	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Vendor:    vendor.NewHandler(vendorService),
		Catalog:   catalog.NewHandler(catalogService),
		Landing:   landing.NewHandler(landingService),
	}

	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, verifier, handlers)

	// ── 7. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_error", slog.Any("error", err))
	}

	log.Info("shutting_down_server", slog.Duration("timeout", constants.ShutdownTimeout))

	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown_error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped_cleanly")
}

func newLogger(level slog.Level) *slog.Logger {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})).
		With(slog.String("app", constants.AppName))
	slog.SetDefault(log)
	return log
}

func postgresCheck(pool *pgxpool.Pool) api.HealthCheck {
	return api.HealthCheck{Name: "postgres", Check: func(ctx context.Context) error {
		return pgstore.Ping(ctx, pool)
	}}
}

func redisCheck(client *goredis.Client) api.HealthCheck {
	return api.HealthCheck{Name: "redis", Check: func(ctx context.Context) error {
		return redisstore.Ping(ctx, client)
	}}
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// Only startup wiring uses it. After startup, errors are returned and handled.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
