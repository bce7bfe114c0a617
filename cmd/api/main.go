// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Inkwell HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger and load configuration.
//  2. Connect to PostgreSQL and run migrations.
//  3. Select the feed cache backend (Redis or in-process).
//  4. Configure object storage for covers (optional).
//  5. Wire services and handlers.
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

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/inkwell/internal/api"
	"github.com/taibuivan/inkwell/internal/core/article"
	"github.com/taibuivan/inkwell/internal/core/attachment"
	"github.com/taibuivan/inkwell/internal/core/category"
	"github.com/taibuivan/inkwell/internal/core/setting"
	"github.com/taibuivan/inkwell/internal/core/text"
	"github.com/taibuivan/inkwell/internal/platform/cache"
	"github.com/taibuivan/inkwell/internal/platform/config"
	"github.com/taibuivan/inkwell/internal/platform/constants"
	"github.com/taibuivan/inkwell/internal/platform/markdown"
	"github.com/taibuivan/inkwell/internal/platform/migration"
	pgstore "github.com/taibuivan/inkwell/internal/platform/postgres"
	"github.com/taibuivan/inkwell/internal/platform/sec"
	"github.com/taibuivan/inkwell/internal/platform/storage"
	"github.com/taibuivan/inkwell/internal/search"
	"github.com/taibuivan/inkwell/internal/users/auth"
)

// cacheKeyPrefix namespaces feed entries in a shared Redis.
const cacheKeyPrefix = "inkwell:"

func main() {
	// ── 1. Logger & Configuration ─────────────────────────────────────────
	log := newLogger(slog.LevelInfo)
	slog.SetDefault(log)

	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("service_initializing",
		slog.String("version", constants.AppVersion),
		slog.String("mode", cfg.Mode()),
		slog.String("port", cfg.ServerPort),
	)

	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 2. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing_postgres_pool")
		pool.Close()
	}()

	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	db := pgstore.NewDB(pool)
	probes := []api.Probe{{
		Name:  "postgres",
		Check: func(ctx context.Context) error { return pgstore.Ping(ctx, pool) },
	}}

	// ── 3. Feed Cache ─────────────────────────────────────────────────────
	var backend cache.Backend = cache.NewMemoryBackend()
	if cfg.RedisURL != "" {
		rdb, err := cache.ConnectRedis(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer closeRedis(log, rdb)

		backend = cache.NewRedisBackend(rdb, cacheKeyPrefix)
		probes = append(probes, api.Probe{
			Name:  "redis",
			Check: func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		})
	} else {
		log.Info("feed_cache_in_process")
	}
	feedCache := cache.NewStore(backend)

	// ── 4. Object Storage ─────────────────────────────────────────────────
	s3, err := storage.NewS3(storage.Options{
		Endpoint:  cfg.S3Endpoint,
		Region:    cfg.S3Region,
		Bucket:    cfg.S3Bucket,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		PublicURL: cfg.S3PublicURL,
	})
	must(log, err, "configure object storage")

	var objects attachment.ObjectStore
	if s3 != nil {
		objects = s3
	} else {
		log.Warn("object_storage_disabled")
	}

	// ── 5. Domain Wiring ──────────────────────────────────────────────────
	tokens, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	var indexer search.Indexer = search.Nop{}
	if cfg.Debug {
		indexer = search.Logging{Logger: log}
	}

	renderer := markdown.NewRenderer()
	articleRepository := article.NewPostgresRepository()

	authService := auth.NewService(auth.NewUserRepository(pool), tokens)
	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		_, err := authService.EnsureAdmin(startupCtx, cfg.AdminEmail, "Administrator", cfg.AdminPassword)
		must(log, err, "provision administrator")
	}

	settingService := setting.NewService(setting.NewPostgresRepository(pool))
	textService := text.NewService(text.NewPostgresRepository(), db)
	attachmentService := attachment.NewService(attachment.NewPostgresRepository(), objects, db)
	categoryService := category.NewService(category.NewPostgresRepository(), db, article.NewCounter(articleRepository, db))

	articleService := article.NewService(article.Deps{
		Repo:       articleRepository,
		DB:         db,
		Categories: categoryService,
		Texts:      textService,
		Covers:     attachmentService,
		Indexer:    indexer,
		Renderer:   renderer,
	})
	feed := article.NewFeedBuilder(articleService, settingService, feedCache, cfg.Scheme())

	liveness, readiness := api.NewHealthHandlers(log, probes...)

	// ── 6. HTTP Server ────────────────────────────────────────────────────
	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, tokens, api.Handlers{
		Liveness:   liveness,
		Readiness:  readiness,
		Auth:       auth.NewHandler(authService),
		Setting:    setting.NewHandler(settingService),
		Category:   category.NewHandler(categoryService),
		Article:    article.NewHandler(articleService, feed),
		Attachment: attachment.NewHandler(attachmentService),
	})

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
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", constants.AppName))
}

func closeRedis(log *slog.Logger, client *redis.Client) {
	log.Info("closing_redis_client")
	if err := client.Close(); err != nil {
		log.Error("redis_close_error", slog.Any("error", err))
	}
}

// must logs a structured fatal error and terminates the process if err is
// non-nil. Only for startup wiring.
func must(log *slog.Logger, err error, step string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("step", step),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
