package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fisiohome_backend/internal/adapters/storage"
	"fisiohome_backend/internal/auth"
	"fisiohome_backend/internal/content"
	apphttp "fisiohome_backend/internal/http"
	"fisiohome_backend/internal/http/router"
	"fisiohome_backend/internal/leads"
	"fisiohome_backend/internal/quiz"
	"fisiohome_backend/platform/config"
	"fisiohome_backend/platform/db"
	"fisiohome_backend/platform/logger"
	"fisiohome_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure
	// ========================================================================

	if err := withRetry(ctx, log, "database migrations", 5, 2*time.Second, func() error {
		return db.RunMigrations(ctx, cfg, "migrations")
	}); err != nil {
		log.Error("failed to run database migrations", "error", err)
		panic("failed to run database migrations: " + err.Error())
	}
	log.Info("database migrations complete")

	var pool *pgxpool.Pool
	if err := withRetry(ctx, log, "database connection", 5, 2*time.Second, func() error {
		p, err := db.NewPool(ctx, cfg)
		if err != nil {
			return err
		}
		pool = p
		return nil
	}); err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()
	log.Info("database connection established")

	val := validator.New()

	// Object storage for the CMS media library. Optional: without it the
	// image routes are not mounted and the rest of the API works as-is.
	var imageStore storage.ImageStore
	if cfg.IsMinIOEnabled() {
		store, err := storage.NewMinIOService(cfg)
		if err != nil {
			log.Error("failed to initialize storage service", "error", err)
			panic("failed to initialize storage service: " + err.Error())
		}
		if err := withRetry(ctx, log, "ensure cms-images bucket", 5, 2*time.Second, func() error {
			return store.EnsureBucket(ctx)
		}); err != nil {
			log.Error("failed to ensure storage bucket exists", "error", err, "bucket", cfg.GetMinioBucketCMSImages())
			panic("failed to ensure storage bucket exists: " + err.Error())
		}
		imageStore = store
		log.Info("storage service initialized", "bucket", cfg.GetMinioBucketCMSImages())
	} else {
		log.Warn("MinIO not configured; CMS image endpoints disabled")
	}

	// ========================================================================
	// Domain modules (composition root)
	// ========================================================================

	authModule := auth.NewModule(pool, cfg, val, log)
	leadsModule := leads.NewModule(pool, val, log)
	quizModule := quiz.NewModule(leadsModule.Service(), val, log)
	contentModule := content.NewModule(pool, imageStore, val, log)

	// ========================================================================
	// HTTP layer
	// ========================================================================

	app := &apphttp.App{
		Config: cfg,
		Logger: log,
		Health: db.NewPoolAdapter(pool),
		Modules: []apphttp.Module{
			authModule,
			leadsModule,
			quizModule,
			contentModule,
		},
	}

	engine := router.New(app)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("graceful shutdown failed", "error", err)
		}
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return errors.New(name + ": " + lastErr.Error())
}
