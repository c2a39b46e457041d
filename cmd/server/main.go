// Package main is the entry point for the movies API server.
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"movies-api/internal/app"
	"movies-api/internal/config"
	"movies-api/internal/server"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Logging.Level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	a, err := app.New(cfg, logger, prometheus.DefaultRegisterer)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Error("Failed to close database", "error", err)
		}
	}()

	// A failed initial load is not fatal: /movies answers 503 until a reload
	// succeeds. The store has already logged the failure.
	_ = a.LoadCatalog(ctx)

	if watcher := a.Watcher(); watcher != nil {
		go func() {
			if err := watcher.Run(ctx); err != nil {
				logger.Error("Catalog watcher stopped", "error", err)
			}
		}()
	}

	if refresher := a.Refresher(); refresher != nil {
		go refresher.Run(ctx)
	}

	deps := server.Dependencies{
		Config:       cfg,
		QueryService: a.QueryService,
		Catalog:      a.Store,
		SourceName:   cfg.Catalog.Source,
	}
	if a.DB != nil {
		deps.DB = a.DB.DB
	}

	e := server.NewRouter(ctx, deps)
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting server", "address", cfg.Server.Address(), "environment", cfg.Server.Environment)
		if err := e.Start(cfg.Server.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logger.Info("Server stopped")
	return nil
}
