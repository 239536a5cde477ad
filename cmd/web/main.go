// Package main is the entrypoint for the blogfeed web server.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/blogfeed/blogfeed/internal/cache"
	"github.com/blogfeed/blogfeed/internal/config"
	"github.com/blogfeed/blogfeed/internal/handler"
	"github.com/blogfeed/blogfeed/internal/metrics"
	"github.com/blogfeed/blogfeed/internal/middleware"
	"github.com/blogfeed/blogfeed/internal/repository"
	"github.com/blogfeed/blogfeed/internal/server"
	"github.com/blogfeed/blogfeed/internal/service"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := initLogger(cfg)

	// The repository connects in the background, retrying every 5s until
	// the store is reachable. Requests made before then fail their store
	// operations with the normal runtime failure modes.
	repo, err := repository.New(ctx, cfg.MongoURL, cfg.MongoDatabase, logger)
	if err != nil {
		logger.Error("failed to create repository", slog.String("error", err.Error()))
		os.Exit(1)
	}

	cacheClient, err := cache.New(ctx, cfg.RedisURL)
	if err != nil {
		logger.Error("failed to connect to Redis", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("connected to Redis")

	sessions := cache.NewSessions(cacheClient, cfg.SessionTTL)
	svc := service.New(repo, repo, sessions, metrics.NewNoop(), logger)

	renderer, err := handler.NewRenderer()
	if err != nil {
		logger.Error("failed to parse templates", slog.String("error", err.Error()))
		os.Exit(1)
	}

	h := handler.New(svc, renderer, logger, cfg.SessionTTL)
	healthHandler := handler.NewHealthHandler(repo, cacheClient)

	r := handler.Router(h, healthHandler, middleware.SessionConfig{
		Logger:   logger,
		Sessions: sessions,
	}, logger)

	srv := server.New(
		r,
		cfg.Port,
		cfg.ReadTimeout,
		cfg.WriteTimeout,
		cfg.ShutdownTimeout,
		logger,
	)

	srv.OnShutdown("mongodb", repo.Close)
	srv.OnShutdown("redis", func(context.Context) error { return cacheClient.Close() })

	logger.Info("starting server",
		"port", cfg.Port,
		"database", cfg.MongoDatabase,
		"env", cfg.AppEnv,
	)

	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}

	var h slog.Handler
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)

	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
