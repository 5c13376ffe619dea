// Command server runs the twitter-clone HTTP API.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/HarminderDhillon/twitter-clone/internal/cache"
	"github.com/HarminderDhillon/twitter-clone/internal/config"
	"github.com/HarminderDhillon/twitter-clone/internal/database"
	"github.com/HarminderDhillon/twitter-clone/internal/observability"
	"github.com/HarminderDhillon/twitter-clone/internal/server"
)

// @title Twitter Clone API
// @version 1.0
// @description Social network backend: users, posts, follows, timelines.
// @BasePath /
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		observability.Logger.Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	shutdownTracing, err := observability.InitTracing(observability.TracingConfig{
		ServiceName:  "twitter-clone-api",
		Environment:  cfg.Env,
		Enabled:      cfg.TracingEnabled,
		Exporter:     cfg.TracingExport,
		OTLPEndpoint: cfg.OTLPEndpoint,
		SamplerRatio: cfg.TracingSample,
	})
	if err != nil {
		observability.Logger.Error("init tracing", slog.Any("error", err))
		os.Exit(1)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		observability.Logger.Error("connect database", slog.Any("error", err))
		os.Exit(1)
	}

	cache.InitRedis(cfg.RedisURL)

	srv := server.New(cfg, db, cache.GetClient())
	srv.Hub.Start(context.Background())

	go func() {
		if err := srv.App.Listen(":" + cfg.Port); err != nil {
			observability.Logger.Error("server stopped", slog.Any("error", err))
			os.Exit(1)
		}
	}()
	observability.Logger.Info("server started", slog.String("port", cfg.Port))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	observability.Logger.Info("shutting down")
	srv.Hub.Stop()
	if err := srv.App.ShutdownWithTimeout(10 * time.Second); err != nil {
		observability.Logger.Error("shutdown", slog.Any("error", err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdownTracing(ctx); err != nil {
		observability.Logger.Error("shutdown tracing", slog.Any("error", err))
	}
}
