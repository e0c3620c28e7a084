package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/pageza/recipebox/config"
	"github.com/pageza/recipebox/internal/app"
	"github.com/pageza/recipebox/internal/database"
	"github.com/pageza/recipebox/internal/logging"
	"github.com/pageza/recipebox/internal/server"
	"github.com/pageza/recipebox/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}
	logger := logging.NewLogger(cfg.Env, cfg.LogLevel)
	ctx := context.Background()

	store, err := database.OpenStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("Failed to open %s store: %v", cfg.StoreBackend, err)
	}
	defer store.Close()

	opts := service.ConfigOptions(cfg)
	users := service.NewUserService(store, opts...)
	a := app.New(
		service.NewRecipeService(store, opts...),
		users,
		service.NewFavoriteService(store, users),
		logger,
	)
	if err := a.Load(ctx); err != nil {
		logger.Fatalf("Failed to load recipes: %v", err)
	}

	// Rate limiting is optional; continue without it if Redis is not available.
	var redisClient *redis.Client
	if client, err := database.NewRedisClient(ctx, cfg, logger); err != nil {
		logger.WithError(err).Warn("failed to connect to redis for rate limiting")
	} else {
		redisClient = client
		defer redisClient.Close()
	}

	srv := server.New(cfg, a, logger, redisClient)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			logger.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		logger.WithField("signal", sig.String()).Info("received signal")
	}

	logger.Info("shutting down server")
	if err := srv.Shutdown(context.Background()); err != nil {
		logger.Fatalf("Server shutdown error: %v", err)
	}
	logger.Info("server stopped")
}
