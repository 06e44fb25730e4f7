package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/kalakaar-art/kalakaar-backend/api/routes"
	"github.com/kalakaar-art/kalakaar-backend/internal/artists"
	"github.com/kalakaar-art/kalakaar-backend/internal/artworks"
	"github.com/kalakaar-art/kalakaar-backend/internal/badges"
	"github.com/kalakaar-art/kalakaar-backend/pkg/config"
	"github.com/kalakaar-art/kalakaar-backend/pkg/db"
	"github.com/kalakaar-art/kalakaar-backend/pkg/logger"
	"github.com/kalakaar-art/kalakaar-backend/pkg/migrate"
	"github.com/kalakaar-art/kalakaar-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	badgeRepo := badges.NewRepository(dbClient.DB())
	badgeService, err := badges.NewService(badgeRepo, redisClient, cfg.Badges, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create badge service", err)
		os.Exit(1)
	}

	artistService, err := artists.NewService(badgeRepo, artworks.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create artist service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.RouterParams{
			Config:  cfg,
			Logger:  logg,
			DB:      dbClient,
			Redis:   redisClient,
			Badges:  badgeService,
			Artists: artistService,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
