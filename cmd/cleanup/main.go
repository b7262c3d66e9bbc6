package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"

	cartsvc "github.com/medinathreads/medina-backend/internal/cart"
	"github.com/medinathreads/medina-backend/pkg/config"
	"github.com/medinathreads/medina-backend/pkg/db"
	"github.com/medinathreads/medina-backend/pkg/logger"
)

// defaultMaxAge is how long an untouched cart row survives before the
// sweep removes it.
const defaultMaxAge = 7 * 24 * time.Hour

func main() {
	logg := logger.New(logger.Options{ServiceName: "cleanup"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	maxAge := flag.Duration("max-age", defaultMaxAge, "delete cart rows older than this")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "cleanup",
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

	cartService, err := cartsvc.NewService(cartsvc.NewRepository(dbClient.DB()), dbClient)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":     cfg.App.Env,
		"max_age": maxAge.String(),
	})
	logg.Info(ctx, "cart cleanup started")

	result, err := cartService.Cleanup(ctx, *maxAge)
	if err != nil {
		logg.Error(ctx, "cart cleanup failed", err)
		os.Exit(1)
	}

	ctx = logg.WithFields(ctx, map[string]any{
		"orphaned_removed": result.OrphanedRemoved,
		"expired_removed":  result.ExpiredRemoved,
	})
	logg.Info(ctx, "cart cleanup finished")
}
