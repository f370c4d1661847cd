package main

// Run database migrations:
//   go run ./cmd/migrate

import (
	"context"
	"log/slog"
	"os"

	"lexwatch-backend/internal/shared/config"
	"lexwatch-backend/internal/shared/logging"
	"lexwatch-backend/internal/shared/storage/db"
)

func main() {
	logging.Init()
	cfg := config.Load()
	ctx := context.Background()

	opts := db.OptionsFromEnv(db.DefaultMigrateOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		slog.Error("[Migrate] failed to connect database", "error", err)
		os.Exit(1)
	}
	defer sqlDB.Close()

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		slog.Error("[Migrate] failed to run migrations", "error", err)
		os.Exit(1)
	}
}
