package main

import (
	"log/slog"
	"os"

	"lexwatch-backend/internal/bootstrap"
	"lexwatch-backend/internal/shared/config"
	"lexwatch-backend/internal/shared/logging"
	"lexwatch-backend/internal/shared/server"
)

func main() {
	logging.Init()
	cfg := config.Load()

	app, err := bootstrap.Build(cfg)
	if err != nil {
		slog.Error("[API] bootstrap failed", "error", err)
		os.Exit(1)
	}

	addr := server.Addr(cfg.Port)
	slog.Info("[API] starting server", "addr", addr, "env", cfg.Env, "provider", cfg.LLMProvider)

	if err := app.Router.Run(addr); err != nil {
		slog.Error("[API] server error", "error", err)
		os.Exit(1)
	}
}
