package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"pet-adoption-workflow/internal/app"
	"pet-adoption-workflow/internal/platform/config"
	"pet-adoption-workflow/internal/platform/logger"
)

// @title        Pet Adoption Workflow API
// @version      1.0
// @BasePath     /api
// @securityDefinitions.basic AdminBasic
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	lg := logger.New(cfg.Log)
	defer func() {
		if z, ok := lg.(*logger.ZapLogger); ok {
			_ = z.Sync()
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Serve(ctx, cfg, lg); err != nil {
		lg.Error("server error", map[string]any{"err": err})
		os.Exit(1)
	}
}
