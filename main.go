package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"bikeshare-explorer/config"
	"bikeshare-explorer/observability"
	"bikeshare-explorer/services"
	"bikeshare-explorer/storage"
	"bikeshare-explorer/utils"
)

func main() {
	// ================== Bootstrap ====================
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cannot load configuration: %v\n", err)
		os.Exit(1)
	}
	logger := utils.NewLogger(cfg.Logging.Level, cfg.Logging.Format, os.Stderr)

	registry := storage.NewRegistry(cfg.DataDir, cfg.Cities)
	logger.Info("US bikeshare explorer", "data_dir", cfg.DataDir, "cities", registry.Cities())

	// =============== Pipeline ===================================
	loader := services.NewRecordLoader(logger, services.SourceOpener(storage.OpenOptions{
		ConnectRetries: cfg.ConnectRetries,
		Logger:         logger,
	}))
	pipeline := services.NewPipeline(registry, loader, services.NewStatsEngine(logger), logger)

	// ========= Interactive loop ===========================
	prompter := services.NewPrompter(os.Stdin, os.Stdout, services.NewFilterValidator(registry), registry.Cities())
	session := services.NewSession(pipeline, prompter, os.Stdout, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runErr := session.Run(ctx)

	if cfg.MetricsFile != "" {
		if err := observability.WriteTextfile(cfg.MetricsFile); err != nil {
			logger.Error("Failed to write metrics", "path", cfg.MetricsFile, "error", err)
		}
	}

	if runErr != nil && ctx.Err() == nil {
		logger.Error("Session ended with error", "error", runErr)
		os.Exit(1)
	}
}
