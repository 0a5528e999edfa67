package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/EpicMandM/calendar-booking/internal/app"
	"github.com/EpicMandM/calendar-booking/internal/config"
	"github.com/EpicMandM/calendar-booking/internal/logger"
	"github.com/EpicMandM/calendar-booking/internal/service"
)

func main() {
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, log); err != nil {
		log.Error("Application error", logger.Error(err))
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, log *logger.Logger) error {
	configPath := getEnvOrDefault("CONFIG_PATH", "./data/booking.toml")
	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		log.Info("Feature config not found, using defaults", logger.F("path", configPath))
	}
	featureCfg, err := service.LoadFeatureConfig(configPath)
	if err != nil {
		log.Error("Failed to load feature config", logger.Error(err), logger.F("path", configPath))
		return err
	}

	envPath := getEnvOrDefault("ENV_FILE", ".env")
	infraCfg, err := config.LoadWithFile(envPath)
	if err != nil {
		log.Error("Failed to load infrastructure config", logger.Error(err), logger.F("path", envPath))
		return err
	}

	application := app.New(infraCfg, featureCfg, log)
	if err := application.Initialize(nil); err != nil {
		return err
	}

	log.Info("Starting server", logger.Action("startup"), logger.F("PORT", infraCfg.Port))
	return application.ListenAndServe(ctx)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
