package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/ilyadubrovsky/homework-bot/internal/app"
	"github.com/ilyadubrovsky/homework-bot/internal/config"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := run(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Error().Msgf("godotenv.Load: %v", err)
		return fmt.Errorf("godotenv.Load: %w", err)
	}

	loggingCfg, err := config.NewLoggingConfig()
	if err != nil {
		log.Error().Msgf("config.NewLoggingConfig: %v", err)
		return fmt.Errorf("config.NewLoggingConfig: %w", err)
	}

	logFile, err := initLogger(loggingCfg)
	if err != nil {
		log.Error().Msgf("initLogger: %v", err)
		return fmt.Errorf("initLogger: %w", err)
	}
	defer logFile.Close()

	cfg, err := config.NewConfig()
	if err != nil {
		// без обязательных переменных окружения бот не запускается
		log.WithLevel(zerolog.FatalLevel).Msgf("config.NewConfig: %v, program is stopped", err)
		return fmt.Errorf("config.NewConfig: %w", err)
	}

	a, err := app.NewApp(cfg)
	if err != nil {
		log.Error().Msgf("app.NewApp: %v", err)
		return fmt.Errorf("app.NewApp: %w", err)
	}

	return a.Run(ctx)
}
