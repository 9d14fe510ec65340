package main

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyadubrovsky/homework-bot/internal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// initLogger пишет в файл (дописывая) и в stderr, файл нужно закрыть при выходе
func initLogger(cfg *config.Logging) (*os.File, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("zerolog.ParseLevel: %w", err)
	}

	logFile, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o640)
	if err != nil {
		return nil, fmt.Errorf("os.OpenFile: %w", err)
	}

	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(level)

	log.Logger = zerolog.New(zerolog.MultiLevelWriter(
		logFile,
		zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339},
	)).With().Timestamp().Logger()

	return logFile, nil
}
