package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ilyadubrovsky/homework-bot/internal/config"
	"github.com/ilyadubrovsky/homework-bot/internal/service/homework_statuses"
	"github.com/ilyadubrovsky/homework-bot/internal/service/telegram"
	"github.com/ilyadubrovsky/homework-bot/pkg/practicum"
	"github.com/rs/zerolog/log"
)

type poller interface {
	Start(ctx context.Context)
}

type App struct {
	homeworkStatusesSvc poller
}

func NewApp(cfg *config.Config) (*App, error) {
	log.Info().Msg("telegram notifier initializing")
	telegramSvc, err := telegram.NewService(cfg.Telegram)
	if err != nil {
		return nil, fmt.Errorf("telegram.NewService: %w", err)
	}

	practicumClient := practicum.NewClient(
		cfg.Practicum.Endpoint,
		cfg.Practicum.Token,
		practicum.WithHTTPClient(&http.Client{Timeout: cfg.Poller.RequestTimeout}),
	)

	return &App{
		homeworkStatusesSvc: homework_statuses.NewService(practicumClient, telegramSvc, cfg.Poller),
	}, nil
}

// Run блокируется до отмены ctx
func (a *App) Run(ctx context.Context) error {
	log.Info().Msg("app launching")

	a.homeworkStatusesSvc.Start(ctx)

	log.Info().Msg("app stopped")
	return nil
}
