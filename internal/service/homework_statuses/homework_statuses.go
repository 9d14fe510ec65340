package homework_statuses

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ilyadubrovsky/homework-bot/internal/config"
	"github.com/ilyadubrovsky/homework-bot/internal/service"
	"github.com/jellydator/ttlcache/v3"
	"github.com/rs/zerolog/log"
)

type Option func(s *svc)

// WithClock подменяет источник времени для курсора from_date
func WithClock(now func() time.Time) Option {
	return func(s *svc) {
		s.now = now
	}
}

type svc struct {
	practicumClient service.Practicum
	notifier        service.Notifier
	sentDiagnostics *ttlcache.Cache[string, struct{}]
	cfg             config.Poller
	now             func() time.Time

	mu       sync.Mutex
	stopFunc func()
}

func NewService(
	practicumClient service.Practicum,
	notifier service.Notifier,
	cfg config.Poller,
	opts ...Option,
) *svc {
	s := &svc{
		practicumClient: practicumClient,
		notifier:        notifier,
		cfg:             cfg,
		now:             time.Now,
	}

	if cfg.DuplicateDiagnosticsTTL > 0 {
		s.sentDiagnostics = ttlcache.New[string, struct{}](
			ttlcache.WithTTL[string, struct{}](cfg.DuplicateDiagnosticsTTL),
			ttlcache.WithDisableTouchOnHit[string, struct{}](),
		)
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start блокируется до вызова Stop или отмены ctx, первый цикл выполняется сразу
func (s *svc) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	s.mu.Lock()
	s.stopFunc = cancel
	s.mu.Unlock()

	log.Info().Msgf("start homework statuses poller, retry period %s", s.cfg.RetryPeriod)
	for {
		s.runCycle(ctx)

		timer := time.NewTimer(s.cfg.RetryPeriod)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			log.Info().Msg("homework statuses poller stopped")
			return
		}
	}
}

func (s *svc) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopFunc == nil {
		return errors.New("service is not started")
	}

	s.stopFunc()
	return nil
}

func (s *svc) runCycle(ctx context.Context) {
	err := s.checkStatuses(ctx)
	if err == nil {
		return
	}

	// запрос прерван остановкой сервиса, это не сбой
	if ctx.Err() != nil {
		log.Info().Msgf("cycle interrupted by stop: %v", err)
		return
	}

	message := fmt.Sprintf(config.ProgramFailure, err)
	log.Error().Msg(message)

	if s.isDuplicateDiagnostic(message) {
		log.Debug().Msg("same failure has already been reported, skip notification")
		return
	}

	s.notifier.Notify(message)
}

func (s *svc) checkStatuses(ctx context.Context) error {
	fromDate := s.now().Unix()

	ctx, cancel := context.WithTimeout(ctx, s.cfg.RequestTimeout)
	defer cancel()

	log.Debug().Int64("from_date", fromDate).Msg("requesting homework statuses")
	response, err := s.practicumClient.HomeworkStatuses(ctx, fromDate)
	if err != nil {
		return fmt.Errorf("practicumClient.HomeworkStatuses: %w", err)
	}

	homeworks, err := CheckResponse(response)
	if err != nil {
		return fmt.Errorf("CheckResponse: %w", err)
	}

	if len(homeworks) == 0 {
		log.Debug().Msg("no homework status changes")
		return nil
	}

	for _, homework := range homeworks {
		message, err := ParseStatus(homework)
		if err != nil {
			return fmt.Errorf("ParseStatus: %w", err)
		}

		s.notifier.Notify(message)
	}

	return nil
}

func (s *svc) isDuplicateDiagnostic(message string) bool {
	if s.sentDiagnostics == nil {
		return false
	}

	s.sentDiagnostics.DeleteExpired()
	if s.sentDiagnostics.Get(message) != nil {
		return true
	}

	s.sentDiagnostics.Set(message, struct{}{}, ttlcache.DefaultTTL)
	return false
}
