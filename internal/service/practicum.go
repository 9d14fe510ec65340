package service

import (
	"context"

	"github.com/ilyadubrovsky/homework-bot/pkg/practicum"
)

type Practicum interface {
	HomeworkStatuses(ctx context.Context, fromDate int64) (practicum.Response, error)
}
