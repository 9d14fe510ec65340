package homework_statuses

import (
	"fmt"

	"github.com/ilyadubrovsky/homework-bot/internal/config"
	"github.com/ilyadubrovsky/homework-bot/internal/domain"
	ierrors "github.com/ilyadubrovsky/homework-bot/internal/errors"
	"github.com/ilyadubrovsky/homework-bot/pkg/practicum"
)

const (
	keyHomeworks    = "homeworks"
	keyStatus       = "status"
	keyHomeworkName = "homework_name"
)

// CheckResponse проверяет, что в ответе есть список домашних работ, сами записи не проверяются
func CheckResponse(response practicum.Response) ([]any, error) {
	raw, ok := response[keyHomeworks]
	if !ok {
		return nil, &ierrors.SchemaError{Reason: "no homeworks key in response"}
	}

	homeworks, ok := raw.([]any)
	if !ok {
		return nil, &ierrors.SchemaError{Reason: fmt.Sprintf("homeworks is %T, list expected", raw)}
	}

	return homeworks, nil
}

func ParseStatus(homework any) (string, error) {
	change, err := parseStatusChange(homework)
	if err != nil {
		return "", err
	}

	// наличие вердикта уже проверено в parseStatusChange
	verdict, _ := change.Status.Verdict()

	return fmt.Sprintf(config.StatusChanged, change.HomeworkName, verdict), nil
}

func parseStatusChange(homework any) (*domain.StatusChange, error) {
	fields, ok := homework.(map[string]any)
	if !ok {
		return nil, &ierrors.FieldError{Reason: fmt.Sprintf("homework is %T, object expected", homework)}
	}

	rawStatus, ok := fields[keyStatus]
	if !ok {
		return nil, &ierrors.FieldError{Field: keyStatus, Reason: "missing"}
	}

	status, ok := rawStatus.(string)
	if !ok {
		return nil, &ierrors.FieldError{Field: keyStatus, Reason: fmt.Sprintf("undocumented status %v", rawStatus)}
	}

	homeworkStatus := domain.HomeworkStatus(status)
	if _, ok = homeworkStatus.Verdict(); !ok {
		return nil, &ierrors.FieldError{Field: keyStatus, Reason: fmt.Sprintf("undocumented status %q", status)}
	}

	rawName, ok := fields[keyHomeworkName]
	if !ok {
		return nil, &ierrors.FieldError{Field: keyHomeworkName, Reason: "missing"}
	}

	name, ok := rawName.(string)
	if !ok {
		return nil, &ierrors.FieldError{Field: keyHomeworkName, Reason: fmt.Sprintf("homework_name is %T, string expected", rawName)}
	}

	return &domain.StatusChange{
		HomeworkName: name,
		Status:       homeworkStatus,
	}, nil
}
