package homework_statuses

import (
	"testing"

	ierrors "github.com/ilyadubrovsky/homework-bot/internal/errors"
	"github.com/ilyadubrovsky/homework-bot/pkg/practicum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckResponse(t *testing.T) {
	homeworks := []any{
		map[string]any{"status": "approved", "homework_name": "hw1"},
		"garbage is checked later",
	}

	got, err := CheckResponse(practicum.Response{"homeworks": homeworks, "current_date": 1700000000.0})
	require.NoError(t, err)
	assert.Equal(t, homeworks, got)
}

func TestCheckResponse_EmptyList(t *testing.T) {
	got, err := CheckResponse(practicum.Response{"homeworks": []any{}})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCheckResponse_SchemaError(t *testing.T) {
	tests := map[string]practicum.Response{
		"no homeworks key": {"current_date": 1700000000.0},
		"empty response":   {},
		"nil response":     nil,
		"single mapping":   {"homeworks": map[string]any{"status": "approved", "homework_name": "hw1"}},
		"string":           {"homeworks": "hw1"},
		"null":             {"homeworks": nil},
		"number":           {"homeworks": 1.0},
	}

	for name, response := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := CheckResponse(response)
			assert.Nil(t, got)

			var schemaErr *ierrors.SchemaError
			require.ErrorAs(t, err, &schemaErr)
		})
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		status   string
		expected string
	}{
		{"approved", `Изменился статус проверки работы "hw1". Работа проверена: ревьюеру всё понравилось. Ура!`},
		{"reviewing", `Изменился статус проверки работы "hw1". Работа взята на проверку ревьюером.`},
		{"rejected", `Изменился статус проверки работы "hw1". Работа проверена: у ревьюера есть замечания.`},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			got, err := ParseStatus(map[string]any{
				"status":           tt.status,
				"homework_name":    "hw1",
				"reviewer_comment": "ignored",
			})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseStatus_Idempotent(t *testing.T) {
	homework := map[string]any{"status": "rejected", "homework_name": "user__sprint_7.zip"}

	first, err := ParseStatus(homework)
	require.NoError(t, err)
	second, err := ParseStatus(homework)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, map[string]any{"status": "rejected", "homework_name": "user__sprint_7.zip"}, homework)
}

func TestParseStatus_FieldError(t *testing.T) {
	tests := []struct {
		name     string
		homework any
		field    string
	}{
		{"not an object", []any{"approved"}, ""},
		{"nil", nil, ""},
		{"missing status", map[string]any{"homework_name": "hw1"}, "status"},
		{"undocumented status", map[string]any{"status": "unknown", "homework_name": "hw1"}, "status"},
		{"empty status", map[string]any{"status": "", "homework_name": "hw1"}, "status"},
		{"status is not a string", map[string]any{"status": 1.0, "homework_name": "hw1"}, "status"},
		{"missing homework_name", map[string]any{"status": "approved"}, "homework_name"},
		{"homework_name is not a string", map[string]any{"status": "approved", "homework_name": nil}, "homework_name"},
		{"status checked before name", map[string]any{"status": "unknown"}, "status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStatus(tt.homework)
			assert.Empty(t, got)

			var fieldErr *ierrors.FieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, tt.field, fieldErr.Field)
		})
	}
}
