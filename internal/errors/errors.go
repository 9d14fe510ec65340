package errors

import "fmt"

// SchemaError ответ API не содержит ожидаемой структуры
type SchemaError struct {
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("unexpected response schema: %s", e.Reason)
}

// FieldError запись о домашней работе содержит некорректное поле
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid homework: %s", e.Reason)
	}

	return fmt.Sprintf("invalid homework field %q: %s", e.Field, e.Reason)
}
