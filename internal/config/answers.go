package config

const (
	StatusChanged  = `Изменился статус проверки работы "%s". %s`
	ProgramFailure = "Сбой в работе программы: %v"
)
