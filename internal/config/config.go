package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Practicum Practicum
	Telegram  Telegram
	Poller    Poller
}

type Practicum struct {
	Token    string `env:"PRACTICUM_TOKEN"`
	Endpoint string `env:"PRACTICUM_ENDPOINT" env-default:"https://practicum.yandex.ru/api/user_api/homework_statuses/"`
}

type Telegram struct {
	BotToken string `env:"TELEGRAM_TOKEN"`
	// ChatID числовой идентификатор или @username канала
	ChatID string `env:"TELEGRAM_CHAT_ID"`
	APIURL string `env:"TELEGRAM_API_URL" env-default:"https://api.telegram.org"`
}

type Poller struct {
	RetryPeriod    time.Duration `env:"RETRY_PERIOD" env-default:"10m"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" env-default:"15s"`
	// DuplicateDiagnosticsTTL 0 отключает подавление повторных сообщений об ошибках
	DuplicateDiagnosticsTTL time.Duration `env:"DUPLICATE_DIAGNOSTICS_TTL" env-default:"0s"`
}

type Logging struct {
	File  string `env:"LOG_FILE" env-default:"main.log"`
	Level string `env:"LOG_LEVEL" env-default:"debug"`
}

// ConfigError конфигурация непригодна для запуска, повторять попытку бессмысленно
type ConfigError struct {
	Missing []string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid configuration: %v", e.Err)
	}

	return fmt.Sprintf("missing required environment variables: %s", strings.Join(e.Missing, ", "))
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, &ConfigError{Err: fmt.Errorf("cleanenv.ReadEnv: %w", err)}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func NewLoggingConfig() (*Logging, error) {
	cfg := &Logging{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, &ConfigError{Err: fmt.Errorf("cleanenv.ReadEnv: %w", err)}
	}

	return cfg, nil
}

func (c *Config) validate() error {
	var missing []string
	for _, secret := range []struct {
		name  string
		value string
	}{
		{"PRACTICUM_TOKEN", c.Practicum.Token},
		{"TELEGRAM_TOKEN", c.Telegram.BotToken},
		{"TELEGRAM_CHAT_ID", c.Telegram.ChatID},
	} {
		if strings.TrimSpace(secret.value) == "" {
			missing = append(missing, secret.name)
		}
	}

	if len(missing) != 0 {
		return &ConfigError{Missing: missing}
	}

	if c.Poller.RetryPeriod <= 0 {
		return &ConfigError{Err: fmt.Errorf("RETRY_PERIOD must be positive, got %s", c.Poller.RetryPeriod)}
	}

	if c.Poller.RequestTimeout <= 0 {
		return &ConfigError{Err: fmt.Errorf("REQUEST_TIMEOUT must be positive, got %s", c.Poller.RequestTimeout)}
	}

	return nil
}
