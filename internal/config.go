package internal

import (
	"fmt"
	"time"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel        string        `env:"LOG_LEVEL,default=INFO" validate:"oneof=DEBUG INFO WARN ERROR debug info warn error"`
	GroupID         string        `env:"GROUP_ID,default=datashare" validate:"required"`
	GroupSize       int           `env:"GROUP_SIZE,default=3" validate:"min=1,max=64"`
	PauseTimeout    time.Duration `env:"PAUSE_TIMEOUT,default=1s" validate:"gt=0"`
	InboxSize       int           `env:"INBOX_SIZE,default=1024" validate:"min=1"`
	RestartInterval time.Duration `env:"RESTART_INTERVAL,default=200ms" validate:"gt=0"`
	HistoryLimit    *int          `env:"HISTORY_LIMIT" validate:"omitempty,min=1"`
}

// LoadConfig reads an optional .env file, then the environment.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
