// Package config loads settings from the environment with sane defaults.
package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	DBPath   string `env:"QUIZZES_DB" env-default:"quizzes.db" env-description:"path to the sqlite database file"`
	LogLevel string `env:"QUIZZES_LOG_LEVEL" env-default:"info" env-description:"debug, info, warn or error"`
	Memory   bool   `env:"QUIZZES_MEMORY" env-default:"false" env-description:"keep quizzes in memory, nothing persisted"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	return &cfg, nil
}
