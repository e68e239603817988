package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/joeshaw/envdecode"
)

// Config holds defaults read from the environment. Flags override them.
type Config struct {
	// Format of the input document, guessed from the file name when empty. ENV: EMBEDVAL_FORMAT
	Format string `env:"EMBEDVAL_FORMAT"`
	// LogLevel of records written to stderr. ENV: EMBEDVAL_LOG_LEVEL
	LogLevel string `env:"EMBEDVAL_LOG_LEVEL,default=info"`
	// Strict rejects unknown keys. ENV: EMBEDVAL_STRICT
	Strict bool `env:"EMBEDVAL_STRICT,default=false"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("failed to read environment: %w", err)
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return cfg, nil
}

func (c Config) level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}

	return level, nil
}
