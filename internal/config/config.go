package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds defaults for the CLI. Flags override these values.
type Config struct {
	Env            string        `env:"PASSGEN_ENV" envDefault:"development"`
	LogLevel       slog.Level    `env:"PASSGEN_LOG_LEVEL" envDefault:"warn"`
	DefaultLength  int           `env:"PASSGEN_DEFAULT_LENGTH" envDefault:"16"`
	DefaultCount   int           `env:"PASSGEN_DEFAULT_COUNT" envDefault:"1"`
	Clipboard      bool          `env:"PASSGEN_CLIPBOARD" envDefault:"true"`
	RevealInterval time.Duration `env:"PASSGEN_REVEAL_INTERVAL" envDefault:"100ms"`
	MatrixFrame    time.Duration `env:"PASSGEN_MATRIX_FRAME" envDefault:"50ms"`
	NoColor        bool          `env:"PASSGEN_NO_COLOR" envDefault:"false"`
}

// Load parses the environment into a Config. Call godotenv first if a .env
// file should be honored.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}

	if cfg.DefaultLength < 1 {
		slog.Warn("PASSGEN_DEFAULT_LENGTH must be positive, using 16", "value", cfg.DefaultLength)
		cfg.DefaultLength = 16
	}
	if cfg.DefaultCount < 1 {
		slog.Warn("PASSGEN_DEFAULT_COUNT must be positive, using 1", "value", cfg.DefaultCount)
		cfg.DefaultCount = 1
	}

	return cfg, nil
}
