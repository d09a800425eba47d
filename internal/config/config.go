package config

import (
	"log/slog"

	"github.com/caarlos0/env/v10"
)

// Config holds the env-backed runtime settings. The required inputs
// (source file, output directory, break pages) come from CLI flags instead.
type Config struct {
	LogFormat        string `env:"LOG_FORMAT" envDefault:"text"`
	LogLevel         string `env:"LOG_LEVEL" envDefault:"info"`
	StrictValidation bool   `env:"PDF_STRICT_VALIDATION" envDefault:"false"`
}

// Load parses the configuration from environment variables.
func Load() (Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// SlogLevel maps the configured level name onto a slog.Level. Unknown
// values fall back to Info.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
