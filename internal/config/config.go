// Package config loads the genesys-dice settings from the environment
package config

import (
	"log/slog"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/genesys-dice/internal/errors"
	savedroll "github.com/KirkDiggler/genesys-dice/internal/repositories/saved_roll"
)

// Config holds settings shared by the server and the local commands.
// Command-line flags override these values.
type Config struct {
	GRPCPort int `env:"GENESYS_DICE_GRPC_PORT" envDefault:"50051"`

	RedisAddr     string `env:"GENESYS_DICE_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"GENESYS_DICE_REDIS_PASSWORD"`
	RedisDB       int    `env:"GENESYS_DICE_REDIS_DB" envDefault:"0"`

	SavedRollsPath string `env:"GENESYS_DICE_SAVED_ROLLS_PATH" envDefault:"genesys-dice-saved-rolls.yaml"`

	SessionTTL time.Duration `env:"GENESYS_DICE_SESSION_TTL" envDefault:"2h"`

	// ShowDamageOnFailure renders attack damage even when the attack missed
	ShowDamageOnFailure bool `env:"GENESYS_DICE_SHOW_DAMAGE_ON_FAILURE" envDefault:"false"`

	LogLevel string `env:"GENESYS_DICE_LOG_LEVEL" envDefault:"info"`
}

// Load parses the environment into a Config and validates it
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "parse env")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and required values
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("GRPCPort", c.GRPCPort, 1, 65535, vb)
	errors.ValidateRequired("RedisAddr", c.RedisAddr, vb)
	errors.ValidateRequired("SavedRollsPath", c.SavedRollsPath, vb)
	if c.SessionTTL <= 0 {
		vb.InvalidField("SessionTTL", "must be positive")
	}
	errors.ValidateEnum("LogLevel", c.LogLevel, []string{"debug", "info", "warn", "error"}, vb)

	return vb.Build()
}

// SavedRollsFile resolves SavedRollsPath, treating a directory as the
// location of the default file name
func (c *Config) SavedRollsFile(isDir func(string) bool) string {
	if isDir != nil && isDir(c.SavedRollsPath) {
		return filepath.Join(c.SavedRollsPath, savedroll.DefaultFileName)
	}
	return c.SavedRollsPath
}

// SlogLevel maps LogLevel onto slog
func (c *Config) SlogLevel() slog.Level {
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
