package config_test

import (
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/genesys-dice/internal/config"
	"github.com/KirkDiggler/genesys-dice/internal/errors"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 50051, cfg.GRPCPort)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.False(t, cfg.ShowDamageOnFailure)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("GENESYS_DICE_GRPC_PORT", "6000")
	t.Setenv("GENESYS_DICE_SESSION_TTL", "15m")
	t.Setenv("GENESYS_DICE_SHOW_DAMAGE_ON_FAILURE", "true")
	t.Setenv("GENESYS_DICE_LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 6000, cfg.GRPCPort)
	assert.Equal(t, 15*time.Minute, cfg.SessionTTL)
	assert.True(t, cfg.ShowDamageOnFailure)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestLoad_Errors(t *testing.T) {
	testCases := []struct {
		name  string
		key   string
		value string
	}{
		{"unparseable port", "GENESYS_DICE_GRPC_PORT", "not-an-int"},
		{"port out of range", "GENESYS_DICE_GRPC_PORT", "70000"},
		{"negative ttl", "GENESYS_DICE_SESSION_TTL", "-1m"},
		{"unknown log level", "GENESYS_DICE_LOG_LEVEL", "loud"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)

			_, err := config.Load()
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
		})
	}
}

func TestSavedRollsFile(t *testing.T) {
	cfg := &config.Config{SavedRollsPath: "/data"}

	assert.Equal(t, filepath.Join("/data", "genesys-dice-saved-rolls.yaml"),
		cfg.SavedRollsFile(func(string) bool { return true }))
	assert.Equal(t, "/data", cfg.SavedRollsFile(func(string) bool { return false }))
}
