package config

import (
	"strings"
	"testing"

	"github.com/KirkDiggler/dungeon-engine/internal/domain/character"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "dungeon.db", cfg.Storage.SQLitePath)
	assert.Equal(t, int64(0), cfg.Game.Seed)
	assert.Equal(t, character.DefaultProgression(), cfg.Progression())
	assert.Equal(t, 10, cfg.ForestLevels().Max)
	assert.Equal(t, 80, cfg.Game.ForestEncounterPct)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DUNGEON_STORAGE", "redis")
	t.Setenv("REDIS_ADDR", "cache:6380")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("DUNGEON_SEED", "1234")
	t.Setenv("DUNGEON_DEFEAT_HEALTH", "5")
	t.Setenv("DUNGEON_FOREST_LEVEL_CAP", "20")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, DriverRedis, cfg.Storage.Driver)
	assert.Equal(t, int64(1234), cfg.Game.Seed)
	assert.Equal(t, 5, cfg.Progression().DefeatHealth)
	assert.Equal(t, 20, cfg.ForestLevels().Max)

	opts, err := cfg.RedisOptions()
	require.NoError(t, err)
	assert.Equal(t, "cache:6380", opts.Addr)
	assert.Equal(t, 3, opts.DB)
}

func TestRedisURLWins(t *testing.T) {
	t.Setenv("REDIS_URL", "redis://:secret@example.com:6390/2")

	cfg, err := Load()
	require.NoError(t, err)

	opts, err := cfg.RedisOptions()
	require.NoError(t, err)
	assert.Equal(t, "example.com:6390", opts.Addr)
	assert.Equal(t, "secret", opts.Password)
	assert.Equal(t, 2, opts.DB)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		want  string
	}{
		{"unknown driver", "DUNGEON_STORAGE", "postgres", "unknown storage driver"},
		{"not a number", "DUNGEON_XP_BASE", "lots", "parse env:"},
		{"growth below 100", "DUNGEON_XP_GROWTH_PERCENT", "90", "invalid progression rules"},
		{"defeat health zero", "DUNGEON_DEFEAT_HEALTH", "0", "invalid progression rules"},
		{"level cap zero", "DUNGEON_FOREST_LEVEL_CAP", "0", "invalid forest level cap"},
		{"encounter rate above 100", "DUNGEON_FOREST_ENCOUNTER_RATE", "150", "ENCOUNTER_RATE"},
		{"log level", "DUNGEON_LOG_LEVEL", "chatty", "DUNGEON_LOG_LEVEL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()

			require.Error(t, err)
			assert.True(t, strings.Contains(err.Error(), tt.want), "got %v", err)
		})
	}
}

func TestNewLogger(t *testing.T) {
	t.Setenv("DUNGEON_LOG_LEVEL", "debug")
	t.Setenv("DUNGEON_LOG_DEVELOPMENT", "true")

	cfg, err := Load()
	require.NoError(t, err)

	logger, err := cfg.NewLogger()
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(-1), "debug is enabled")
}
