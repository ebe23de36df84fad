package app_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/KirkDiggler/dungeon-engine/internal/app"
	"github.com/KirkDiggler/dungeon-engine/internal/config"
	"github.com/KirkDiggler/dungeon-engine/internal/domain/monster"
	dnderr "github.com/KirkDiggler/dungeon-engine/internal/errors"
	"github.com/KirkDiggler/dungeon-engine/internal/repositories/gateway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestNewProviderSeedsTemplates(t *testing.T) {
	t.Setenv("DUNGEON_STORAGE", config.DriverSQLite)
	t.Setenv("DUNGEON_SQLITE_PATH", filepath.Join(t.TempDir(), "dungeon.db"))
	t.Setenv("DUNGEON_SEED", "5")
	cfg, err := config.Load()
	require.NoError(t, err)

	provider, err := app.NewProvider(context.Background(), cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = provider.Gateway.Close() })

	_, ok := provider.Gateway.(*gateway.SQLiteGateway)
	assert.True(t, ok)

	templates, err := provider.Gateway.ListTemplates(context.Background(), monster.LevelRange{Min: 1, Max: 10})
	require.NoError(t, err)
	assert.Len(t, templates, len(monster.DefaultTemplates()))
}

func TestOpenGatewayMemory(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{Driver: config.DriverMemory}}

	store, err := app.OpenGateway(context.Background(), cfg, nil)

	require.NoError(t, err)
	_, ok := store.(*gateway.InMemoryGateway)
	assert.True(t, ok)
}

func TestOpenGatewayRedisUnreachable(t *testing.T) {
	cfg := &config.Config{
		Storage: config.StorageConfig{Driver: config.DriverRedis},
		Redis:   config.RedisConfig{Addr: "127.0.0.1:1"},
	}

	_, err := app.OpenGateway(context.Background(), cfg, zaptest.NewLogger(t))

	assert.True(t, dnderr.IsPersistenceFailure(err))
}

func TestOpenGatewayUnknownDriver(t *testing.T) {
	_, err := app.OpenGateway(context.Background(), &config.Config{Storage: config.StorageConfig{Driver: "csv"}}, nil)

	assert.True(t, dnderr.IsInvalidArgument(err))
}

func TestRollerIsReproducibleWithSeed(t *testing.T) {
	cfg := &config.Config{Game: config.GameConfig{Seed: 11}}

	first, err := app.Roller(cfg).Roll(5, 100, 0)
	require.NoError(t, err)
	second, err := app.Roller(cfg).Roll(5, 100, 0)
	require.NoError(t, err)

	assert.Equal(t, first.Rolls, second.Rolls)
}
