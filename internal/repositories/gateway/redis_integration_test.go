//go:build integration
// +build integration

package gateway_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/dungeon-engine/internal/domain/monster"
	"github.com/KirkDiggler/dungeon-engine/internal/domain/statistics"
	dnderr "github.com/KirkDiggler/dungeon-engine/internal/errors"
	"github.com/KirkDiggler/dungeon-engine/internal/repositories/gateway"
	"github.com/KirkDiggler/dungeon-engine/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"
)

func TestRedisGatewayContract_Integration(t *testing.T) {
	client := testutils.RedisClientOrSkip(t)

	suite.Run(t, &GatewayContractSuite{
		open: func(t *testing.T, tp gateway.TimeProvider) gateway.Gateway {
			// each test starts from an empty database; Close is a no-op on the shared client
			require.NoError(t, client.FlushDB(context.Background()).Err())
			return &sharedClientGateway{gateway.NewRedisGateway(&gateway.RedisConfig{
				Client:       client,
				TimeProvider: tp,
				Logger:       zaptest.NewLogger(t),
			})}
		},
	})
}

type sharedClientGateway struct {
	*gateway.RedisGateway
}

func (g *sharedClientGateway) Close() error { return nil }

func TestRedisGateway_Integration(t *testing.T) {
	client := testutils.RedisClientOrSkip(t)
	gw := gateway.NewRedisGateway(&gateway.RedisConfig{Client: client, TimeProvider: testutils.NewStepClock()})
	ctx := context.Background()

	t.Run("commit is all or nothing", func(t *testing.T) {
		char := testutils.CreateTestCharacter("Aria")
		require.NoError(t, gw.Save(ctx, char))

		char.Experience = 99
		err := gw.Commit(ctx, char, &statistics.Delta{CharacterName: "Aria", Encounters: -1})
		assert.True(t, dnderr.IsInvalidArgument(err))

		loaded, err := gw.Load(ctx, "Aria")
		require.NoError(t, err)
		assert.Equal(t, 40, loaded.Experience)
	})

	t.Run("templates listed by overlap", func(t *testing.T) {
		require.NoError(t, gw.SeedTemplates(ctx, monster.DefaultTemplates()))

		templates, err := gw.ListTemplates(ctx, monster.LevelRange{Min: 9, Max: 10})
		require.NoError(t, err)
		require.Len(t, templates, 2)
		assert.Equal(t, "Ancient Dragon", templates[0].Name)
		assert.Equal(t, "Lich King", templates[1].Name)
	})
}
