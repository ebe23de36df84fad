// Package app opens the configured store and wires the services for the binaries
package app

import (
	"context"
	"time"

	"github.com/KirkDiggler/dungeon-engine/internal/config"
	"github.com/KirkDiggler/dungeon-engine/internal/dice"
	"github.com/KirkDiggler/dungeon-engine/internal/domain/monster"
	dnderr "github.com/KirkDiggler/dungeon-engine/internal/errors"
	"github.com/KirkDiggler/dungeon-engine/internal/repositories/gateway"
	"github.com/KirkDiggler/dungeon-engine/internal/services"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const redisPingTimeout = 5 * time.Second

// OpenGateway opens the store named by cfg.Storage.Driver
func OpenGateway(ctx context.Context, cfg *config.Config, logger *zap.Logger) (gateway.Gateway, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	switch cfg.Storage.Driver {
	case config.DriverMemory:
		logger.Warn("using in-memory storage; nothing will survive a restart")
		return gateway.NewInMemory(nil), nil

	case config.DriverSQLite:
		store, err := gateway.NewSQLite(ctx, &gateway.SQLiteConfig{
			Path:   cfg.Storage.SQLitePath,
			Logger: logger.Named("sqlite"),
		})
		if err != nil {
			return nil, err
		}
		return store, nil

	case config.DriverRedis:
		opts, err := cfg.RedisOptions()
		if err != nil {
			return nil, dnderr.WrapWithCode(err, dnderr.CodeInvalidArgument, "invalid redis configuration")
		}
		client := redis.NewClient(opts)

		pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			return nil, dnderr.PersistenceFailuref(err, "failed to reach redis at %s", opts.Addr)
		}
		logger.Info("connected to redis", zap.String("addr", opts.Addr), zap.Int("db", opts.DB))
		return gateway.NewRedis(client, logger.Named("redis")), nil
	}

	return nil, dnderr.InvalidArgumentf("unknown storage driver %q", cfg.Storage.Driver)
}

// Roller returns a roller seeded from cfg, or a random one when no seed is set
func Roller(cfg *config.Config) dice.Roller {
	if cfg.Game.Seed != 0 {
		return dice.NewSeededRoller(cfg.Game.Seed)
	}
	return dice.NewRandomRoller()
}

// NewProvider opens the store, seeds the default monster templates and wires every service.
// The caller owns closing Provider.Gateway.
func NewProvider(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*services.Provider, error) {
	store, err := OpenGateway(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	if err := store.SeedTemplates(ctx, monster.DefaultTemplates()); err != nil {
		_ = store.Close()
		return nil, dnderr.Wrap(err, "failed to seed monster templates")
	}

	provider, err := services.NewProvider(&services.ProviderConfig{
		Gateway:             store,
		Roller:              Roller(cfg),
		Progression:         cfg.Progression(),
		ForestLevels:        cfg.ForestLevels(),
		ForestEncounterRate: cfg.Game.ForestEncounterPct,
		Logger:              logger,
	})
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	return provider, nil
}
