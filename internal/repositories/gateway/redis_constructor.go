package gateway

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedis creates a Redis-backed gateway on the wall clock
func NewRedis(client redis.UniversalClient, logger *zap.Logger) *RedisGateway {
	return NewRedisGateway(&RedisConfig{
		Client:       client,
		TimeProvider: UTCTimeProvider{},
		Logger:       logger,
	})
}
