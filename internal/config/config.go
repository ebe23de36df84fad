package config

import (
	"fmt"

	"github.com/KirkDiggler/dungeon-engine/internal/domain/character"
	"github.com/KirkDiggler/dungeon-engine/internal/domain/monster"
	"github.com/caarlos0/env/v11"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Storage drivers
const (
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

// Config holds all configuration for the application
type Config struct {
	Storage StorageConfig
	Redis   RedisConfig
	Game    GameConfig
	Log     LogConfig
}

// StorageConfig selects the persistence backend
type StorageConfig struct {
	Driver     string `env:"DUNGEON_STORAGE" envDefault:"sqlite"`
	SQLitePath string `env:"DUNGEON_SQLITE_PATH" envDefault:"dungeon.db"`
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// URL wins over the discrete fields when set
	URL      string `env:"REDIS_URL"`
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// GameConfig holds the rules the engine is played with
type GameConfig struct {
	// Seed makes every roll reproducible; zero means a random seed
	Seed               int64 `env:"DUNGEON_SEED" envDefault:"0"`
	ExperienceBase     int   `env:"DUNGEON_XP_BASE" envDefault:"100"`
	GrowthPercent      int   `env:"DUNGEON_XP_GROWTH_PERCENT" envDefault:"150"`
	HealthPerLevel     int   `env:"DUNGEON_HEALTH_PER_LEVEL" envDefault:"10"`
	StrengthPerLevel   int   `env:"DUNGEON_STRENGTH_PER_LEVEL" envDefault:"2"`
	DefeatHealth       int   `env:"DUNGEON_DEFEAT_HEALTH" envDefault:"1"`
	ForestLevelCap     int   `env:"DUNGEON_FOREST_LEVEL_CAP" envDefault:"10"`
	ForestEncounterPct int   `env:"DUNGEON_FOREST_ENCOUNTER_RATE" envDefault:"80"`
}

// LogConfig controls the process logger
type LogConfig struct {
	Level       string `env:"DUNGEON_LOG_LEVEL" envDefault:"warn"`
	Development bool   `env:"DUNGEON_LOG_DEVELOPMENT" envDefault:"false"`
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects unknown drivers and rules that cannot be played
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverSQLite:
		if c.Storage.SQLitePath == "" {
			return fmt.Errorf("DUNGEON_SQLITE_PATH is required for the sqlite driver")
		}
	case DriverRedis:
		if c.Redis.URL == "" && c.Redis.Addr == "" {
			return fmt.Errorf("REDIS_URL or REDIS_ADDR is required for the redis driver")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}

	if err := c.Progression().Validate(); err != nil {
		return fmt.Errorf("invalid progression rules: %w", err)
	}
	if err := c.ForestLevels().Validate(); err != nil {
		return fmt.Errorf("invalid forest level cap: %w", err)
	}
	if c.Game.ForestEncounterPct < 1 || c.Game.ForestEncounterPct > 100 {
		return fmt.Errorf("DUNGEON_FOREST_ENCOUNTER_RATE must be 1-100, got %d", c.Game.ForestEncounterPct)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid DUNGEON_LOG_LEVEL: %w", err)
	}
	return nil
}

// Progression converts the game rules for the services
func (c *Config) Progression() character.Progression {
	return character.Progression{
		ExperienceBase:   c.Game.ExperienceBase,
		GrowthPercent:    c.Game.GrowthPercent,
		HealthPerLevel:   c.Game.HealthPerLevel,
		StrengthPerLevel: c.Game.StrengthPerLevel,
		DefeatHealth:     c.Game.DefeatHealth,
	}
}

// ForestLevels is the monster level band of the forest
func (c *Config) ForestLevels() monster.LevelRange {
	return monster.LevelRange{Min: 1, Max: c.Game.ForestLevelCap}
}

// RedisOptions builds the client options
func (c *Config) RedisOptions() (*redis.Options, error) {
	if c.Redis.URL != "" {
		opts, err := redis.ParseURL(c.Redis.URL)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
		}
		return opts, nil
	}
	return &redis.Options{
		Addr:     c.Redis.Addr,
		Password: c.Redis.Password,
		DB:       c.Redis.DB,
	}, nil
}

// NewLogger builds the process logger
func (c *Config) NewLogger() (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if c.Log.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	// the console belongs to the game
	zc.OutputPaths = []string{"stderr"}

	level, err := zap.ParseAtomicLevel(c.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid DUNGEON_LOG_LEVEL: %w", err)
	}
	zc.Level = level
	return zc.Build()
}
