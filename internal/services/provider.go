package services

import (
	"github.com/KirkDiggler/dungeon-engine/internal/dice"
	"github.com/KirkDiggler/dungeon-engine/internal/domain/character"
	"github.com/KirkDiggler/dungeon-engine/internal/domain/monster"
	dnderr "github.com/KirkDiggler/dungeon-engine/internal/errors"
	"github.com/KirkDiggler/dungeon-engine/internal/repositories/gateway"
	"github.com/KirkDiggler/dungeon-engine/internal/services/adventure"
	characterService "github.com/KirkDiggler/dungeon-engine/internal/services/character"
	encounterService "github.com/KirkDiggler/dungeon-engine/internal/services/encounter"
	lootService "github.com/KirkDiggler/dungeon-engine/internal/services/loot"
	monsterService "github.com/KirkDiggler/dungeon-engine/internal/services/monster"
	"github.com/KirkDiggler/dungeon-engine/internal/uuid"
	"go.uber.org/zap"
)

// Provider holds all service instances
type Provider struct {
	Gateway          gateway.Gateway
	CharacterService characterService.Service
	EncounterService encounterService.Service
	MonsterService   monsterService.Service
	LootService      lootService.Service
	Locations        *adventure.Registry
	Progression      character.Progression
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	Gateway       gateway.Gateway // Optional - defaults to an in-memory store
	Roller        dice.Roller     // Optional - defaults to a randomly seeded roller
	UUIDGenerator uuid.Generator  // Optional
	Progression   character.Progression
	// ForestLevels and ForestEncounterRate fall back to the forest defaults when zero
	ForestLevels        monster.LevelRange
	ForestEncounterRate int
	Logger              *zap.Logger
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) (*Provider, error) {
	if cfg == nil {
		cfg = &ProviderConfig{}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	// Use in-memory store if none provided
	store := cfg.Gateway
	if store == nil {
		store = gateway.NewInMemory(nil)
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.NewRandomRoller()
	}

	progression := cfg.Progression
	if progression == (character.Progression{}) {
		progression = character.DefaultProgression()
	}
	if err := progression.Validate(); err != nil {
		return nil, err
	}

	loot := lootService.NewService(&lootService.ServiceConfig{
		Roller:        roller,
		UUIDGenerator: cfg.UUIDGenerator,
		Logger:        logger.Named("loot"),
	})

	monsters := monsterService.NewService(&monsterService.ServiceConfig{
		Templates:   store,
		Roller:      roller,
		LootService: loot,
		Logger:      logger.Named("monster"),
	})

	forest, err := adventure.NewForest(&adventure.ForestConfig{
		MonsterService: monsters,
		Roller:         roller,
		Levels:         cfg.ForestLevels,
		EncounterRate:  cfg.ForestEncounterRate,
		Logger:         logger.Named("forest"),
	})
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to create forest")
	}

	return &Provider{
		Gateway: store,
		CharacterService: characterService.NewService(&characterService.ServiceConfig{
			Gateway:       store,
			UUIDGenerator: cfg.UUIDGenerator,
			Logger:        logger.Named("character"),
		}),
		EncounterService: encounterService.NewService(&encounterService.ServiceConfig{
			Gateway:     store,
			Progression: progression,
			Logger:      logger.Named("encounter"),
		}),
		MonsterService: monsters,
		LootService:    loot,
		Locations:      adventure.NewRegistry(forest),
		Progression:    progression,
	}, nil
}
