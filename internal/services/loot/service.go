package loot

//go:generate mockgen -destination=mock/mock_service.go -package=mockloot -source=service.go

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/dungeon-engine/internal/dice"
	"github.com/KirkDiggler/dungeon-engine/internal/domain/equipment"
	"github.com/KirkDiggler/dungeon-engine/internal/domain/monster"
	dnderr "github.com/KirkDiggler/dungeon-engine/internal/errors"
	"github.com/KirkDiggler/dungeon-engine/internal/uuid"
	"go.uber.org/zap"
)

// Service decides what a defeated monster leaves behind
type Service interface {
	// RollDrop rolls the monster's drop chance and returns the item, or nil for no drop
	RollDrop(ctx context.Context, m *monster.Instance) (equipment.Equipment, error)

	// GenerateItem always produces an item scaled to level
	GenerateItem(ctx context.Context, level int) (equipment.Equipment, error)
}

type service struct {
	roller        dice.Roller
	uuidGenerator uuid.Generator
	logger        *zap.Logger
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Roller        dice.Roller    // Required
	UUIDGenerator uuid.Generator // Optional - defaults to random UUIDs
	Logger        *zap.Logger
}

// NewService creates a new loot service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil || cfg.Roller == nil {
		panic("dice roller is required")
	}
	svc := &service{
		roller:        cfg.Roller,
		uuidGenerator: cfg.UUIDGenerator,
		logger:        cfg.Logger,
	}
	if svc.uuidGenerator == nil {
		svc.uuidGenerator = uuid.NewRandomGenerator()
	}
	if svc.logger == nil {
		svc.logger = zap.NewNop()
	}
	return svc
}

func (s *service) RollDrop(ctx context.Context, m *monster.Instance) (equipment.Equipment, error) {
	if m == nil {
		return nil, dnderr.InvalidArgument("monster cannot be nil")
	}
	if m.DropChance <= 0 {
		return nil, nil
	}

	roll, err := dice.D100(s.roller)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to roll drop chance")
	}
	if roll > m.DropChance {
		return nil, nil
	}

	item, err := s.GenerateItem(ctx, m.Level)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("monster drop rolled",
		zap.String("monster", m.Name),
		zap.Int("roll", roll),
		zap.String("item", item.GetName()),
		zap.String("rarity", string(item.GetRarity())),
	)
	return item, nil
}

func (s *service) GenerateItem(ctx context.Context, level int) (equipment.Equipment, error) {
	if level < 1 {
		return nil, dnderr.InvalidArgumentf("item level must be at least 1, got %d", level)
	}

	pick, err := s.roller.Roll(1, len(catalog), 0)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to roll item type")
	}
	base := catalog[pick.Total-1]

	rarityRoll, err := dice.D100(s.roller)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to roll rarity")
	}
	rarity := RarityFor(rarityRoll)
	rank := rarity.Rank()

	item := equipment.Item{
		ID:               s.uuidGenerator.New(),
		Name:             fmt.Sprintf("%s %s", rarityAdjective[rarity], base.name),
		Description:      base.description,
		Rarity:           rarity,
		LevelRequirement: max(1, level-1),
		Value:            base.value*rank + 5*level,
		Bonus:            ScaleBonus(base.bonus, rank, level),
	}

	eq := base.build(item)
	if err := equipment.Validate(eq); err != nil {
		return nil, dnderr.Wrap(err, "generated an invalid item")
	}
	return eq, nil
}

// RarityFor maps a d100 roll to a rarity tier
func RarityFor(roll int) equipment.Rarity {
	switch {
	case roll <= 60:
		return equipment.RarityCommon
	case roll <= 85:
		return equipment.RarityUncommon
	case roll <= 95:
		return equipment.RarityRare
	case roll <= 99:
		return equipment.RarityEpic
	default:
		return equipment.RarityLegendary
	}
}

// ScaleBonus multiplies each present bonus by the rarity rank and adds half the level
func ScaleBonus(b equipment.Bonus, rank, level int) equipment.Bonus {
	scale := func(v int) int {
		if v == 0 {
			return 0
		}
		return v*rank + level/2
	}
	return equipment.Bonus{
		Strength: scale(b.Strength),
		Health:   scale(b.Health),
		Defense:  scale(b.Defense),
		Damage:   scale(b.Damage),
	}
}
