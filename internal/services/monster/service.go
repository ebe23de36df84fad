package monster

//go:generate mockgen -destination=mock/mock_service.go -package=mockmonster -source=service.go

import (
	"context"

	"github.com/KirkDiggler/dungeon-engine/internal/dice"
	"github.com/KirkDiggler/dungeon-engine/internal/domain/equipment"
	"github.com/KirkDiggler/dungeon-engine/internal/domain/monster"
	dnderr "github.com/KirkDiggler/dungeon-engine/internal/errors"
	"github.com/KirkDiggler/dungeon-engine/internal/services/loot"
	"go.uber.org/zap"
)

// Service defines the monster generation interface
type Service interface {
	// Generate produces a monster for a character of level within area
	Generate(ctx context.Context, level int, area monster.LevelRange) (*monster.Instance, error)

	// ScaledLevel draws the monster level for a character of level, clamped to area
	ScaledLevel(level int, area monster.LevelRange) (int, error)
}

// TemplateSource supplies the archetypes a monster can be spawned from
type TemplateSource interface {
	ListTemplates(ctx context.Context, levels monster.LevelRange) ([]*monster.Template, error)
}

// rarityWeight is how often a template of each rarity is picked relative to the others
var rarityWeight = map[equipment.Rarity]int{
	equipment.RarityCommon:    50,
	equipment.RarityUncommon:  20,
	equipment.RarityRare:      8,
	equipment.RarityEpic:      4,
	equipment.RarityLegendary: 2,
}

type service struct {
	templates   TemplateSource
	roller      dice.Roller
	lootService loot.Service
	logger      *zap.Logger
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Templates   TemplateSource // Required
	Roller      dice.Roller    // Required
	LootService loot.Service   // Optional - monsters carry no drop without it
	Logger      *zap.Logger
}

// NewService creates a new monster service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil || cfg.Templates == nil {
		panic("template source is required")
	}
	if cfg.Roller == nil {
		panic("dice roller is required")
	}

	svc := &service{
		templates:   cfg.Templates,
		roller:      cfg.Roller,
		lootService: cfg.LootService,
		logger:      cfg.Logger,
	}
	if svc.logger == nil {
		svc.logger = zap.NewNop()
	}
	return svc
}

// ScaledLevel rolls d100: 1-50 same level, 51-70 one above, 71-90 one below,
// 91-95 two above, 96-100 two below. Levels outside the area collapse onto its bounds.
func (s *service) ScaledLevel(level int, area monster.LevelRange) (int, error) {
	if level < 1 {
		return 0, dnderr.InvalidArgumentf("character level must be at least 1, got %d", level)
	}
	if err := area.Validate(); err != nil {
		return 0, err
	}

	roll, err := dice.D100(s.roller)
	if err != nil {
		return 0, dnderr.Wrap(err, "failed to roll monster level")
	}

	return area.Clamp(level + LevelShift(roll)), nil
}

// LevelShift maps a d100 roll to the offset from the character's level
func LevelShift(roll int) int {
	switch {
	case roll <= 50:
		return 0
	case roll <= 70:
		return 1
	case roll <= 90:
		return -1
	case roll <= 95:
		return 2
	default:
		return -2
	}
}

func (s *service) Generate(ctx context.Context, level int, area monster.LevelRange) (*monster.Instance, error) {
	scaled, err := s.ScaledLevel(level, area)
	if err != nil {
		return nil, err
	}

	candidates, err := s.templates.ListTemplates(ctx, monster.LevelRange{Min: scaled, Max: scaled})
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to list templates for level %d", scaled)
	}
	if len(candidates) == 0 {
		return nil, dnderr.NotFoundf("no monster templates for level %d", scaled).
			WithMeta("level", scaled)
	}

	template, err := s.pickTemplate(candidates)
	if err != nil {
		return nil, err
	}

	instance, err := template.Spawn(scaled)
	if err != nil {
		return nil, err
	}

	if s.lootService != nil {
		drop, err := s.lootService.RollDrop(ctx, instance)
		if err != nil {
			return nil, dnderr.Wrapf(err, "failed to roll drop for %s", instance.Name)
		}
		instance.Drop = drop
	}

	s.logger.Debug("monster generated",
		zap.String("monster", instance.Name),
		zap.Int("character_level", level),
		zap.Int("monster_level", scaled),
		zap.Bool("has_drop", instance.Drop != nil),
	)
	return instance, nil
}

// pickTemplate makes one weighted roll across the candidates, in the order they were listed
func (s *service) pickTemplate(candidates []*monster.Template) (*monster.Template, error) {
	total := 0
	for _, t := range candidates {
		total += weightOf(t)
	}

	roll, err := s.roller.Roll(1, total, 0)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to roll monster template")
	}

	remaining := roll.Total
	for _, t := range candidates {
		remaining -= weightOf(t)
		if remaining <= 0 {
			return t, nil
		}
	}
	return candidates[len(candidates)-1], nil
}

func weightOf(t *monster.Template) int {
	if w, ok := rarityWeight[t.Rarity]; ok {
		return w
	}
	return 1
}
