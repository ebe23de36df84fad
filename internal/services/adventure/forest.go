package adventure

import (
	"context"

	"github.com/KirkDiggler/dungeon-engine/internal/dice"
	"github.com/KirkDiggler/dungeon-engine/internal/domain/monster"
	dnderr "github.com/KirkDiggler/dungeon-engine/internal/errors"
	monsterService "github.com/KirkDiggler/dungeon-engine/internal/services/monster"
	"go.uber.org/zap"
)

const (
	ForestKey                  = "forest"
	DefaultForestEncounterRate = 80
)

// DefaultForestLevels is the level band of forest monsters
var DefaultForestLevels = monster.LevelRange{Min: 1, Max: 10}

var forestEvents = []string{
	"🍄 You discover some healing mushrooms and feel refreshed!",
	"🌸 You find a beautiful clearing with flowers that restore your spirits.",
	"🐦 Colorful birds chirp melodiously in the trees above.",
	"🦋 Butterflies dance around you in a magical display.",
	"🌿 You find a peaceful stream and take a refreshing drink.",
	"🐿️ A friendly squirrel chatters at you from a nearby tree.",
	"☀️ Warm sunlight breaks through the canopy, lifting your mood.",
	"🌳 You discover an ancient tree that seems to whisper old secrets.",
	"🌺 You stumble upon a hidden grove filled with beautiful wildflowers.",
	"🦉 An owl hoots wisely from somewhere in the branches above.",
}

// Forest is the starting adventure location
type Forest struct {
	monsters      monsterService.Service
	roller        dice.Roller
	levels        monster.LevelRange
	encounterRate int
	logger        *zap.Logger
}

// ForestConfig holds configuration for the forest
type ForestConfig struct {
	MonsterService monsterService.Service // Required
	Roller         dice.Roller            // Required
	// Levels defaults to DefaultForestLevels
	Levels monster.LevelRange
	// EncounterRate is the percent chance of a monster; zero uses DefaultForestEncounterRate
	EncounterRate int
	Logger        *zap.Logger
}

// NewForest creates the forest location
func NewForest(cfg *ForestConfig) (*Forest, error) {
	if cfg == nil || cfg.MonsterService == nil {
		return nil, dnderr.InvalidArgument("monster service is required")
	}
	if cfg.Roller == nil {
		return nil, dnderr.InvalidArgument("dice roller is required")
	}

	f := &Forest{
		monsters:      cfg.MonsterService,
		roller:        cfg.Roller,
		levels:        cfg.Levels,
		encounterRate: cfg.EncounterRate,
		logger:        cfg.Logger,
	}
	if f.levels == (monster.LevelRange{}) {
		f.levels = DefaultForestLevels
	}
	if err := f.levels.Validate(); err != nil {
		return nil, err
	}
	if f.encounterRate == 0 {
		f.encounterRate = DefaultForestEncounterRate
	}
	if f.encounterRate < 0 || f.encounterRate > 100 {
		return nil, dnderr.InvalidArgumentf("encounter rate must be 0-100, got %d", f.encounterRate)
	}
	if f.logger == nil {
		f.logger = zap.NewNop()
	}
	return f, nil
}

func (f *Forest) Key() string                { return ForestKey }
func (f *Forest) Name() string               { return "Forest" }
func (f *Forest) Emoji() string              { return "🌲" }
func (f *Forest) Levels() monster.LevelRange { return f.levels }

func (f *Forest) Intro() string {
	return "You venture into the dense woodland...\n" +
		"Sunlight filters through the canopy above.\n" +
		"The forest is alive with rustling sounds."
}

// GenerateEncounter rolls d100 against the encounter rate, then either asks for a
// monster or picks one of the peaceful events
func (f *Forest) GenerateEncounter(ctx context.Context, characterLevel int) (*Encounter, error) {
	roll, err := dice.D100(f.roller)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to roll for an encounter")
	}

	if roll <= f.encounterRate {
		m, err := f.monsters.Generate(ctx, characterLevel, f.levels)
		if err != nil {
			return nil, err
		}
		f.logger.Debug("forest monster encounter",
			zap.String("monster", m.Name),
			zap.Int("level", m.Level),
		)
		return &Encounter{Monster: m}, nil
	}

	pick, err := f.roller.Roll(1, len(forestEvents), 0)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to roll a peaceful event")
	}
	return &Encounter{PeacefulEvent: forestEvents[pick.Total-1]}, nil
}
