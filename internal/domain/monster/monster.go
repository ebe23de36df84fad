package monster

import (
	"github.com/KirkDiggler/dungeon-engine/internal/domain/equipment"
	dnderr "github.com/KirkDiggler/dungeon-engine/internal/errors"
)

// Template is read-only archetype data. Stats are given for level 1 and grow
// by the per-level coefficient for every level above it.
type Template struct {
	Name               string
	Emoji              string
	Description        string
	Rarity             equipment.Rarity
	Levels             LevelRange
	BaseHealth         int
	BaseStrength       int
	BaseDefense        int
	HealthPerLevel     int
	StrengthPerLevel   int
	DefensePerLevel    int
	BaseExperience     int
	ExperiencePerLevel int
	// DropChance is the percent chance (0-100) of an item drop
	DropChance int
}

// Validate checks the template can spawn a living monster at every level it allows
func (t *Template) Validate() error {
	if t.Name == "" {
		return dnderr.Validation("template name is required")
	}
	if !t.Rarity.IsValid() {
		return dnderr.Validationf("template %s has unknown rarity %q", t.Name, t.Rarity)
	}
	if err := t.Levels.Validate(); err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeValidation, "template "+t.Name)
	}
	if t.BaseHealth < 1 {
		return dnderr.Validationf("template %s base health must be positive", t.Name)
	}
	if t.BaseStrength < 0 || t.BaseDefense < 0 || t.BaseExperience < 0 {
		return dnderr.Validationf("template %s has negative base stats", t.Name)
	}
	if t.HealthPerLevel < 0 || t.StrengthPerLevel < 0 || t.DefensePerLevel < 0 || t.ExperiencePerLevel < 0 {
		return dnderr.Validationf("template %s has negative scaling", t.Name)
	}
	if t.DropChance < 0 || t.DropChance > 100 {
		return dnderr.Validationf("template %s drop chance must be 0-100", t.Name)
	}
	return nil
}

// Spawn builds a fresh instance at level
func (t *Template) Spawn(level int) (*Instance, error) {
	if level < 1 {
		return nil, dnderr.InvalidArgumentf("monster level must be at least 1, got %d", level)
	}
	steps := level - 1
	health := t.BaseHealth + steps*t.HealthPerLevel
	return &Instance{
		Name:             t.Name,
		Emoji:            t.Emoji,
		Rarity:           t.Rarity,
		Level:            level,
		MaxHealth:        health,
		CurrentHealth:    health,
		Strength:         t.BaseStrength + steps*t.StrengthPerLevel,
		Defense:          t.BaseDefense + steps*t.DefensePerLevel,
		ExperienceReward: t.BaseExperience + steps*t.ExperiencePerLevel,
		DropChance:       t.DropChance,
	}, nil
}

// Instance is a monster generated for one encounter; it is never persisted
type Instance struct {
	Name             string
	Emoji            string
	Rarity           equipment.Rarity
	Level            int
	MaxHealth        int
	CurrentHealth    int
	Strength         int
	Defense          int
	ExperienceReward int
	DropChance       int
	// Drop is the item awarded on victory, if one was rolled
	Drop equipment.Equipment
}

// IsAlive reports whether the monster can still fight
func (m *Instance) IsAlive() bool {
	return m.CurrentHealth > 0
}
