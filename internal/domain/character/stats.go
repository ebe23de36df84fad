package character

import "github.com/KirkDiggler/dungeon-engine/internal/domain/equipment"

// StatBlock is the set of numbers combat reads
type StatBlock struct {
	MaxHealth     int
	CurrentHealth int
	Strength      int
	Defense       int
	Damage        int
}

// Attack is the raw offensive value before the defender's defense
func (s StatBlock) Attack() int {
	return s.Strength + s.Damage
}

// Aggregate adds every bonus to base. A health bonus raises both maximum and current health.
func Aggregate(base StatBlock, bonuses ...equipment.Bonus) StatBlock {
	out := base
	for _, b := range bonuses {
		out.Strength += b.Strength
		out.MaxHealth += b.Health
		out.CurrentHealth += b.Health
		out.Defense += b.Defense
		out.Damage += b.Damage
	}
	return out
}

// BaseStats returns the character's stats without equipment
func (c *Character) BaseStats() StatBlock {
	return StatBlock{
		MaxHealth:     c.MaxHealth,
		CurrentHealth: c.CurrentHealth,
		Strength:      c.Strength,
		Defense:       c.Defense,
	}
}

// EffectiveStats returns base stats plus everything equipped
func (c *Character) EffectiveStats() StatBlock {
	return Aggregate(c.BaseStats(), c.Equipment.Bonuses()...)
}
