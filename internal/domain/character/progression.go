package character

import (
	"math"

	dnderr "github.com/KirkDiggler/dungeon-engine/internal/errors"
)

// Progression holds the leveling rules. It is passed in explicitly wherever XP is awarded.
type Progression struct {
	// ExperienceBase is the threshold to leave level 1
	ExperienceBase int
	// GrowthPercent multiplies the threshold for each further level; 150 means x1.5
	GrowthPercent    int
	HealthPerLevel   int
	StrengthPerLevel int
	// DefeatHealth is what current health is set to after losing a fight
	DefeatHealth int
}

// DefaultProgression returns the standard leveling rules
func DefaultProgression() Progression {
	return Progression{
		ExperienceBase:   100,
		GrowthPercent:    150,
		HealthPerLevel:   10,
		StrengthPerLevel: 2,
		DefeatHealth:     1,
	}
}

// Validate rejects rules that would stall or shrink progression
func (p Progression) Validate() error {
	if p.ExperienceBase < 1 {
		return dnderr.InvalidArgument("experience base must be positive")
	}
	if p.GrowthPercent < 100 {
		return dnderr.InvalidArgument("growth percent must be at least 100")
	}
	if p.HealthPerLevel < 0 || p.StrengthPerLevel < 0 {
		return dnderr.InvalidArgument("per-level gains cannot be negative")
	}
	if p.DefeatHealth < 1 {
		return dnderr.InvalidArgument("defeat health must be at least 1")
	}
	return nil
}

// Threshold is the XP needed to advance from level to level+1.
// It saturates at math.MaxInt instead of overflowing.
func (p Progression) Threshold(level int) int {
	threshold := p.ExperienceBase
	if p.GrowthPercent <= 100 {
		return threshold
	}
	for l := 1; l < level; l++ {
		if threshold > math.MaxInt/p.GrowthPercent {
			return math.MaxInt
		}
		threshold = threshold * p.GrowthPercent / 100
	}
	return threshold
}

// ExperienceToNextLevel is how much XP c still needs for its next level
func (p Progression) ExperienceToNextLevel(c *Character) int {
	return max(0, p.Threshold(c.Level)-c.Experience)
}

// LevelUp reports what a single XP award changed
type LevelUp struct {
	From           int
	To             int
	HealthGained   int
	StrengthGained int
}

// Levels returns how many levels were gained
func (l *LevelUp) Levels() int {
	return l.To - l.From
}

// AwardExperience adds xp and applies every level-up it pays for.
// Each level gained raises max health and strength and restores health to full.
func (c *Character) AwardExperience(xp int, p Progression) (*LevelUp, error) {
	if xp < 0 {
		return nil, dnderr.InvalidArgumentf("experience award cannot be negative: %d", xp)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	up := &LevelUp{From: c.Level, To: c.Level}
	if xp > math.MaxInt-c.Experience {
		c.Experience = math.MaxInt
	} else {
		c.Experience += xp
	}
	for {
		threshold := p.Threshold(c.Level)
		if c.Experience < threshold {
			break
		}
		c.Experience -= threshold
		c.Level++
		c.MaxHealth += p.HealthPerLevel
		c.Strength += p.StrengthPerLevel
		up.HealthGained += p.HealthPerLevel
		up.StrengthGained += p.StrengthPerLevel
	}
	up.To = c.Level

	if up.Levels() > 0 {
		c.CurrentHealth = c.MaxHealth
	}
	return up, nil
}
