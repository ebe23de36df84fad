package monster

import dnderr "github.com/KirkDiggler/dungeon-engine/internal/errors"

// LevelRange is an inclusive range of levels
type LevelRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Validate requires 1 <= Min <= Max
func (r LevelRange) Validate() error {
	if r.Min < 1 {
		return dnderr.InvalidArgumentf("level range minimum must be at least 1, got %d", r.Min)
	}
	if r.Max < r.Min {
		return dnderr.InvalidArgumentf("level range %d-%d is inverted", r.Min, r.Max)
	}
	return nil
}

// Contains reports whether level lies in the range
func (r LevelRange) Contains(level int) bool {
	return level >= r.Min && level <= r.Max
}

// Overlaps reports whether the two ranges share a level
func (r LevelRange) Overlaps(other LevelRange) bool {
	return r.Min <= other.Max && other.Min <= r.Max
}

// Clamp collapses level onto the nearest bound. Out of range values land on the
// boundary; no probability is redistributed to interior levels.
func (r LevelRange) Clamp(level int) int {
	if level < r.Min {
		return r.Min
	}
	if level > r.Max {
		return r.Max
	}
	return level
}
