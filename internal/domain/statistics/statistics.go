package statistics

import dnderr "github.com/KirkDiggler/dungeon-engine/internal/errors"

// Record holds a character's lifetime combat counters. Counters only ever grow.
type Record struct {
	CharacterName    string
	Encounters       int
	Victories        int
	Defeats          int
	Fled             int
	DamageDealt      int
	DamageTaken      int
	ExperienceEarned int
}

// Delta is the increment produced by one resolved encounter
type Delta struct {
	CharacterName    string
	Encounters       int
	Victories        int
	Defeats          int
	Fled             int
	DamageDealt      int
	DamageTaken      int
	ExperienceEarned int
}

// Validate rejects deltas that would decrease a counter
func (d *Delta) Validate() error {
	if d == nil {
		return dnderr.InvalidArgument("statistics delta cannot be nil")
	}
	if d.CharacterName == "" {
		return dnderr.InvalidArgument("statistics delta needs a character name")
	}
	for _, v := range d.counters() {
		if v < 0 {
			return dnderr.InvalidArgumentf("statistics counters only increase, got %d", v).
				WithMeta("character_name", d.CharacterName)
		}
	}
	return nil
}

// IsZero reports whether applying d changes nothing
func (d *Delta) IsZero() bool {
	for _, v := range d.counters() {
		if v != 0 {
			return false
		}
	}
	return true
}

func (d *Delta) counters() []int {
	return []int{d.Encounters, d.Victories, d.Defeats, d.Fled, d.DamageDealt, d.DamageTaken, d.ExperienceEarned}
}

// Apply adds d to r
func (r *Record) Apply(d *Delta) {
	r.Encounters += d.Encounters
	r.Victories += d.Victories
	r.Defeats += d.Defeats
	r.Fled += d.Fled
	r.DamageDealt += d.DamageDealt
	r.DamageTaken += d.DamageTaken
	r.ExperienceEarned += d.ExperienceEarned
}

// WinRate returns victories as a percent of encounters
func (r *Record) WinRate() int {
	if r.Encounters == 0 {
		return 0
	}
	return r.Victories * 100 / r.Encounters
}
