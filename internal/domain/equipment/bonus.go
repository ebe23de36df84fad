package equipment

// Bonus is the stat delta an item grants while equipped
type Bonus struct {
	Strength int `json:"strength,omitempty"`
	Health   int `json:"health,omitempty"`
	Defense  int `json:"defense,omitempty"`
	Damage   int `json:"damage,omitempty"`
}

// Add returns the per-dimension sum of b and other
func (b Bonus) Add(other Bonus) Bonus {
	return Bonus{
		Strength: b.Strength + other.Strength,
		Health:   b.Health + other.Health,
		Defense:  b.Defense + other.Defense,
		Damage:   b.Damage + other.Damage,
	}
}

// IsZero reports whether the bonus changes nothing
func (b Bonus) IsZero() bool {
	return b == Bonus{}
}
