package equipment

import "fmt"

// Rarity is the quality tier shared by items and monster archetypes
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Rank orders rarities from 1 (common) to 5 (legendary); unknown tiers rank 0
func (r Rarity) Rank() int {
	switch r {
	case RarityCommon:
		return 1
	case RarityUncommon:
		return 2
	case RarityRare:
		return 3
	case RarityEpic:
		return 4
	case RarityLegendary:
		return 5
	default:
		return 0
	}
}

// IsValid reports whether r is a known tier
func (r Rarity) IsValid() bool {
	return r.Rank() > 0
}

// ParseRarity converts a stored value back to a Rarity
func ParseRarity(value string) (Rarity, error) {
	r := Rarity(value)
	if !r.IsValid() {
		return "", fmt.Errorf("unknown rarity %q", value)
	}
	return r, nil
}
