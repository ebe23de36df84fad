package equipment

// NewStarterSword returns the weapon every new character begins with
func NewStarterSword(id string) *Weapon {
	return &Weapon{
		Base: Item{
			ID:               id,
			Name:             "Rusty Sword",
			Description:      "A worn blade that has seen better days.",
			Rarity:           RarityCommon,
			LevelRequirement: 1,
			Value:            5,
			Bonus:            Bonus{Damage: 2},
		},
		WeaponType: WeaponTypeSword,
	}
}
