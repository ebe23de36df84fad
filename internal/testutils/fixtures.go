package testutils

import (
	"time"

	"github.com/KirkDiggler/dungeon-engine/internal/domain/character"
	"github.com/KirkDiggler/dungeon-engine/internal/domain/equipment"
	"github.com/KirkDiggler/dungeon-engine/internal/domain/monster"
)

// CreateTestWeapon creates a common sword
func CreateTestWeapon(id, name string, damage int) *equipment.Weapon {
	return &equipment.Weapon{
		Base: equipment.Item{
			ID:               id,
			Name:             name,
			Rarity:           equipment.RarityCommon,
			LevelRequirement: 1,
			Value:            10,
			Bonus:            equipment.Bonus{Damage: damage},
		},
		WeaponType: equipment.WeaponTypeSword,
	}
}

// CreateTestArmor creates an armor piece for slot
func CreateTestArmor(id, name string, slot equipment.Slot, defense int) *equipment.Armor {
	return &equipment.Armor{
		Base: equipment.Item{
			ID:               id,
			Name:             name,
			Rarity:           equipment.RarityUncommon,
			LevelRequirement: 1,
			Value:            15,
			Bonus:            equipment.Bonus{Defense: defense, Health: 5},
		},
		Slot: slot,
	}
}

// CreateTestRing creates a ring granting strength
func CreateTestRing(id string, strength int) *equipment.Accessory {
	return &equipment.Accessory{
		Base: equipment.Item{
			ID:               id,
			Name:             "Copper Ring",
			Description:      "Warm to the touch",
			Rarity:           equipment.RarityRare,
			LevelRequirement: 1,
			Value:            40,
			Bonus:            equipment.Bonus{Strength: strength},
		},
		Kind: equipment.AccessoryRing,
	}
}

// CreateTestCharacter creates a character with a sword and helm equipped and a ring in the bag.
// Item IDs are prefixed with the character name so several fixtures can share a store.
func CreateTestCharacter(name string) *character.Character {
	char := character.New(name, "")
	char.Level = 3
	char.Experience = 40
	char.Strength = 10
	char.Defense = 1
	char.CurrentHealth = 42

	sword := CreateTestWeapon(name+"-sword", "Iron Sword", 4)
	helm := CreateTestArmor(name+"-helm", "Iron Helm", equipment.SlotHead, 2)
	ring := CreateTestRing(name+"-ring", 1)

	for _, item := range []equipment.Equipment{sword, helm, ring} {
		if err := char.Inventory.Add(item); err != nil {
			panic(err)
		}
	}
	if err := char.Equip(sword.Base.ID, equipment.SlotMainHand); err != nil {
		panic(err)
	}
	if err := char.Equip(helm.Base.ID, equipment.SlotHead); err != nil {
		panic(err)
	}
	return char
}

// CreateTestTemplate creates a plain template covering levels
func CreateTestTemplate(name string, levels monster.LevelRange, rarity equipment.Rarity) *monster.Template {
	return &monster.Template{
		Name:               name,
		Emoji:              "👾",
		Description:        "A test monster",
		Rarity:             rarity,
		Levels:             levels,
		BaseHealth:         20,
		BaseStrength:       5,
		BaseDefense:        2,
		HealthPerLevel:     5,
		StrengthPerLevel:   1,
		DefensePerLevel:    1,
		BaseExperience:     20,
		ExperiencePerLevel: 10,
		DropChance:         25,
	}
}

// StepClock is a TimeProvider that advances one minute per call
type StepClock struct {
	Current time.Time
}

// NewStepClock starts a clock at a fixed instant
func NewStepClock() *StepClock {
	return &StepClock{Current: time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)}
}

// Now returns the current instant and moves the clock forward
func (c *StepClock) Now() time.Time {
	now := c.Current
	c.Current = c.Current.Add(time.Minute)
	return now
}
