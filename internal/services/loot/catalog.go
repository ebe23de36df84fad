package loot

import "github.com/KirkDiggler/dungeon-engine/internal/domain/equipment"

// baseItem is an unscaled catalog entry
type baseItem struct {
	name        string
	description string
	value       int
	bonus       equipment.Bonus
	build       func(item equipment.Item) equipment.Equipment
}

func weapon(kind equipment.WeaponType) func(equipment.Item) equipment.Equipment {
	return func(item equipment.Item) equipment.Equipment {
		return &equipment.Weapon{Base: item, WeaponType: kind}
	}
}

func armor(slot equipment.Slot) func(equipment.Item) equipment.Equipment {
	return func(item equipment.Item) equipment.Equipment {
		return &equipment.Armor{Base: item, Slot: slot}
	}
}

func accessory(kind equipment.AccessoryKind) func(equipment.Item) equipment.Equipment {
	return func(item equipment.Item) equipment.Equipment {
		return &equipment.Accessory{Base: item, Kind: kind}
	}
}

// catalog lists every item a monster can drop. The order is fixed so a die roll maps to one entry.
var catalog = []baseItem{
	{name: "Sword", description: "A balanced blade.", value: 25, bonus: equipment.Bonus{Damage: 3}, build: weapon(equipment.WeaponTypeSword)},
	{name: "Axe", description: "Heavy and hungry.", value: 30, bonus: equipment.Bonus{Damage: 4}, build: weapon(equipment.WeaponTypeAxe)},
	{name: "Dagger", description: "Quick in the hand.", value: 15, bonus: equipment.Bonus{Damage: 2, Strength: 1}, build: weapon(equipment.WeaponTypeDagger)},
	{name: "Mace", description: "Dents armor and bone alike.", value: 28, bonus: equipment.Bonus{Damage: 3, Defense: 1}, build: weapon(equipment.WeaponTypeMace)},
	{name: "Staff", description: "Carved with faded runes.", value: 20, bonus: equipment.Bonus{Damage: 2, Health: 5}, build: weapon(equipment.WeaponTypeStaff)},
	{name: "Cap", description: "Simple headwear.", value: 10, bonus: equipment.Bonus{Defense: 1}, build: armor(equipment.SlotHead)},
	{name: "Tunic", description: "Basic body protection.", value: 20, bonus: equipment.Bonus{Defense: 2, Health: 5}, build: armor(equipment.SlotBody)},
	{name: "Leggings", description: "Flexible legwear.", value: 15, bonus: equipment.Bonus{Defense: 1, Health: 2}, build: armor(equipment.SlotLegs)},
	{name: "Gloves", description: "A firm grip.", value: 12, bonus: equipment.Bonus{Defense: 1, Strength: 1}, build: armor(equipment.SlotHands)},
	{name: "Boots", description: "Good for long roads.", value: 12, bonus: equipment.Bonus{Defense: 1}, build: armor(equipment.SlotFeet)},
	{name: "Amulet", description: "Hums faintly.", value: 35, bonus: equipment.Bonus{Health: 10}, build: accessory(equipment.AccessoryNecklace)},
	{name: "Band", description: "A plain metal ring.", value: 20, bonus: equipment.Bonus{Strength: 1}, build: accessory(equipment.AccessoryRing)},
}

var rarityAdjective = map[equipment.Rarity]string{
	equipment.RarityCommon:    "Worn",
	equipment.RarityUncommon:  "Sturdy",
	equipment.RarityRare:      "Fine",
	equipment.RarityEpic:      "Masterwork",
	equipment.RarityLegendary: "Mythic",
}
