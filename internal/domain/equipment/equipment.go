package equipment

import dnderr "github.com/KirkDiggler/dungeon-engine/internal/errors"

// Category identifies which Equipment variant an item is
type Category string

const (
	CategoryWeapon    Category = "weapon"
	CategoryArmor     Category = "armor"
	CategoryAccessory Category = "accessory"
)

// Equipment is implemented by exactly *Weapon, *Armor and *Accessory.
// Switches over the concrete type must handle all three.
type Equipment interface {
	GetID() string
	GetName() string
	GetCategory() Category
	GetRarity() Rarity
	GetBonus() Bonus
	GetLevelRequirement() int
	GetValue() int
	CompatibleSlots() []Slot
}

// Item holds the fields every variant carries. Items are never mutated after creation.
type Item struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description,omitempty"`
	Rarity           Rarity `json:"rarity"`
	LevelRequirement int    `json:"level_requirement"`
	Value            int    `json:"value"`
	Bonus            Bonus  `json:"bonus"`
}

func (i Item) validate() error {
	if i.ID == "" {
		return dnderr.InvalidArgument("item id is required")
	}
	if i.Name == "" {
		return dnderr.InvalidArgument("item name is required")
	}
	if !i.Rarity.IsValid() {
		return dnderr.InvalidArgumentf("item %s has unknown rarity %q", i.ID, i.Rarity)
	}
	if i.LevelRequirement < 1 {
		return dnderr.InvalidArgumentf("item %s level requirement must be at least 1", i.ID)
	}
	if i.Value < 0 {
		return dnderr.InvalidArgumentf("item %s value cannot be negative", i.ID)
	}
	return nil
}

// Fits reports whether eq may occupy slot
func Fits(eq Equipment, slot Slot) bool {
	for _, s := range eq.CompatibleSlots() {
		if s == slot {
			return true
		}
	}
	return false
}

// Validate checks an item of any variant
func Validate(eq Equipment) error {
	switch e := eq.(type) {
	case *Weapon:
		return e.Base.validate()
	case *Armor:
		if !e.Slot.IsArmorSlot() {
			return dnderr.InvalidArgumentf("armor %s has non-armor slot %q", e.Base.ID, e.Slot)
		}
		return e.Base.validate()
	case *Accessory:
		if e.Kind != AccessoryNecklace && e.Kind != AccessoryRing {
			return dnderr.InvalidArgumentf("accessory %s has unknown kind %q", e.Base.ID, e.Kind)
		}
		return e.Base.validate()
	case nil:
		return dnderr.InvalidArgument("item cannot be nil")
	default:
		return dnderr.InvalidArgumentf("unsupported equipment type %T", eq)
	}
}
