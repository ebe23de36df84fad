package character

import (
	"strings"

	"github.com/KirkDiggler/dungeon-engine/internal/domain/equipment"
	dnderr "github.com/KirkDiggler/dungeon-engine/internal/errors"
)

const (
	DefaultEmoji     = "🧙"
	DefaultMaxHealth = 50
	DefaultStrength  = 6
	DefaultDefense   = 0
	MaxNameLength    = 32
)

// Character is the player's persistent record, identified by name
type Character struct {
	Name          string
	Emoji         string
	Level         int
	Experience    int
	CurrentHealth int
	MaxHealth     int
	Strength      int
	Defense       int
	Equipment     *equipment.Loadout
	Inventory     *equipment.Inventory
}

// New creates a level 1 character with default base stats and nothing equipped
func New(name, emoji string) *Character {
	if emoji == "" {
		emoji = DefaultEmoji
	}
	return &Character{
		Name:          strings.TrimSpace(name),
		Emoji:         emoji,
		Level:         1,
		Experience:    0,
		CurrentHealth: DefaultMaxHealth,
		MaxHealth:     DefaultMaxHealth,
		Strength:      DefaultStrength,
		Defense:       DefaultDefense,
		Equipment:     equipment.NewLoadout(),
		Inventory:     equipment.NewInventory(equipment.DefaultInventoryCapacity),
	}
}

// IsAlive reports whether the character has health left
func (c *Character) IsAlive() bool {
	return c.CurrentHealth > 0
}

// Equip moves an inventory item into slot. An empty slot picks the first free compatible one.
// Whatever the slot held goes back into the inventory. On error nothing changes.
func (c *Character) Equip(itemID string, slot equipment.Slot) error {
	item, ok := c.Inventory.Find(itemID)
	if !ok {
		return dnderr.NotFoundf("item %s is not in %s's inventory", itemID, c.Name).
			WithMeta("item_id", itemID).
			WithMeta("character_name", c.Name)
	}
	if item.GetLevelRequirement() > c.Level {
		return dnderr.Validationf("%s requires level %d", item.GetName(), item.GetLevelRequirement()).
			WithMeta("item_id", itemID)
	}

	if slot == "" {
		preferred, err := c.Equipment.PreferredSlot(item)
		if err != nil {
			return err
		}
		slot = preferred
	}
	if !equipment.Fits(item, slot) {
		return dnderr.SlotMismatchf("%s cannot be equipped in %s", item.GetName(), slot.DisplayName()).
			WithMeta("slot", slot).
			WithMeta("item_id", itemID)
	}

	if _, err := c.Inventory.Remove(itemID); err != nil {
		return err
	}
	previous, err := c.Equipment.Equip(item, slot)
	if err != nil {
		return err
	}
	if previous != nil {
		// the removal above freed a place for it
		if err := c.Inventory.Add(previous); err != nil {
			return dnderr.Wrap(err, "return displaced item")
		}
	}
	return nil
}

// Unequip moves the item in slot back to the inventory
func (c *Character) Unequip(slot equipment.Slot) (equipment.Equipment, error) {
	item := c.Equipment.Get(slot)
	if item == nil {
		return nil, dnderr.NotFoundf("nothing equipped in %s", slot.DisplayName()).
			WithMeta("slot", slot)
	}
	if c.Inventory.IsFull() {
		return nil, dnderr.InventoryFullf("no room in inventory to unequip %s", item.GetName()).
			WithMeta("slot", slot)
	}

	c.Equipment.Unequip(slot)
	if err := c.Inventory.Add(item); err != nil {
		_, _ = c.Equipment.Equip(item, slot)
		return nil, err
	}
	return item, nil
}

// Rest restores health to the maximum
func (c *Character) Rest() {
	c.CurrentHealth = c.MaxHealth
}

// Heal adds health up to the maximum and returns the amount actually healed
func (c *Character) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	before := c.CurrentHealth
	c.CurrentHealth = min(c.MaxHealth, c.CurrentHealth+amount)
	return c.CurrentHealth - before
}

// SufferDamage lowers current health by amount without dropping below floor
func (c *Character) SufferDamage(amount, floor int) {
	if amount < 0 {
		amount = 0
	}
	c.CurrentHealth = max(floor, c.CurrentHealth-amount)
	c.CurrentHealth = min(c.CurrentHealth, c.MaxHealth)
}

// HealthStatus describes current health in words
func (c *Character) HealthStatus() string {
	return DescribeHealth(c.CurrentHealth, c.MaxHealth)
}

// DescribeHealth maps a health ratio to a status phrase
func DescribeHealth(current, maximum int) string {
	if maximum <= 0 || current <= 0 {
		return "defeated"
	}
	percent := current * 100 / maximum
	switch {
	case current >= maximum:
		return "in perfect condition"
	case percent >= 75:
		return "slightly wounded"
	case percent >= 50:
		return "moderately wounded"
	case percent >= 25:
		return "badly wounded"
	default:
		return "critically wounded"
	}
}

// Clone makes a copy that can be mutated without touching c
func (c *Character) Clone() *Character {
	clone := *c
	if c.Equipment != nil {
		clone.Equipment = c.Equipment.Clone()
	}
	if c.Inventory != nil {
		clone.Inventory = c.Inventory.Clone()
	}
	return &clone
}

// Validate checks every invariant a stored character must hold
func (c *Character) Validate() error {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return dnderr.Validation("character name is required")
	}
	if len(name) > MaxNameLength {
		return dnderr.Validationf("character name longer than %d characters", MaxNameLength).
			WithMeta("character_name", c.Name)
	}
	if c.Level < 1 {
		return c.invalid("level must be at least 1")
	}
	if c.Experience < 0 {
		return c.invalid("experience cannot be negative")
	}
	if c.MaxHealth < 1 {
		return c.invalid("max health must be at least 1")
	}
	if c.CurrentHealth < 0 || c.CurrentHealth > c.MaxHealth {
		return c.invalid("current health must be between 0 and max health")
	}
	if c.Strength < 0 || c.Defense < 0 {
		return c.invalid("strength and defense cannot be negative")
	}
	if c.Equipment == nil || c.Inventory == nil {
		return c.invalid("equipment and inventory are required")
	}
	if c.Inventory.Len() > c.Inventory.Capacity() {
		return c.invalid("inventory over capacity")
	}

	seen := make(map[string]bool)
	for slot, item := range c.Equipment.Slots() {
		if err := equipment.Validate(item); err != nil {
			return dnderr.WrapWithCode(err, dnderr.CodeValidation, "invalid equipped item")
		}
		if !equipment.Fits(item, slot) {
			return dnderr.Validationf("%s occupies incompatible slot %s", item.GetName(), slot).
				WithMeta("character_name", c.Name)
		}
		if seen[item.GetID()] {
			return c.invalid("item " + item.GetID() + " appears twice")
		}
		seen[item.GetID()] = true
	}
	for _, item := range c.Inventory.Items() {
		if err := equipment.Validate(item); err != nil {
			return dnderr.WrapWithCode(err, dnderr.CodeValidation, "invalid inventory item")
		}
		if seen[item.GetID()] {
			return c.invalid("item " + item.GetID() + " appears twice")
		}
		seen[item.GetID()] = true
	}
	return nil
}

func (c *Character) invalid(reason string) error {
	return dnderr.Validation(reason).WithMeta("character_name", c.Name)
}
