package equipment

import dnderr "github.com/KirkDiggler/dungeon-engine/internal/errors"

// Armor fits exactly one armor slot
type Armor struct {
	Base Item `json:"base"`
	Slot Slot `json:"slot"`
}

// NewArmor creates a validated armor piece for one of head, body, legs, hands or feet
func NewArmor(base Item, slot Slot) (*Armor, error) {
	if !slot.IsArmorSlot() {
		return nil, dnderr.SlotMismatchf("armor cannot be made for slot %q", slot).
			WithMeta("slot", slot)
	}
	a := &Armor{Base: base, Slot: slot}
	if err := Validate(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Armor) GetID() string            { return a.Base.ID }
func (a *Armor) GetName() string          { return a.Base.Name }
func (a *Armor) GetCategory() Category    { return CategoryArmor }
func (a *Armor) GetRarity() Rarity        { return a.Base.Rarity }
func (a *Armor) GetBonus() Bonus          { return a.Base.Bonus }
func (a *Armor) GetLevelRequirement() int { return a.Base.LevelRequirement }
func (a *Armor) GetValue() int            { return a.Base.Value }
func (a *Armor) CompatibleSlots() []Slot  { return []Slot{a.Slot} }
