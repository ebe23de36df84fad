package equipment

import dnderr "github.com/KirkDiggler/dungeon-engine/internal/errors"

// Loadout maps slots to the items currently equipped in them.
// Empty slots are absent from the map.
type Loadout struct {
	slots map[Slot]Equipment
}

// NewLoadout creates an empty loadout
func NewLoadout() *Loadout {
	return &Loadout{slots: make(map[Slot]Equipment)}
}

// Get returns the item in slot, or nil
func (l *Loadout) Get(slot Slot) Equipment {
	return l.slots[slot]
}

// Len returns the number of occupied slots
func (l *Loadout) Len() int {
	return len(l.slots)
}

// Equip places item in slot and returns whatever it displaced.
// An incompatible slot fails with a slot mismatch and changes nothing.
func (l *Loadout) Equip(item Equipment, slot Slot) (Equipment, error) {
	if item == nil {
		return nil, dnderr.InvalidArgument("item cannot be nil")
	}
	if !slot.IsValid() {
		return nil, dnderr.SlotMismatchf("unknown slot %q", slot).
			WithMeta("slot", slot)
	}
	if !Fits(item, slot) {
		return nil, dnderr.SlotMismatchf("%s cannot be equipped in %s", item.GetName(), slot.DisplayName()).
			WithMeta("slot", slot).
			WithMeta("item_id", item.GetID())
	}

	previous := l.slots[slot]
	l.slots[slot] = item
	return previous, nil
}

// Unequip empties slot and returns the removed item, or nil if it was empty
func (l *Loadout) Unequip(slot Slot) Equipment {
	item := l.slots[slot]
	delete(l.slots, slot)
	return item
}

// PreferredSlot picks the first empty compatible slot, falling back to the first compatible one
func (l *Loadout) PreferredSlot(item Equipment) (Slot, error) {
	compatible := item.CompatibleSlots()
	if len(compatible) == 0 {
		return "", dnderr.SlotMismatchf("%s has no compatible slot", item.GetName()).
			WithMeta("item_id", item.GetID())
	}
	for _, slot := range compatible {
		if l.slots[slot] == nil {
			return slot, nil
		}
	}
	return compatible[0], nil
}

// SlotOf returns the slot holding the item with the given id
func (l *Loadout) SlotOf(id string) (Slot, bool) {
	for slot, item := range l.slots {
		if item.GetID() == id {
			return slot, true
		}
	}
	return "", false
}

// Slots returns a copy of the occupied slots
func (l *Loadout) Slots() map[Slot]Equipment {
	out := make(map[Slot]Equipment, len(l.slots))
	for slot, item := range l.slots {
		out[slot] = item
	}
	return out
}

// Items returns the equipped items in slot order
func (l *Loadout) Items() []Equipment {
	items := make([]Equipment, 0, len(l.slots))
	for _, slot := range allSlots {
		if item, ok := l.slots[slot]; ok {
			items = append(items, item)
		}
	}
	return items
}

// Bonuses returns each equipped item's bonus in slot order
func (l *Loadout) Bonuses() []Bonus {
	items := l.Items()
	bonuses := make([]Bonus, len(items))
	for i, item := range items {
		bonuses[i] = item.GetBonus()
	}
	return bonuses
}

// TotalBonus sums every equipped bonus
func (l *Loadout) TotalBonus() Bonus {
	var total Bonus
	for _, b := range l.Bonuses() {
		total = total.Add(b)
	}
	return total
}

// Clone copies the slot mapping; items are immutable and shared
func (l *Loadout) Clone() *Loadout {
	return &Loadout{slots: l.Slots()}
}
