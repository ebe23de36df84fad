package equipment

import (
	"sort"
	"strings"

	dnderr "github.com/KirkDiggler/dungeon-engine/internal/errors"
)

// DefaultInventoryCapacity is the number of unequipped items a character can carry
const DefaultInventoryCapacity = 50

// SortKey selects an inventory ordering
type SortKey string

const (
	SortByName   SortKey = "name"
	SortByValue  SortKey = "value"
	SortByRarity SortKey = "rarity"
	SortByLevel  SortKey = "level"
)

// Inventory is an ordered, bounded list of unequipped items
type Inventory struct {
	capacity int
	items    []Equipment
}

// NewInventory creates an empty inventory; a non-positive capacity uses the default
func NewInventory(capacity int) *Inventory {
	if capacity <= 0 {
		capacity = DefaultInventoryCapacity
	}
	return &Inventory{
		capacity: capacity,
		items:    make([]Equipment, 0),
	}
}

// Capacity returns the maximum number of items
func (inv *Inventory) Capacity() int {
	return inv.capacity
}

// Len returns the number of items held
func (inv *Inventory) Len() int {
	return len(inv.items)
}

// IsFull reports whether no more items fit
func (inv *Inventory) IsFull() bool {
	return len(inv.items) >= inv.capacity
}

// Add appends item to the end of the inventory
func (inv *Inventory) Add(item Equipment) error {
	if item == nil {
		return dnderr.InvalidArgument("item cannot be nil")
	}
	if inv.IsFull() {
		return dnderr.InventoryFullf("inventory is full (%d items)", inv.capacity).
			WithMeta("item_id", item.GetID())
	}
	if _, ok := inv.Find(item.GetID()); ok {
		return dnderr.AlreadyExistsf("item %s is already in the inventory", item.GetID()).
			WithMeta("item_id", item.GetID())
	}
	inv.items = append(inv.items, item)
	return nil
}

// Remove takes the item with id out of the inventory, keeping the order of the rest
func (inv *Inventory) Remove(id string) (Equipment, error) {
	for i, item := range inv.items {
		if item.GetID() == id {
			inv.items = append(inv.items[:i:i], inv.items[i+1:]...)
			return item, nil
		}
	}
	return nil, dnderr.NotFoundf("item %s not in inventory", id).
		WithMeta("item_id", id)
}

// Find returns the item with id
func (inv *Inventory) Find(id string) (Equipment, bool) {
	for _, item := range inv.items {
		if item.GetID() == id {
			return item, true
		}
	}
	return nil, false
}

// Items returns a copy of the items in order
func (inv *Inventory) Items() []Equipment {
	out := make([]Equipment, len(inv.items))
	copy(out, inv.items)
	return out
}

// TotalValue sums the value of every held item
func (inv *Inventory) TotalValue() int {
	total := 0
	for _, item := range inv.items {
		total += item.GetValue()
	}
	return total
}

// Sort reorders the inventory. Value and rarity sort highest first.
func (inv *Inventory) Sort(key SortKey) error {
	var less func(a, b Equipment) bool
	switch key {
	case SortByName:
		less = func(a, b Equipment) bool {
			return strings.ToLower(a.GetName()) < strings.ToLower(b.GetName())
		}
	case SortByValue:
		less = func(a, b Equipment) bool { return a.GetValue() > b.GetValue() }
	case SortByRarity:
		less = func(a, b Equipment) bool { return a.GetRarity().Rank() > b.GetRarity().Rank() }
	case SortByLevel:
		less = func(a, b Equipment) bool { return a.GetLevelRequirement() < b.GetLevelRequirement() }
	default:
		return dnderr.InvalidArgumentf("unknown sort key %q", key)
	}

	sort.SliceStable(inv.items, func(i, j int) bool {
		return less(inv.items[i], inv.items[j])
	})
	return nil
}

// Clone copies the item list; items are immutable and shared
func (inv *Inventory) Clone() *Inventory {
	return &Inventory{
		capacity: inv.capacity,
		items:    inv.Items(),
	}
}
