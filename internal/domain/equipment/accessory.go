package equipment

// AccessoryKind decides which slots an accessory fits
type AccessoryKind string

const (
	AccessoryNecklace AccessoryKind = "necklace"
	AccessoryRing     AccessoryKind = "ring"
)

// Accessory is a necklace or a ring; a ring fits either ring slot
type Accessory struct {
	Base Item          `json:"base"`
	Kind AccessoryKind `json:"kind"`
}

// NewAccessory creates a validated accessory
func NewAccessory(base Item, kind AccessoryKind) (*Accessory, error) {
	a := &Accessory{Base: base, Kind: kind}
	if err := Validate(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Accessory) GetID() string            { return a.Base.ID }
func (a *Accessory) GetName() string          { return a.Base.Name }
func (a *Accessory) GetCategory() Category    { return CategoryAccessory }
func (a *Accessory) GetRarity() Rarity        { return a.Base.Rarity }
func (a *Accessory) GetBonus() Bonus          { return a.Base.Bonus }
func (a *Accessory) GetLevelRequirement() int { return a.Base.LevelRequirement }
func (a *Accessory) GetValue() int            { return a.Base.Value }

func (a *Accessory) CompatibleSlots() []Slot {
	if a.Kind == AccessoryRing {
		return []Slot{SlotRing1, SlotRing2}
	}
	if a.Kind == AccessoryNecklace {
		return []Slot{SlotNecklace}
	}
	return nil
}
