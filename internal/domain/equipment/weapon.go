package equipment

// WeaponType is the weapon family, used for naming and display only
type WeaponType string

const (
	WeaponTypeSword  WeaponType = "sword"
	WeaponTypeAxe    WeaponType = "axe"
	WeaponTypeDagger WeaponType = "dagger"
	WeaponTypeMace   WeaponType = "mace"
	WeaponTypeStaff  WeaponType = "staff"
)

// Weapon fits either hand; its damage lives in Base.Bonus.Damage
type Weapon struct {
	Base       Item       `json:"base"`
	WeaponType WeaponType `json:"weapon_type"`
}

// NewWeapon creates a validated weapon
func NewWeapon(base Item, weaponType WeaponType) (*Weapon, error) {
	w := &Weapon{Base: base, WeaponType: weaponType}
	if err := Validate(w); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *Weapon) GetID() string            { return w.Base.ID }
func (w *Weapon) GetName() string          { return w.Base.Name }
func (w *Weapon) GetCategory() Category    { return CategoryWeapon }
func (w *Weapon) GetRarity() Rarity        { return w.Base.Rarity }
func (w *Weapon) GetBonus() Bonus          { return w.Base.Bonus }
func (w *Weapon) GetLevelRequirement() int { return w.Base.LevelRequirement }
func (w *Weapon) GetValue() int            { return w.Base.Value }
func (w *Weapon) CompatibleSlots() []Slot  { return []Slot{SlotMainHand, SlotOffHand} }
