package gateway

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/KirkDiggler/dungeon-engine/internal/domain/character"
	"github.com/KirkDiggler/dungeon-engine/internal/domain/equipment"
	"github.com/KirkDiggler/dungeon-engine/internal/domain/monster"
	"github.com/KirkDiggler/dungeon-engine/internal/domain/statistics"
	dnderr "github.com/KirkDiggler/dungeon-engine/internal/errors"
)

const (
	equipmentTypeWeapon    = "weapon"
	equipmentTypeArmor     = "armor"
	equipmentTypeAccessory = "accessory"
)

// EquipmentData wraps equipment with type information for JSON marshaling
type EquipmentData struct {
	Type      string          `json:"type"`
	Equipment json.RawMessage `json:"equipment"`
}

// CharacterData is the serialized form of a character
type CharacterData struct {
	Name              string                           `json:"name"`
	Emoji             string                           `json:"emoji"`
	Level             int                              `json:"level"`
	Experience        int                              `json:"experience"`
	CurrentHealth     int                              `json:"current_health"`
	MaxHealth         int                              `json:"max_health"`
	Strength          int                              `json:"strength"`
	Defense           int                              `json:"defense"`
	EquippedSlots     map[equipment.Slot]EquipmentData `json:"equipped_slots"`
	Inventory         []EquipmentData                  `json:"inventory"`
	InventoryCapacity int                              `json:"inventory_capacity"`
	CreatedAt         time.Time                        `json:"created_at"`
	LastPlayed        time.Time                        `json:"last_played"`
}

// TemplateData is the serialized form of a monster template
type TemplateData struct {
	Name               string             `json:"name"`
	Emoji              string             `json:"emoji"`
	Description        string             `json:"description"`
	Rarity             equipment.Rarity   `json:"rarity"`
	Levels             monster.LevelRange `json:"levels"`
	BaseHealth         int                `json:"base_health"`
	BaseStrength       int                `json:"base_strength"`
	BaseDefense        int                `json:"base_defense"`
	HealthPerLevel     int                `json:"health_per_level"`
	StrengthPerLevel   int                `json:"strength_per_level"`
	DefensePerLevel    int                `json:"defense_per_level"`
	BaseExperience     int                `json:"base_experience"`
	ExperiencePerLevel int                `json:"experience_per_level"`
	DropChance         int                `json:"drop_chance"`
}

// equipmentToData converts an Equipment value to EquipmentData for storage
func equipmentToData(eq equipment.Equipment) (EquipmentData, error) {
	var typeStr string
	switch eq.(type) {
	case *equipment.Weapon:
		typeStr = equipmentTypeWeapon
	case *equipment.Armor:
		typeStr = equipmentTypeArmor
	case *equipment.Accessory:
		typeStr = equipmentTypeAccessory
	default:
		return EquipmentData{}, dnderr.InvalidArgumentf("unsupported equipment type %T", eq)
	}

	data, err := json.Marshal(eq)
	if err != nil {
		return EquipmentData{}, dnderr.Wrapf(err, "failed to marshal %s", eq.GetID())
	}

	return EquipmentData{
		Type:      typeStr,
		Equipment: data,
	}, nil
}

// dataToEquipment converts EquipmentData back to its concrete Equipment type
func dataToEquipment(data EquipmentData) (equipment.Equipment, error) {
	var eq equipment.Equipment
	switch strings.ToLower(data.Type) {
	case equipmentTypeWeapon:
		eq = &equipment.Weapon{}
	case equipmentTypeArmor:
		eq = &equipment.Armor{}
	case equipmentTypeAccessory:
		eq = &equipment.Accessory{}
	default:
		return nil, dnderr.Validationf("unknown equipment type %q", data.Type)
	}

	if err := json.Unmarshal(data.Equipment, eq); err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeValidation, "failed to unmarshal "+data.Type)
	}
	if err := equipment.Validate(eq); err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeValidation, "stored item is invalid")
	}
	return eq, nil
}

// toCharacterData converts a character to its storage form
func toCharacterData(char *character.Character) (*CharacterData, error) {
	equipped := make(map[equipment.Slot]EquipmentData)
	for slot, item := range char.Equipment.Slots() {
		data, err := equipmentToData(item)
		if err != nil {
			return nil, dnderr.Wrap(err, "failed to convert equipped item")
		}
		equipped[slot] = data
	}

	inventory := make([]EquipmentData, 0, char.Inventory.Len())
	for _, item := range char.Inventory.Items() {
		data, err := equipmentToData(item)
		if err != nil {
			return nil, dnderr.Wrap(err, "failed to convert inventory item")
		}
		inventory = append(inventory, data)
	}

	return &CharacterData{
		Name:              char.Name,
		Emoji:             char.Emoji,
		Level:             char.Level,
		Experience:        char.Experience,
		CurrentHealth:     char.CurrentHealth,
		MaxHealth:         char.MaxHealth,
		Strength:          char.Strength,
		Defense:           char.Defense,
		EquippedSlots:     equipped,
		Inventory:         inventory,
		InventoryCapacity: char.Inventory.Capacity(),
	}, nil
}

// fromCharacterData rebuilds a character and checks its invariants
func fromCharacterData(data *CharacterData) (*character.Character, error) {
	char := &character.Character{
		Name:          data.Name,
		Emoji:         data.Emoji,
		Level:         data.Level,
		Experience:    data.Experience,
		CurrentHealth: data.CurrentHealth,
		MaxHealth:     data.MaxHealth,
		Strength:      data.Strength,
		Defense:       data.Defense,
		Equipment:     equipment.NewLoadout(),
		Inventory:     equipment.NewInventory(data.InventoryCapacity),
	}

	for _, slot := range equipment.AllSlots() {
		itemData, ok := data.EquippedSlots[slot]
		if !ok {
			continue
		}
		item, err := dataToEquipment(itemData)
		if err != nil {
			return nil, dnderr.Wrapf(err, "character %s slot %s", data.Name, slot)
		}
		if _, err := char.Equipment.Equip(item, slot); err != nil {
			return nil, dnderr.WrapWithCode(err, dnderr.CodeValidation, "stored loadout is invalid").
				WithMeta("character_name", data.Name)
		}
	}

	for _, itemData := range data.Inventory {
		item, err := dataToEquipment(itemData)
		if err != nil {
			return nil, dnderr.Wrapf(err, "character %s inventory", data.Name)
		}
		if err := char.Inventory.Add(item); err != nil {
			return nil, dnderr.WrapWithCode(err, dnderr.CodeValidation, "stored inventory is invalid").
				WithMeta("character_name", data.Name)
		}
	}

	if err := char.Validate(); err != nil {
		return nil, err
	}
	return char, nil
}

func toTemplateData(t *monster.Template) *TemplateData {
	return &TemplateData{
		Name:               t.Name,
		Emoji:              t.Emoji,
		Description:        t.Description,
		Rarity:             t.Rarity,
		Levels:             t.Levels,
		BaseHealth:         t.BaseHealth,
		BaseStrength:       t.BaseStrength,
		BaseDefense:        t.BaseDefense,
		HealthPerLevel:     t.HealthPerLevel,
		StrengthPerLevel:   t.StrengthPerLevel,
		DefensePerLevel:    t.DefensePerLevel,
		BaseExperience:     t.BaseExperience,
		ExperiencePerLevel: t.ExperiencePerLevel,
		DropChance:         t.DropChance,
	}
}

func fromTemplateData(d *TemplateData) *monster.Template {
	return &monster.Template{
		Name:               d.Name,
		Emoji:              d.Emoji,
		Description:        d.Description,
		Rarity:             d.Rarity,
		Levels:             d.Levels,
		BaseHealth:         d.BaseHealth,
		BaseStrength:       d.BaseStrength,
		BaseDefense:        d.BaseDefense,
		HealthPerLevel:     d.HealthPerLevel,
		StrengthPerLevel:   d.StrengthPerLevel,
		DefensePerLevel:    d.DefensePerLevel,
		BaseExperience:     d.BaseExperience,
		ExperiencePerLevel: d.ExperiencePerLevel,
		DropChance:         d.DropChance,
	}
}

// validateForSave runs the checks every backend applies before writing
func validateForSave(char *character.Character) error {
	if char == nil {
		return dnderr.InvalidArgument("character cannot be nil")
	}
	return char.Validate()
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return dnderr.InvalidArgument("character name is required")
	}
	return nil
}

func validateCommit(char *character.Character, delta *statistics.Delta) error {
	if err := validateForSave(char); err != nil {
		return err
	}
	if err := delta.Validate(); err != nil {
		return err
	}
	if delta.CharacterName != char.Name {
		return dnderr.InvalidArgumentf("statistics for %s cannot be committed with %s", delta.CharacterName, char.Name)
	}
	return nil
}

func notFound(name string) error {
	return dnderr.NotFoundf("character %q not found", name).
		WithMeta("character_name", name)
}

func validateTemplates(templates []*monster.Template) error {
	for _, t := range templates {
		if t == nil {
			return dnderr.InvalidArgument("template cannot be nil")
		}
		if err := t.Validate(); err != nil {
			return err
		}
	}
	return nil
}
