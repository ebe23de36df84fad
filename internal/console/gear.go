package console

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/dungeon-engine/internal/domain/character"
	"github.com/KirkDiggler/dungeon-engine/internal/domain/equipment"
	characterService "github.com/KirkDiggler/dungeon-engine/internal/services/character"
)

var sortOptions = []equipment.SortKey{
	equipment.SortByName,
	equipment.SortByValue,
	equipment.SortByRarity,
	equipment.SortByLevel,
}

func (g *Game) characterSheet(char *character.Character) {
	base := char.BaseStats()
	eff := char.EffectiveStats()
	progression := g.provider.Progression

	g.println("")
	g.printf("📊 %s %s\n", char.Emoji, char.Name)
	g.printf("   Level %d  XP %d/%d\n", char.Level, char.Experience, progression.Threshold(char.Level))
	g.printf("   Health   %d/%d (%s)\n", eff.CurrentHealth, eff.MaxHealth, character.DescribeHealth(eff.CurrentHealth, eff.MaxHealth))
	g.printf("   Strength %d%s\n", eff.Strength, bonusSuffix(eff.Strength-base.Strength))
	g.printf("   Defense  %d%s\n", eff.Defense, bonusSuffix(eff.Defense-base.Defense))
	g.printf("   Attack   %d\n", eff.Attack())
	g.printf("   Gold value carried: %d\n", char.Inventory.TotalValue())
}

// inventory lists carried items; choosing one equips it
func (g *Game) inventory(ctx context.Context, char *character.Character) error {
	for {
		items := char.Inventory.Items()
		if len(items) == 0 {
			g.println("🎒 Your bag is empty.")
			return nil
		}

		options := make([]string, 0, len(items)+2)
		for _, item := range items {
			options = append(options, "Equip "+describeItem(item))
		}
		options = append(options, "🔀 Sort", "↩️ Back")

		choice, err := g.menu(fmt.Sprintf("🎒 Inventory (%d/%d)", char.Inventory.Len(), char.Inventory.Capacity()), options)
		if err != nil {
			return err
		}

		switch {
		case choice == len(options):
			return nil
		case choice == len(options)-1:
			char, err = g.sortInventory(ctx, char)
		default:
			item := items[choice-1]
			char, err = g.provider.CharacterService.Equip(ctx, &characterService.EquipInput{
				CharacterName: char.Name,
				ItemID:        item.GetID(),
			})
			if err == nil {
				g.printf("🛡️ You equip the %s.\n", item.GetName())
			}
		}
		if err != nil {
			return err
		}
	}
}

func (g *Game) sortInventory(ctx context.Context, char *character.Character) (*character.Character, error) {
	options := make([]string, 0, len(sortOptions))
	for _, key := range sortOptions {
		options = append(options, "By "+string(key))
	}
	choice, err := g.menu("Sort inventory", options)
	if err != nil {
		return nil, err
	}
	return g.provider.CharacterService.SortInventory(ctx, char.Name, sortOptions[choice-1])
}

// equipped lists every slot; choosing a filled one unequips it
func (g *Game) equipped(ctx context.Context, char *character.Character) error {
	for {
		slots := equipment.AllSlots()
		options := make([]string, 0, len(slots)+1)
		for _, slot := range slots {
			label := "(empty)"
			if item := char.Equipment.Get(slot); item != nil {
				label = describeItem(item)
			}
			options = append(options, fmt.Sprintf("%-9s %s", slot, label))
		}
		options = append(options, "↩️ Back")

		choice, err := g.menu("🛡️ Equipment (choose a slot to unequip)", options)
		if err != nil {
			return err
		}
		if choice == len(options) {
			return nil
		}

		slot := slots[choice-1]
		if char.Equipment.Get(slot) == nil {
			g.println("Nothing is equipped there.")
			continue
		}
		char, err = g.provider.CharacterService.Unequip(ctx, char.Name, slot)
		if err != nil {
			return err
		}
		g.printf("You put away what was in %s.\n", slot)
	}
}

func describeItem(item equipment.Equipment) string {
	return fmt.Sprintf("%s [%s, lvl %d] %s", item.GetName(), item.GetRarity(), item.GetLevelRequirement(), describeBonus(item.GetBonus()))
}

func describeBonus(b equipment.Bonus) string {
	var parts []string
	for _, p := range []struct {
		label string
		value int
	}{
		{"STR", b.Strength},
		{"HP", b.Health},
		{"DEF", b.Defense},
		{"DMG", b.Damage},
	} {
		if p.value != 0 {
			parts = append(parts, fmt.Sprintf("+%d %s", p.value, p.label))
		}
	}
	if len(parts) == 0 {
		return "no bonus"
	}
	return strings.Join(parts, ", ")
}

func bonusSuffix(bonus int) string {
	if bonus == 0 {
		return ""
	}
	return fmt.Sprintf(" (+%d from gear)", bonus)
}
