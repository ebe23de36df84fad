package monster

import "github.com/KirkDiggler/dungeon-engine/internal/domain/equipment"

// DefaultTemplates returns the archetypes seeded into a fresh store
func DefaultTemplates() []*Template {
	return []*Template{
		{
			Name:               "Goblin",
			Emoji:              "👺",
			Description:        "A small, sneaky creature with sharp teeth",
			Rarity:             equipment.RarityCommon,
			Levels:             LevelRange{Min: 1, Max: 2},
			BaseHealth:         20,
			BaseStrength:       3,
			HealthPerLevel:     5,
			StrengthPerLevel:   1,
			BaseExperience:     20,
			ExperiencePerLevel: 10,
			DropChance:         15,
		},
		{
			Name:               "Forest Wolf",
			Emoji:              "🐺",
			Description:        "A wild wolf with keen senses",
			Rarity:             equipment.RarityCommon,
			Levels:             LevelRange{Min: 1, Max: 3},
			BaseHealth:         25,
			BaseStrength:       4,
			HealthPerLevel:     5,
			StrengthPerLevel:   1,
			BaseExperience:     25,
			ExperiencePerLevel: 10,
			DropChance:         10,
		},
		{
			Name:               "Orc Warrior",
			Emoji:              "👹",
			Description:        "A brutish warrior with crude weapons",
			Rarity:             equipment.RarityUncommon,
			Levels:             LevelRange{Min: 2, Max: 4},
			BaseHealth:         28,
			BaseStrength:       4,
			BaseDefense:        1,
			HealthPerLevel:     7,
			StrengthPerLevel:   1,
			BaseExperience:     30,
			ExperiencePerLevel: 15,
			DropChance:         25,
		},
		{
			Name:               "Giant Spider",
			Emoji:              "🕷️",
			Description:        "A venomous arachnid of unusual size",
			Rarity:             equipment.RarityCommon,
			Levels:             LevelRange{Min: 2, Max: 3},
			BaseHealth:         18,
			BaseStrength:       3,
			HealthPerLevel:     4,
			StrengthPerLevel:   1,
			BaseExperience:     25,
			ExperiencePerLevel: 10,
			DropChance:         15,
		},
		{
			Name:               "Skeleton Warrior",
			Emoji:              "💀",
			Description:        "Animated bones wielding ancient weapons",
			Rarity:             equipment.RarityUncommon,
			Levels:             LevelRange{Min: 3, Max: 5},
			BaseHealth:         20,
			BaseStrength:       4,
			BaseDefense:        2,
			HealthPerLevel:     5,
			StrengthPerLevel:   1,
			BaseExperience:     35,
			ExperiencePerLevel: 15,
			DropChance:         25,
		},
		{
			Name:               "Cave Troll",
			Emoji:              "🧌",
			Description:        "A massive creature with regenerative abilities",
			Rarity:             equipment.RarityRare,
			Levels:             LevelRange{Min: 4, Max: 6},
			BaseHealth:         30,
			BaseStrength:       5,
			BaseDefense:        1,
			HealthPerLevel:     10,
			StrengthPerLevel:   1,
			DefensePerLevel:    1,
			BaseExperience:     50,
			ExperiencePerLevel: 20,
			DropChance:         40,
		},
		{
			Name:               "Dark Mage",
			Emoji:              "🧙‍♂️",
			Description:        "A spellcaster corrupted by dark magic",
			Rarity:             equipment.RarityUncommon,
			Levels:             LevelRange{Min: 3, Max: 6},
			BaseHealth:         18,
			BaseStrength:       5,
			BaseDefense:        1,
			HealthPerLevel:     5,
			StrengthPerLevel:   1,
			BaseExperience:     40,
			ExperiencePerLevel: 15,
			DropChance:         30,
		},
		{
			Name:               "Fire Drake",
			Emoji:              "🐉",
			Description:        "A young dragon breathing scorching flames",
			Rarity:             equipment.RarityRare,
			Levels:             LevelRange{Min: 5, Max: 8},
			BaseHealth:         40,
			BaseStrength:       6,
			BaseDefense:        1,
			HealthPerLevel:     10,
			StrengthPerLevel:   1,
			DefensePerLevel:    1,
			BaseExperience:     60,
			ExperiencePerLevel: 25,
			DropChance:         45,
		},
		{
			Name:               "Shadow Beast",
			Emoji:              "👤",
			Description:        "A creature born from pure darkness",
			Rarity:             equipment.RarityRare,
			Levels:             LevelRange{Min: 6, Max: 8},
			BaseHealth:         40,
			BaseStrength:       7,
			BaseDefense:        2,
			HealthPerLevel:     6,
			StrengthPerLevel:   1,
			BaseExperience:     70,
			ExperiencePerLevel: 25,
			DropChance:         45,
		},
		{
			Name:               "Ancient Dragon",
			Emoji:              "🐲",
			Description:        "A legendary beast of immense power",
			Rarity:             equipment.RarityLegendary,
			Levels:             LevelRange{Min: 8, Max: 10},
			BaseHealth:         70,
			BaseStrength:       11,
			BaseDefense:        3,
			HealthPerLevel:     10,
			StrengthPerLevel:   1,
			DefensePerLevel:    1,
			BaseExperience:     150,
			ExperiencePerLevel: 40,
			DropChance:         90,
		},
		{
			Name:               "Lich King",
			Emoji:              "👑",
			Description:        "An undead sorcerer of terrible might",
			Rarity:             equipment.RarityLegendary,
			Levels:             LevelRange{Min: 9, Max: 10},
			BaseHealth:         40,
			BaseStrength:       8,
			BaseDefense:        2,
			HealthPerLevel:     10,
			StrengthPerLevel:   1,
			DefensePerLevel:    1,
			BaseExperience:     140,
			ExperiencePerLevel: 40,
			DropChance:         90,
		},
	}
}
