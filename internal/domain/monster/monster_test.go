package monster_test

import (
	"testing"

	"github.com/KirkDiggler/dungeon-engine/internal/domain/monster"
	dnderr "github.com/KirkDiggler/dungeon-engine/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawnScalesFromLevelOne(t *testing.T) {
	tmpl := &monster.Template{
		Name:               "Goblin",
		Rarity:             "common",
		Levels:             monster.LevelRange{Min: 1, Max: 3},
		BaseHealth:         20,
		HealthPerLevel:     5,
		BaseStrength:       3,
		StrengthPerLevel:   1,
		BaseDefense:        1,
		DefensePerLevel:    2,
		BaseExperience:     20,
		ExperiencePerLevel: 10,
		DropChance:         15,
	}

	one, err := tmpl.Spawn(1)
	require.NoError(t, err)
	assert.Equal(t, 20, one.MaxHealth)
	assert.Equal(t, 20, one.CurrentHealth)
	assert.Equal(t, 3, one.Strength)
	assert.Equal(t, 1, one.Defense)
	assert.Equal(t, 20, one.ExperienceReward)

	three, err := tmpl.Spawn(3)
	require.NoError(t, err)
	assert.Equal(t, 30, three.MaxHealth)
	assert.Equal(t, 5, three.Strength)
	assert.Equal(t, 5, three.Defense)
	assert.Equal(t, 40, three.ExperienceReward)
	assert.Equal(t, 15, three.DropChance)
	assert.True(t, three.IsAlive())

	_, err = tmpl.Spawn(0)
	assert.True(t, dnderr.IsInvalidArgument(err))
}

func TestDefaultTemplatesAreValidAndCoverLevels(t *testing.T) {
	templates := monster.DefaultTemplates()
	require.Len(t, templates, 11)

	names := map[string]bool{}
	for _, tmpl := range templates {
		require.NoError(t, tmpl.Validate(), tmpl.Name)
		assert.False(t, names[tmpl.Name], "duplicate %s", tmpl.Name)
		names[tmpl.Name] = true
	}

	for level := 1; level <= 10; level++ {
		covered := false
		for _, tmpl := range templates {
			if tmpl.Levels.Contains(level) {
				covered = true
			}
		}
		assert.True(t, covered, "no template for level %d", level)
	}
}

func TestTemplateValidate(t *testing.T) {
	valid := func() *monster.Template {
		return &monster.Template{Name: "Rat", Rarity: "common", Levels: monster.LevelRange{Min: 1, Max: 1}, BaseHealth: 5}
	}
	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(*monster.Template)
	}{
		{"no name", func(m *monster.Template) { m.Name = "" }},
		{"bad rarity", func(m *monster.Template) { m.Rarity = "mythic" }},
		{"inverted range", func(m *monster.Template) { m.Levels = monster.LevelRange{Min: 4, Max: 2} }},
		{"zero health", func(m *monster.Template) { m.BaseHealth = 0 }},
		{"negative scaling", func(m *monster.Template) { m.StrengthPerLevel = -1 }},
		{"drop chance over 100", func(m *monster.Template) { m.DropChance = 101 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := valid()
			tt.mutate(m)
			assert.True(t, dnderr.IsValidation(m.Validate()))
		})
	}
}

func TestLevelRange(t *testing.T) {
	r := monster.LevelRange{Min: 1, Max: 10}

	assert.Equal(t, 1, r.Clamp(-1))
	assert.Equal(t, 10, r.Clamp(12))
	assert.Equal(t, 5, r.Clamp(5))
	assert.True(t, r.Contains(10))
	assert.False(t, r.Contains(11))
	assert.True(t, r.Overlaps(monster.LevelRange{Min: 10, Max: 12}))
	assert.False(t, r.Overlaps(monster.LevelRange{Min: 11, Max: 12}))
	assert.Error(t, monster.LevelRange{Min: 0, Max: 3}.Validate())
}
