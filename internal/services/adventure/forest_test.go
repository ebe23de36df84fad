package adventure_test

import (
	"context"
	"testing"

	mockdice "github.com/KirkDiggler/dungeon-engine/internal/dice/mock"
	"github.com/KirkDiggler/dungeon-engine/internal/domain/monster"
	dnderr "github.com/KirkDiggler/dungeon-engine/internal/errors"
	"github.com/KirkDiggler/dungeon-engine/internal/services/adventure"
	mockmonster "github.com/KirkDiggler/dungeon-engine/internal/services/monster/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newForest(t *testing.T, rolls ...int) (*adventure.Forest, *mockmonster.MockService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	monsters := mockmonster.NewMockService(ctrl)
	roller := mockdice.NewManualMockRoller()
	roller.SetRolls(rolls)

	forest, err := adventure.NewForest(&adventure.ForestConfig{
		MonsterService: monsters,
		Roller:         roller,
	})
	require.NoError(t, err)
	return forest, monsters
}

func TestForest_Identity(t *testing.T) {
	forest, _ := newForest(t)

	assert.Equal(t, "forest", forest.Key())
	assert.Equal(t, "Forest", forest.Name())
	assert.Equal(t, "🌲", forest.Emoji())
	assert.Equal(t, monster.LevelRange{Min: 1, Max: 10}, forest.Levels())
	assert.NotEmpty(t, forest.Intro())
}

func TestForest_MonsterEncounter(t *testing.T) {
	forest, monsters := newForest(t, 80)
	wolf := &monster.Instance{Name: "Forest Wolf", Level: 4, MaxHealth: 40, CurrentHealth: 40}
	monsters.EXPECT().Generate(gomock.Any(), 3, monster.LevelRange{Min: 1, Max: 10}).Return(wolf, nil)

	enc, err := forest.GenerateEncounter(context.Background(), 3)

	require.NoError(t, err)
	assert.False(t, enc.IsPeaceful())
	assert.Equal(t, wolf, enc.Monster)
	assert.Empty(t, enc.PeacefulEvent)
}

func TestForest_PeacefulEvent(t *testing.T) {
	forest, _ := newForest(t, 81, 10)

	enc, err := forest.GenerateEncounter(context.Background(), 3)

	require.NoError(t, err)
	assert.True(t, enc.IsPeaceful())
	assert.Nil(t, enc.Monster)
	assert.Equal(t, "🦉 An owl hoots wisely from somewhere in the branches above.", enc.PeacefulEvent)
}

func TestForest_MonsterErrorsSurface(t *testing.T) {
	forest, monsters := newForest(t, 1)
	monsters.EXPECT().Generate(gomock.Any(), 1, gomock.Any()).Return(nil, dnderr.NotFound("no monster templates for level 1"))

	_, err := forest.GenerateEncounter(context.Background(), 1)

	assert.True(t, dnderr.IsNotFound(err))
}

func TestNewForest_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	monsters := mockmonster.NewMockService(ctrl)
	roller := mockdice.NewManualMockRoller()

	_, err := adventure.NewForest(&adventure.ForestConfig{Roller: roller})
	assert.True(t, dnderr.IsInvalidArgument(err))

	_, err = adventure.NewForest(&adventure.ForestConfig{MonsterService: monsters})
	assert.True(t, dnderr.IsInvalidArgument(err))

	_, err = adventure.NewForest(&adventure.ForestConfig{MonsterService: monsters, Roller: roller, EncounterRate: 101})
	assert.True(t, dnderr.IsInvalidArgument(err))

	_, err = adventure.NewForest(&adventure.ForestConfig{
		MonsterService: monsters,
		Roller:         roller,
		Levels:         monster.LevelRange{Min: 4, Max: 2},
	})
	assert.True(t, dnderr.IsInvalidArgument(err))

	custom, err := adventure.NewForest(&adventure.ForestConfig{
		MonsterService: monsters,
		Roller:         roller,
		Levels:         monster.LevelRange{Min: 1, Max: 5},
		EncounterRate:  50,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, custom.Levels().Max)
}

func TestRegistry(t *testing.T) {
	forest, _ := newForest(t)
	registry := adventure.NewRegistry(forest)

	got, err := registry.Get("forest")
	require.NoError(t, err)
	assert.Equal(t, forest, got)

	_, err = registry.Get("cave")
	assert.True(t, dnderr.IsNotFound(err))

	registry.Register(forest)
	assert.Len(t, registry.List(), 1)
}
