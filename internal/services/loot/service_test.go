package loot_test

import (
	"context"
	"testing"

	mockdice "github.com/KirkDiggler/dungeon-engine/internal/dice/mock"
	"github.com/KirkDiggler/dungeon-engine/internal/domain/equipment"
	"github.com/KirkDiggler/dungeon-engine/internal/domain/monster"
	dnderr "github.com/KirkDiggler/dungeon-engine/internal/errors"
	"github.com/KirkDiggler/dungeon-engine/internal/services/loot"
	"github.com/KirkDiggler/dungeon-engine/internal/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(rolls ...int) (loot.Service, *mockdice.ManualMockRoller) {
	roller := mockdice.NewManualMockRoller()
	roller.SetRolls(rolls)
	return loot.NewService(&loot.ServiceConfig{
		Roller:        roller,
		UUIDGenerator: &uuid.SequenceGenerator{Prefix: "loot"},
	}), roller
}

func TestRollDrop_NoDropWhenRollExceedsChance(t *testing.T) {
	svc, roller := newService(16)

	item, err := svc.RollDrop(context.Background(), &monster.Instance{Name: "Goblin", Level: 2, DropChance: 15})

	require.NoError(t, err)
	assert.Nil(t, item)
	assert.Zero(t, roller.Remaining())
}

func TestRollDrop_ZeroChanceNeverRolls(t *testing.T) {
	svc, roller := newService(1)

	item, err := svc.RollDrop(context.Background(), &monster.Instance{Name: "Slime", Level: 1})

	require.NoError(t, err)
	assert.Nil(t, item)
	assert.Equal(t, 1, roller.Remaining(), "no die is consumed")
}

func TestRollDrop_LegendarySword(t *testing.T) {
	// drop roll, catalog pick, rarity roll
	svc, _ := newService(15, 1, 100)

	item, err := svc.RollDrop(context.Background(), &monster.Instance{Name: "Goblin", Level: 4, DropChance: 15})

	require.NoError(t, err)
	require.NotNil(t, item)
	weapon, ok := item.(*equipment.Weapon)
	require.True(t, ok)
	assert.Equal(t, "loot-1", weapon.GetID())
	assert.Equal(t, "Mythic Sword", weapon.GetName())
	assert.Equal(t, equipment.RarityLegendary, weapon.GetRarity())
	assert.Equal(t, equipment.WeaponTypeSword, weapon.WeaponType)
	assert.Equal(t, 3, weapon.Base.LevelRequirement)
	assert.Equal(t, 3*5+2, weapon.Base.Bonus.Damage)
	assert.Zero(t, weapon.Base.Bonus.Strength)
	assert.Equal(t, 25*5+5*4, weapon.Base.Value)
}

func TestGenerateItem_CommonArmorAtLevelOne(t *testing.T) {
	// Tunic, common
	svc, _ := newService(7, 60)

	item, err := svc.GenerateItem(context.Background(), 1)

	require.NoError(t, err)
	armor, ok := item.(*equipment.Armor)
	require.True(t, ok)
	assert.Equal(t, "Worn Tunic", armor.GetName())
	assert.Equal(t, equipment.SlotBody, armor.Slot)
	assert.Equal(t, 1, armor.Base.LevelRequirement)
	assert.Equal(t, equipment.Bonus{Defense: 2, Health: 5}, armor.Base.Bonus)
}

func TestGenerateItem_Accessory(t *testing.T) {
	svc, _ := newService(12, 90)

	item, err := svc.GenerateItem(context.Background(), 6)

	require.NoError(t, err)
	ring, ok := item.(*equipment.Accessory)
	require.True(t, ok)
	assert.Equal(t, "Fine Band", ring.GetName())
	assert.Equal(t, equipment.AccessoryRing, ring.Kind)
	assert.Equal(t, 1*3+3, ring.Base.Bonus.Strength)
	assert.Equal(t, 5, ring.Base.LevelRequirement)
}

func TestGenerateItem_Errors(t *testing.T) {
	svc, _ := newService()

	_, err := svc.GenerateItem(context.Background(), 0)
	assert.True(t, dnderr.IsInvalidArgument(err))

	_, err = svc.GenerateItem(context.Background(), 3)
	assert.Error(t, err, "roller out of scripted values")

	_, err = svc.RollDrop(context.Background(), nil)
	assert.True(t, dnderr.IsInvalidArgument(err))
}

func TestRarityFor(t *testing.T) {
	tests := []struct {
		roll int
		want equipment.Rarity
	}{
		{1, equipment.RarityCommon},
		{60, equipment.RarityCommon},
		{61, equipment.RarityUncommon},
		{85, equipment.RarityUncommon},
		{86, equipment.RarityRare},
		{95, equipment.RarityRare},
		{96, equipment.RarityEpic},
		{99, equipment.RarityEpic},
		{100, equipment.RarityLegendary},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, loot.RarityFor(tt.roll), "roll %d", tt.roll)
	}
}

func TestScaleBonus(t *testing.T) {
	got := loot.ScaleBonus(equipment.Bonus{Damage: 2, Health: 5}, 2, 5)
	assert.Equal(t, equipment.Bonus{Damage: 6, Health: 12}, got)
}

func TestNewServicePanicsWithoutRoller(t *testing.T) {
	assert.Panics(t, func() { loot.NewService(&loot.ServiceConfig{}) })
}
