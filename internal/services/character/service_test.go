package character_test

import (
	"context"
	"errors"
	"testing"

	domain "github.com/KirkDiggler/dungeon-engine/internal/domain/character"
	"github.com/KirkDiggler/dungeon-engine/internal/domain/equipment"
	dnderr "github.com/KirkDiggler/dungeon-engine/internal/errors"
	"github.com/KirkDiggler/dungeon-engine/internal/repositories/gateway"
	mockgateway "github.com/KirkDiggler/dungeon-engine/internal/repositories/gateway/mock"
	"github.com/KirkDiggler/dungeon-engine/internal/services/character"
	"github.com/KirkDiggler/dungeon-engine/internal/testutils"
	"github.com/KirkDiggler/dungeon-engine/internal/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"
)

type CharacterServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	store   *gateway.InMemoryGateway
	service character.Service
}

func (s *CharacterServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = gateway.NewInMemory(testutils.NewStepClock())
	s.service = character.NewService(&character.ServiceConfig{
		Gateway:       s.store,
		UUIDGenerator: &uuid.SequenceGenerator{Prefix: "item"},
		Logger:        zaptest.NewLogger(s.T()),
	})
}

func (s *CharacterServiceTestSuite) TestCreateEquipsStarterSword() {
	char, err := s.service.Create(s.ctx, &character.CreateInput{Name: " Aria ", Emoji: "🧝"})

	s.Require().NoError(err)
	s.Equal("Aria", char.Name)
	s.Equal("🧝", char.Emoji)
	s.Equal(1, char.Level)
	sword := char.Equipment.Get(equipment.SlotMainHand)
	s.Require().NotNil(sword)
	s.Equal("item-1", sword.GetID())
	s.Equal("Rusty Sword", sword.GetName())
	s.Zero(char.Inventory.Len())
	s.Equal(domain.DefaultStrength+2, char.EffectiveStats().Attack())

	stored, err := s.store.Load(s.ctx, "Aria")
	s.Require().NoError(err)
	s.Equal("item-1", stored.Equipment.Get(equipment.SlotMainHand).GetID())
}

func (s *CharacterServiceTestSuite) TestCreateRejectsDuplicates() {
	_, err := s.service.Create(s.ctx, &character.CreateInput{Name: "Aria"})
	s.Require().NoError(err)

	_, err = s.service.Create(s.ctx, &character.CreateInput{Name: "Aria"})

	s.True(dnderr.IsAlreadyExists(err))
}

func (s *CharacterServiceTestSuite) TestCreateRejectsEmptyName() {
	_, err := s.service.Create(s.ctx, &character.CreateInput{Name: "   "})
	s.True(dnderr.IsValidation(err))

	_, err = s.service.Create(s.ctx, nil)
	s.True(dnderr.IsInvalidArgument(err))
}

func (s *CharacterServiceTestSuite) TestEquipAndUnequipRoundTrip() {
	char := testutils.CreateTestCharacter("Bram")
	s.Require().NoError(s.store.Save(s.ctx, char))
	before := char.EffectiveStats()

	equipped, err := s.service.Equip(s.ctx, &character.EquipInput{CharacterName: "Bram", ItemID: "Bram-ring"})
	s.Require().NoError(err)
	s.Equal("Bram-ring", equipped.Equipment.Get(equipment.SlotRing1).GetID())
	s.NotEqual(before, equipped.EffectiveStats())

	unequipped, err := s.service.Unequip(s.ctx, "Bram", equipment.SlotRing1)
	s.Require().NoError(err)
	s.Equal(before, unequipped.EffectiveStats())

	stored, err := s.store.Load(s.ctx, "Bram")
	s.Require().NoError(err)
	s.Nil(stored.Equipment.Get(equipment.SlotRing1))
	_, ok := stored.Inventory.Find("Bram-ring")
	s.True(ok)
}

func (s *CharacterServiceTestSuite) TestEquipSlotMismatchSavesNothing() {
	char := testutils.CreateTestCharacter("Bram")
	s.Require().NoError(s.store.Save(s.ctx, char))

	_, err := s.service.Equip(s.ctx, &character.EquipInput{
		CharacterName: "Bram",
		ItemID:        "Bram-ring",
		Slot:          equipment.SlotMainHand,
	})

	s.True(dnderr.IsSlotMismatch(err))
	stored, err := s.store.Load(s.ctx, "Bram")
	s.Require().NoError(err)
	s.Equal(char.Equipment.Slots(), stored.Equipment.Slots())
	s.Equal(1, stored.Inventory.Len())
}

func (s *CharacterServiceTestSuite) TestEquipValidatesInput() {
	_, err := s.service.Equip(s.ctx, &character.EquipInput{CharacterName: "Bram"})
	s.True(dnderr.IsInvalidArgument(err))

	_, err = s.service.Equip(s.ctx, &character.EquipInput{CharacterName: "Bram", ItemID: "x", Slot: "tail"})
	s.True(dnderr.IsInvalidArgument(err))

	_, err = s.service.Unequip(s.ctx, "Bram", "tail")
	s.True(dnderr.IsInvalidArgument(err))

	_, err = s.service.Equip(s.ctx, &character.EquipInput{CharacterName: "Nobody", ItemID: "x"})
	s.True(dnderr.IsNotFound(err))
}

func (s *CharacterServiceTestSuite) TestRest() {
	char := testutils.CreateTestCharacter("Bram")
	s.Require().NoError(s.store.Save(s.ctx, char))

	rested, err := s.service.Rest(s.ctx, "Bram")

	s.Require().NoError(err)
	s.Equal(rested.MaxHealth, rested.CurrentHealth)
	stored, err := s.store.Load(s.ctx, "Bram")
	s.Require().NoError(err)
	s.Equal(stored.MaxHealth, stored.CurrentHealth)
}

func (s *CharacterServiceTestSuite) TestSortInventory() {
	char := testutils.CreateTestCharacter("Bram")
	s.Require().NoError(char.Inventory.Add(testutils.CreateTestWeapon("axe", "Axe", 4)))
	s.Require().NoError(s.store.Save(s.ctx, char))

	sorted, err := s.service.SortInventory(s.ctx, "Bram", equipment.SortByName)
	s.Require().NoError(err)
	s.Equal("axe", sorted.Inventory.Items()[0].GetID())

	_, err = s.service.SortInventory(s.ctx, "Bram", "weight")
	s.True(dnderr.IsInvalidArgument(err))
}

func (s *CharacterServiceTestSuite) TestSaveRejectsInvalidEdits() {
	char := testutils.CreateTestCharacter("Bram")
	s.Require().NoError(s.store.Save(s.ctx, char))

	edited := char.Clone()
	edited.CurrentHealth = edited.MaxHealth + 10
	err := s.service.Save(s.ctx, edited)

	s.True(dnderr.IsValidation(err))
	stored, err := s.store.Load(s.ctx, "Bram")
	s.Require().NoError(err)
	s.Equal(char.CurrentHealth, stored.CurrentHealth)
}

func (s *CharacterServiceTestSuite) TestListDeleteAndStatistics() {
	_, err := s.service.Create(s.ctx, &character.CreateInput{Name: "Aria"})
	s.Require().NoError(err)
	_, err = s.service.Create(s.ctx, &character.CreateInput{Name: "Bram"})
	s.Require().NoError(err)

	list, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal("Bram", list[0].Name)

	stats, err := s.service.Statistics(s.ctx, "Aria")
	s.Require().NoError(err)
	s.Zero(stats.Encounters)

	s.Require().NoError(s.service.Delete(s.ctx, "Aria"))
	_, err = s.service.Load(s.ctx, "Aria")
	s.True(dnderr.IsNotFound(err))
	s.True(dnderr.IsNotFound(s.service.Delete(s.ctx, "Aria")))
}

func TestCharacterServiceSuite(t *testing.T) {
	suite.Run(t, new(CharacterServiceTestSuite))
}

func TestCreate_LoadFailureIsNotTreatedAsMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mockgateway.NewMockGateway(ctrl)
	svc := character.NewService(&character.ServiceConfig{Gateway: gw})

	gw.EXPECT().Load(gomock.Any(), "Aria").
		Return(nil, dnderr.PersistenceFailure(errors.New("connection refused"), "failed to load"))

	_, err := svc.Create(context.Background(), &character.CreateInput{Name: "Aria"})

	if !dnderr.IsPersistenceFailure(err) {
		t.Fatalf("expected persistence failure, got %v", err)
	}
}

func TestEquip_SaveFailureSurfaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mockgateway.NewMockGateway(ctrl)
	svc := character.NewService(&character.ServiceConfig{Gateway: gw})

	gw.EXPECT().Load(gomock.Any(), "Bram").Return(testutils.CreateTestCharacter("Bram"), nil)
	gw.EXPECT().Save(gomock.Any(), gomock.Any()).
		Return(dnderr.PersistenceFailure(errors.New("read-only"), "failed to save"))

	char, err := svc.Equip(context.Background(), &character.EquipInput{CharacterName: "Bram", ItemID: "Bram-ring"})

	if char != nil || !dnderr.IsPersistenceFailure(err) {
		t.Fatalf("expected persistence failure and no character, got %v, %v", char, err)
	}
}
