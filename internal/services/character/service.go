package character

//go:generate mockgen -destination=mock/mock_service.go -package=mockcharacter -source=service.go

import (
	"context"

	"github.com/KirkDiggler/dungeon-engine/internal/domain/character"
	"github.com/KirkDiggler/dungeon-engine/internal/domain/equipment"
	"github.com/KirkDiggler/dungeon-engine/internal/domain/statistics"
	dnderr "github.com/KirkDiggler/dungeon-engine/internal/errors"
	"github.com/KirkDiggler/dungeon-engine/internal/repositories/gateway"
	"github.com/KirkDiggler/dungeon-engine/internal/uuid"
	"go.uber.org/zap"
)

// Service defines the character service interface.
// Every mutating call loads, changes and saves; a failed change saves nothing.
type Service interface {
	// Create makes a new level 1 character holding an equipped starter sword
	Create(ctx context.Context, input *CreateInput) (*character.Character, error)

	// Load retrieves a character by name
	Load(ctx context.Context, name string) (*character.Character, error)

	// List returns every saved character, most recently played first
	List(ctx context.Context) ([]*gateway.Summary, error)

	// Save stores an edited character after validating it
	Save(ctx context.Context, char *character.Character) error

	// Delete removes the character and its statistics
	Delete(ctx context.Context, name string) error

	// Rest restores the character to full health
	Rest(ctx context.Context, name string) (*character.Character, error)

	// Equip moves an inventory item into slot; an empty slot picks one
	Equip(ctx context.Context, input *EquipInput) (*character.Character, error)

	// Unequip moves the item in slot back to the inventory
	Unequip(ctx context.Context, name string, slot equipment.Slot) (*character.Character, error)

	// SortInventory reorders the character's inventory
	SortInventory(ctx context.Context, name string, key equipment.SortKey) (*character.Character, error)

	// Statistics returns the character's lifetime counters
	Statistics(ctx context.Context, name string) (*statistics.Record, error)
}

// CreateInput contains the data needed to create a character
type CreateInput struct {
	Name  string
	Emoji string
}

// EquipInput identifies the item to equip
type EquipInput struct {
	CharacterName string
	ItemID        string
	Slot          equipment.Slot // Optional
}

type service struct {
	gateway       gateway.Gateway
	uuidGenerator uuid.Generator
	logger        *zap.Logger
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Gateway       gateway.Gateway // Required
	UUIDGenerator uuid.Generator  // Optional - defaults to random UUIDs
	Logger        *zap.Logger
}

// NewService creates a new character service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil || cfg.Gateway == nil {
		panic("gateway is required")
	}

	svc := &service{
		gateway:       cfg.Gateway,
		uuidGenerator: cfg.UUIDGenerator,
		logger:        cfg.Logger,
	}
	if svc.uuidGenerator == nil {
		svc.uuidGenerator = uuid.NewRandomGenerator()
	}
	if svc.logger == nil {
		svc.logger = zap.NewNop()
	}
	return svc
}

func (s *service) Create(ctx context.Context, input *CreateInput) (*character.Character, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input cannot be nil")
	}

	char := character.New(input.Name, input.Emoji)
	if err := char.Validate(); err != nil {
		return nil, err
	}

	_, err := s.gateway.Load(ctx, char.Name)
	switch {
	case err == nil:
		return nil, dnderr.AlreadyExistsf("a character named %s already exists", char.Name).
			WithMeta("character_name", char.Name)
	case !dnderr.IsNotFound(err):
		return nil, dnderr.Wrapf(err, "failed to check for character %s", char.Name)
	}

	sword := equipment.NewStarterSword(s.uuidGenerator.New())
	if err := char.Inventory.Add(sword); err != nil {
		return nil, err
	}
	if err := char.Equip(sword.GetID(), equipment.SlotMainHand); err != nil {
		return nil, err
	}

	if err := s.gateway.Save(ctx, char); err != nil {
		return nil, dnderr.Wrapf(err, "failed to save new character %s", char.Name)
	}

	s.logger.Info("character created", zap.String("character", char.Name))
	return char, nil
}

func (s *service) Load(ctx context.Context, name string) (*character.Character, error) {
	if name == "" {
		return nil, dnderr.InvalidArgument("character name is required")
	}
	return s.gateway.Load(ctx, name)
}

func (s *service) List(ctx context.Context) ([]*gateway.Summary, error) {
	return s.gateway.List(ctx)
}

func (s *service) Save(ctx context.Context, char *character.Character) error {
	if char == nil {
		return dnderr.InvalidArgument("character cannot be nil")
	}
	if err := char.Validate(); err != nil {
		return err
	}
	return s.gateway.Save(ctx, char)
}

func (s *service) Delete(ctx context.Context, name string) error {
	if name == "" {
		return dnderr.InvalidArgument("character name is required")
	}
	if err := s.gateway.Delete(ctx, name); err != nil {
		return err
	}

	s.logger.Info("character deleted", zap.String("character", name))
	return nil
}

func (s *service) Rest(ctx context.Context, name string) (*character.Character, error) {
	return s.update(ctx, name, func(c *character.Character) error {
		c.Rest()
		return nil
	})
}

func (s *service) Equip(ctx context.Context, input *EquipInput) (*character.Character, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input cannot be nil")
	}
	if input.ItemID == "" {
		return nil, dnderr.InvalidArgument("item ID is required")
	}
	if input.Slot != "" && !input.Slot.IsValid() {
		return nil, dnderr.InvalidArgumentf("unknown slot %q", input.Slot)
	}

	return s.update(ctx, input.CharacterName, func(c *character.Character) error {
		return c.Equip(input.ItemID, input.Slot)
	})
}

func (s *service) Unequip(ctx context.Context, name string, slot equipment.Slot) (*character.Character, error) {
	if !slot.IsValid() {
		return nil, dnderr.InvalidArgumentf("unknown slot %q", slot)
	}

	return s.update(ctx, name, func(c *character.Character) error {
		_, err := c.Unequip(slot)
		return err
	})
}

func (s *service) SortInventory(ctx context.Context, name string, key equipment.SortKey) (*character.Character, error) {
	return s.update(ctx, name, func(c *character.Character) error {
		return c.Inventory.Sort(key)
	})
}

func (s *service) Statistics(ctx context.Context, name string) (*statistics.Record, error) {
	if name == "" {
		return nil, dnderr.InvalidArgument("character name is required")
	}
	return s.gateway.Statistics(ctx, name)
}

// update loads the character, applies mutate and saves the result
func (s *service) update(ctx context.Context, name string, mutate func(c *character.Character) error) (*character.Character, error) {
	if name == "" {
		return nil, dnderr.InvalidArgument("character name is required")
	}

	char, err := s.gateway.Load(ctx, name)
	if err != nil {
		return nil, err
	}
	if err := mutate(char); err != nil {
		return nil, err
	}
	if err := s.gateway.Save(ctx, char); err != nil {
		return nil, dnderr.Wrapf(err, "failed to save character %s", name)
	}
	return char, nil
}
