package encounter

//go:generate mockgen -destination=mock/mock_service.go -package=mockencounter -source=service.go

import (
	"context"

	"github.com/KirkDiggler/dungeon-engine/internal/domain/character"
	"github.com/KirkDiggler/dungeon-engine/internal/domain/combat"
	"github.com/KirkDiggler/dungeon-engine/internal/domain/equipment"
	"github.com/KirkDiggler/dungeon-engine/internal/domain/monster"
	"github.com/KirkDiggler/dungeon-engine/internal/domain/statistics"
	dnderr "github.com/KirkDiggler/dungeon-engine/internal/errors"
	"github.com/KirkDiggler/dungeon-engine/internal/repositories/gateway"
	"go.uber.org/zap"
)

// Service resolves fights and persists their outcome
type Service interface {
	// Resolve plays the fight on a copy of char and returns the updated copy in the report.
	// Nothing is persisted.
	Resolve(ctx context.Context, char *character.Character, m *monster.Instance, chooser Chooser) (*Report, error)

	// Fight loads the character, resolves the fight and commits character and statistics together
	Fight(ctx context.Context, input *FightInput) (*Report, error)
}

// View is what a Chooser sees at a round boundary
type View struct {
	Round   int
	Player  combat.Combatant
	Monster combat.Combatant
	// Last is the previous round, nil before the first
	Last *combat.Round
}

// Chooser picks the player's action at the start of every round
type Chooser interface {
	Choose(ctx context.Context, view *View) (combat.Action, error)
}

// ChooserFunc adapts a function to Chooser
type ChooserFunc func(ctx context.Context, view *View) (combat.Action, error)

func (f ChooserFunc) Choose(ctx context.Context, view *View) (combat.Action, error) {
	return f(ctx, view)
}

// AlwaysAttack never flees
var AlwaysAttack = ChooserFunc(func(context.Context, *View) (combat.Action, error) {
	return combat.ActionAttack, nil
})

// FightInput names the character to fight with
type FightInput struct {
	CharacterName string
	Monster       *monster.Instance
	// Chooser defaults to AlwaysAttack
	Chooser Chooser
}

// Report is everything a renderer needs about one resolved fight
type Report struct {
	Character        *character.Character
	Monster          *monster.Instance
	Outcome          combat.State
	Rounds           []*combat.Round
	History          []combat.State
	DamageDealt      int
	DamageTaken      int
	ExperienceGained int
	LevelUp          *character.LevelUp
	Drop             equipment.Equipment
	// DropLost is set when the drop did not fit in the inventory
	DropLost   bool
	Statistics *statistics.Delta
}

type service struct {
	gateway     gateway.Gateway
	progression character.Progression
	logger      *zap.Logger
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Gateway     gateway.Gateway       // Required for Fight
	Progression character.Progression // Optional - defaults to character.DefaultProgression
	Logger      *zap.Logger
}

// NewService creates a new encounter service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil || cfg.Gateway == nil {
		panic("gateway is required")
	}

	svc := &service{
		gateway:     cfg.Gateway,
		progression: cfg.Progression,
		logger:      cfg.Logger,
	}
	if svc.progression == (character.Progression{}) {
		svc.progression = character.DefaultProgression()
	}
	if svc.logger == nil {
		svc.logger = zap.NewNop()
	}
	return svc
}

func (s *service) Fight(ctx context.Context, input *FightInput) (*Report, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input cannot be nil")
	}
	if input.CharacterName == "" {
		return nil, dnderr.InvalidArgument("character name is required")
	}

	char, err := s.gateway.Load(ctx, input.CharacterName)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to load character %s", input.CharacterName)
	}

	report, err := s.Resolve(ctx, char, input.Monster, input.Chooser)
	if err != nil {
		return nil, err
	}

	if err := s.gateway.Commit(ctx, report.Character, report.Statistics); err != nil {
		s.logger.Error("failed to commit encounter", append(dnderr.Fields(err),
			zap.String("character", char.Name),
			zap.String("outcome", string(report.Outcome)),
		)...)
		return nil, dnderr.Wrapf(err, "failed to commit encounter for %s", char.Name)
	}

	return report, nil
}

func (s *service) Resolve(ctx context.Context, char *character.Character, m *monster.Instance, chooser Chooser) (*Report, error) {
	if char == nil {
		return nil, dnderr.InvalidArgument("character cannot be nil")
	}
	if m == nil {
		return nil, dnderr.InvalidArgument("monster cannot be nil")
	}
	if chooser == nil {
		chooser = AlwaysAttack
	}
	if err := s.progression.Validate(); err != nil {
		return nil, err
	}

	hero := char.Clone()
	fight, err := combat.NewEncounter(hero.Name, hero.EffectiveStats(), m)
	if err != nil {
		return nil, err
	}

	var last *combat.Round
	for !fight.IsTerminal() {
		action, err := chooser.Choose(ctx, &View{
			Round:   fight.Round() + 1,
			Player:  fight.Player(),
			Monster: fight.Monster(),
			Last:    last,
		})
		if err != nil {
			return nil, dnderr.Wrap(err, "failed to choose an action")
		}
		last, err = fight.Act(action)
		if err != nil {
			return nil, err
		}
	}

	result, err := fight.Result()
	if err != nil {
		return nil, err
	}

	report := &Report{
		Character:   hero,
		Monster:     m,
		Outcome:     result.Outcome,
		Rounds:      fight.Rounds(),
		History:     fight.History(),
		DamageDealt: result.DamageDealt,
		DamageTaken: result.DamageTaken,
		Statistics: &statistics.Delta{
			CharacterName: hero.Name,
			Encounters:    1,
			DamageDealt:   result.DamageDealt,
			DamageTaken:   result.DamageTaken,
		},
	}

	if err := s.applyOutcome(report, m); err != nil {
		return nil, err
	}

	s.logger.Info("encounter resolved",
		zap.String("character", hero.Name),
		zap.String("monster", m.Name),
		zap.Int("monster_level", m.Level),
		zap.String("outcome", string(report.Outcome)),
		zap.Int("rounds", result.Rounds),
		zap.Int("damage_dealt", result.DamageDealt),
		zap.Int("damage_taken", result.DamageTaken),
	)
	return report, nil
}

// applyOutcome moves the fight's result onto the cloned character
func (s *service) applyOutcome(report *Report, m *monster.Instance) error {
	hero := report.Character

	switch report.Outcome {
	case combat.StateDefeat:
		hero.CurrentHealth = min(s.progression.DefeatHealth, hero.MaxHealth)
		report.Statistics.Defeats = 1
		return nil

	case combat.StateFled:
		hero.SufferDamage(report.DamageTaken, 1)
		report.Statistics.Fled = 1
		return nil

	case combat.StateVictory:
		hero.SufferDamage(report.DamageTaken, 1)
		report.Statistics.Victories = 1

		up, err := hero.AwardExperience(m.ExperienceReward, s.progression)
		if err != nil {
			return err
		}
		report.ExperienceGained = m.ExperienceReward
		report.Statistics.ExperienceEarned = m.ExperienceReward
		if up.Levels() > 0 {
			report.LevelUp = up
		}

		if m.Drop != nil {
			report.Drop = m.Drop
			if err := hero.Inventory.Add(m.Drop); err != nil {
				if !dnderr.IsInventoryFull(err) {
					return err
				}
				report.DropLost = true
				s.logger.Info("drop lost to a full inventory",
					zap.String("character", hero.Name),
					zap.String("item", m.Drop.GetName()),
				)
			}
		}
		return nil
	}

	return dnderr.Internalf("encounter ended in non-terminal state %s", report.Outcome)
}
