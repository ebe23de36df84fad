package combat

import (
	"github.com/KirkDiggler/dungeon-engine/internal/domain/character"
	"github.com/KirkDiggler/dungeon-engine/internal/domain/monster"
	dnderr "github.com/KirkDiggler/dungeon-engine/internal/errors"
)

// MinimumDamage is the floor applied to every hit so fights always end
const MinimumDamage = 1

// CombatantType identifies which side a combatant is on
type CombatantType string

const (
	CombatantTypePlayer  CombatantType = "player"
	CombatantTypeMonster CombatantType = "monster"
)

// Combatant is one side's fighting profile during an encounter
type Combatant struct {
	Name      string
	Type      CombatantType
	CurrentHP int
	MaxHP     int
	Attack    int
	Defense   int
}

// IsAlive reports whether the combatant can keep fighting
func (c Combatant) IsAlive() bool {
	return c.CurrentHP > 0
}

// Strike is one attack landing in a round
type Strike struct {
	Attacker   string
	Defender   string
	Damage     int
	DefenderHP int
}

// Round records everything that happened in one round
type Round struct {
	Number        int
	Action        Action
	PlayerStrike  *Strike
	MonsterStrike *Strike
	// State is where the encounter stood when the round ended
	State State
}

// Result summarises a finished encounter
type Result struct {
	Outcome     State
	Rounds      int
	DamageDealt int
	DamageTaken int
	PlayerHP    int
	MonsterHP   int
}

// Encounter runs one fight between a character and a monster.
// The character always acts first in a round.
type Encounter struct {
	state       State
	round       int
	player      Combatant
	monster     Combatant
	rounds      []*Round
	history     []State
	damageDealt int
	damageTaken int
}

// Damage is attack minus defense, never below MinimumDamage
func Damage(attack, defense int) int {
	return max(MinimumDamage, attack-defense)
}

// NewEncounter starts a fight from the character's effective stats.
// Either side starting without health is a precondition violation.
func NewEncounter(name string, stats character.StatBlock, m *monster.Instance) (*Encounter, error) {
	if m == nil {
		return nil, dnderr.InvalidArgument("monster cannot be nil")
	}
	if stats.CurrentHealth <= 0 {
		return nil, dnderr.PreconditionViolationf("%s has no health left to fight", name).
			WithMeta("character_name", name)
	}
	if m.CurrentHealth <= 0 {
		return nil, dnderr.PreconditionViolationf("%s is already defeated", m.Name).
			WithMeta("monster", m.Name)
	}

	return &Encounter{
		state: StateStart,
		player: Combatant{
			Name:      name,
			Type:      CombatantTypePlayer,
			CurrentHP: stats.CurrentHealth,
			MaxHP:     stats.MaxHealth,
			Attack:    stats.Attack(),
			Defense:   stats.Defense,
		},
		monster: Combatant{
			Name:      m.Name,
			Type:      CombatantTypeMonster,
			CurrentHP: m.CurrentHealth,
			MaxHP:     m.MaxHealth,
			Attack:    m.Strength,
			Defense:   m.Defense,
		},
		history: []State{StateStart},
	}, nil
}

func (e *Encounter) State() State       { return e.state }
func (e *Encounter) Round() int         { return e.round }
func (e *Encounter) Player() Combatant  { return e.player }
func (e *Encounter) Monster() Combatant { return e.monster }
func (e *Encounter) IsTerminal() bool   { return e.state.IsTerminal() }

// Rounds returns the played rounds in order
func (e *Encounter) Rounds() []*Round {
	out := make([]*Round, len(e.rounds))
	copy(out, e.rounds)
	return out
}

// History returns every state the encounter has passed through
func (e *Encounter) History() []State {
	out := make([]State, len(e.history))
	copy(out, e.history)
	return out
}

// Act plays one full round. Fleeing is only possible here, at the round boundary.
func (e *Encounter) Act(action Action) (*Round, error) {
	if e.state.IsTerminal() {
		return nil, dnderr.PreconditionViolationf("encounter already ended in %s", e.state).
			WithMeta("state", e.state)
	}
	if !action.IsValid() {
		return nil, dnderr.InvalidArgumentf("unknown action %q", action)
	}
	if e.state == StateStart {
		e.transition(StatePlayerTurn)
	}

	e.round++
	round := &Round{Number: e.round, Action: action}
	e.rounds = append(e.rounds, round)

	if action == ActionFlee {
		e.transition(StateFled)
		round.State = e.state
		return round, nil
	}

	round.PlayerStrike = e.strike(&e.player, &e.monster)
	e.damageDealt += round.PlayerStrike.Damage
	e.transition(StateCheckVictory)
	if !e.monster.IsAlive() {
		e.transition(StateVictory)
		round.State = e.state
		return round, nil
	}

	e.transition(StateMonsterTurn)
	round.MonsterStrike = e.strike(&e.monster, &e.player)
	e.damageTaken += round.MonsterStrike.Damage
	e.transition(StateCheckVictory)
	if !e.player.IsAlive() {
		e.transition(StateDefeat)
		round.State = e.state
		return round, nil
	}

	e.transition(StatePlayerTurn)
	round.State = e.state
	return round, nil
}

// Result is only available once the encounter has ended
func (e *Encounter) Result() (*Result, error) {
	if !e.state.IsTerminal() {
		return nil, dnderr.PreconditionViolationf("encounter still in %s", e.state)
	}
	return &Result{
		Outcome:     e.state,
		Rounds:      e.round,
		DamageDealt: e.damageDealt,
		DamageTaken: e.damageTaken,
		PlayerHP:    max(0, e.player.CurrentHP),
		MonsterHP:   max(0, e.monster.CurrentHP),
	}, nil
}

func (e *Encounter) strike(attacker, defender *Combatant) *Strike {
	e.transition(StateResolveDamage)
	dmg := Damage(attacker.Attack, defender.Defense)
	defender.CurrentHP -= dmg
	return &Strike{
		Attacker:   attacker.Name,
		Defender:   defender.Name,
		Damage:     dmg,
		DefenderHP: max(0, defender.CurrentHP),
	}
}

func (e *Encounter) transition(next State) {
	e.state = next
	e.history = append(e.history, next)
}
