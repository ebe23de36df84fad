package combat

// State is a node of the encounter state machine
type State string

const (
	StateStart         State = "start"
	StatePlayerTurn    State = "player_turn"
	StateResolveDamage State = "resolve_damage"
	StateCheckVictory  State = "check_victory"
	StateMonsterTurn   State = "monster_turn"
	StateVictory       State = "victory"
	StateDefeat        State = "defeat"
	StateFled          State = "fled"
)

// IsTerminal reports whether no further rounds can be played
func (s State) IsTerminal() bool {
	switch s {
	case StateVictory, StateDefeat, StateFled:
		return true
	}
	return false
}

// Action is the player's choice at a round boundary
type Action string

const (
	ActionAttack Action = "attack"
	ActionFlee   Action = "flee"
)

// IsValid reports whether a is a known action
func (a Action) IsValid() bool {
	return a == ActionAttack || a == ActionFlee
}
