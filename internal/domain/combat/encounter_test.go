package combat_test

import (
	"testing"

	"github.com/KirkDiggler/dungeon-engine/internal/domain/character"
	"github.com/KirkDiggler/dungeon-engine/internal/domain/combat"
	"github.com/KirkDiggler/dungeon-engine/internal/domain/monster"
	dnderr "github.com/KirkDiggler/dungeon-engine/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wolf() *monster.Instance {
	return &monster.Instance{
		Name:          "Wolf",
		Level:         2,
		MaxHealth:     20,
		CurrentHealth: 20,
		Strength:      5,
		Defense:       2,
	}
}

func fighter() character.StatBlock {
	return character.StatBlock{MaxHealth: 30, CurrentHealth: 30, Strength: 10}
}

func TestDamageFloor(t *testing.T) {
	assert.Equal(t, 8, combat.Damage(10, 2))
	assert.Equal(t, 1, combat.Damage(3, 3))
	assert.Equal(t, 1, combat.Damage(1, 20))
}

func TestEncounterVictoryInThreeRounds(t *testing.T) {
	enc, err := combat.NewEncounter("Aria", fighter(), wolf())
	require.NoError(t, err)
	assert.Equal(t, combat.StateStart, enc.State())

	var rounds []*combat.Round
	for !enc.IsTerminal() {
		round, err := enc.Act(combat.ActionAttack)
		require.NoError(t, err)
		rounds = append(rounds, round)
	}

	require.Len(t, rounds, 3)
	assert.Equal(t, 12, rounds[0].PlayerStrike.DefenderHP)
	assert.Equal(t, 25, rounds[0].MonsterStrike.DefenderHP)
	assert.Equal(t, 4, rounds[1].PlayerStrike.DefenderHP)
	assert.Equal(t, 20, rounds[1].MonsterStrike.DefenderHP)
	assert.Equal(t, 0, rounds[2].PlayerStrike.DefenderHP)
	assert.Nil(t, rounds[2].MonsterStrike, "monster never acts after dying")

	res, err := enc.Result()
	require.NoError(t, err)
	assert.Equal(t, &combat.Result{
		Outcome:     combat.StateVictory,
		Rounds:      3,
		DamageDealt: 24,
		DamageTaken: 10,
		PlayerHP:    20,
		MonsterHP:   0,
	}, res)
}

func TestEncounterStateHistory(t *testing.T) {
	enc, err := combat.NewEncounter("Aria", fighter(), wolf())
	require.NoError(t, err)

	_, err = enc.Act(combat.ActionAttack)
	require.NoError(t, err)

	assert.Equal(t, []combat.State{
		combat.StateStart,
		combat.StatePlayerTurn,
		combat.StateResolveDamage,
		combat.StateCheckVictory,
		combat.StateMonsterTurn,
		combat.StateResolveDamage,
		combat.StateCheckVictory,
		combat.StatePlayerTurn,
	}, enc.History())
}

func TestEncounterDefeat(t *testing.T) {
	weak := character.StatBlock{MaxHealth: 6, CurrentHealth: 6, Strength: 1}
	enc, err := combat.NewEncounter("Aria", weak, wolf())
	require.NoError(t, err)

	for !enc.IsTerminal() {
		_, err := enc.Act(combat.ActionAttack)
		require.NoError(t, err)
	}

	res, err := enc.Result()
	require.NoError(t, err)
	assert.Equal(t, combat.StateDefeat, res.Outcome)
	assert.Equal(t, 2, res.Rounds)
	assert.Equal(t, 10, res.DamageTaken)
	assert.Equal(t, 2, res.DamageDealt)
	assert.Equal(t, 0, res.PlayerHP)
}

func TestEncounterFlee(t *testing.T) {
	enc, err := combat.NewEncounter("Aria", fighter(), wolf())
	require.NoError(t, err)

	_, err = enc.Act(combat.ActionAttack)
	require.NoError(t, err)
	round, err := enc.Act(combat.ActionFlee)
	require.NoError(t, err)

	assert.Equal(t, combat.StateFled, round.State)
	assert.Nil(t, round.PlayerStrike)

	res, err := enc.Result()
	require.NoError(t, err)
	assert.Equal(t, combat.StateFled, res.Outcome)
	assert.Equal(t, 5, res.DamageTaken)
	assert.Equal(t, 2, res.Rounds)
}

func TestEncounterPreconditions(t *testing.T) {
	t.Run("character without health", func(t *testing.T) {
		stats := fighter()
		stats.CurrentHealth = 0
		_, err := combat.NewEncounter("Aria", stats, wolf())
		assert.True(t, dnderr.IsPreconditionViolation(err))
	})

	t.Run("monster without health", func(t *testing.T) {
		m := wolf()
		m.CurrentHealth = 0
		_, err := combat.NewEncounter("Aria", fighter(), m)
		assert.True(t, dnderr.IsPreconditionViolation(err))
	})

	t.Run("act after the end", func(t *testing.T) {
		enc, err := combat.NewEncounter("Aria", fighter(), wolf())
		require.NoError(t, err)
		_, err = enc.Act(combat.ActionFlee)
		require.NoError(t, err)

		_, err = enc.Act(combat.ActionAttack)
		assert.True(t, dnderr.IsPreconditionViolation(err))
	})

	t.Run("result before the end", func(t *testing.T) {
		enc, err := combat.NewEncounter("Aria", fighter(), wolf())
		require.NoError(t, err)
		_, err = enc.Result()
		assert.True(t, dnderr.IsPreconditionViolation(err))
	})

	t.Run("unknown action", func(t *testing.T) {
		enc, err := combat.NewEncounter("Aria", fighter(), wolf())
		require.NoError(t, err)
		_, err = enc.Act("dance")
		assert.True(t, dnderr.IsInvalidArgument(err))
		assert.Equal(t, combat.StateStart, enc.State())
	})
}
