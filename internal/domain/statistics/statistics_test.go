package statistics_test

import (
	"testing"

	"github.com/KirkDiggler/dungeon-engine/internal/domain/statistics"
	dnderr "github.com/KirkDiggler/dungeon-engine/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestApply(t *testing.T) {
	r := &statistics.Record{CharacterName: "Aria"}

	r.Apply(&statistics.Delta{CharacterName: "Aria", Encounters: 1, Victories: 1, DamageDealt: 20, DamageTaken: 10, ExperienceEarned: 20})
	r.Apply(&statistics.Delta{CharacterName: "Aria", Encounters: 1, Defeats: 1, DamageDealt: 4, DamageTaken: 50})

	assert.Equal(t, &statistics.Record{
		CharacterName:    "Aria",
		Encounters:       2,
		Victories:        1,
		Defeats:          1,
		DamageDealt:      24,
		DamageTaken:      60,
		ExperienceEarned: 20,
	}, r)
	assert.Equal(t, 50, r.WinRate())
}

func TestDeltaValidate(t *testing.T) {
	assert.NoError(t, (&statistics.Delta{CharacterName: "Aria", Encounters: 1}).Validate())
	assert.True(t, dnderr.IsInvalidArgument((&statistics.Delta{Encounters: 1}).Validate()))
	assert.True(t, dnderr.IsInvalidArgument((&statistics.Delta{CharacterName: "Aria", DamageTaken: -3}).Validate()))

	var nilDelta *statistics.Delta
	assert.Error(t, nilDelta.Validate())
	assert.True(t, (&statistics.Delta{CharacterName: "Aria"}).IsZero())
}
