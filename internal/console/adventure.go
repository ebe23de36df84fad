package console

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/dungeon-engine/internal/domain/combat"
	"github.com/KirkDiggler/dungeon-engine/internal/services/adventure"
	"github.com/KirkDiggler/dungeon-engine/internal/services/encounter"
)

// adventure keeps generating encounters until the player heads back, flees or is defeated
func (g *Game) adventure(ctx context.Context, name string) error {
	location, err := g.chooseLocation()
	if err != nil {
		return err
	}

	g.println("")
	g.printf("%s %s Adventure\n", location.Emoji(), location.Name())
	g.println(location.Intro())

	for {
		char, err := g.provider.CharacterService.Load(ctx, name)
		if err != nil {
			return err
		}

		enc, err := location.GenerateEncounter(ctx, char.Level)
		if err != nil {
			return err
		}

		if enc.IsPeaceful() {
			g.println("")
			g.println(enc.PeacefulEvent)
		} else {
			outcome, err := g.fight(ctx, name, enc)
			if err != nil {
				return err
			}
			switch outcome {
			case combat.StateDefeat:
				g.println("💔 You limp back to the inn, defeated but alive...")
				return nil
			case combat.StateFled:
				g.println("🏃 You return to the inn safely after fleeing from danger.")
				return nil
			}
		}

		choice, err := g.menu("Adventure Choice", []string{
			fmt.Sprintf("%s Continue exploring the %s", location.Emoji(), location.Name()),
			"🏠 Return to the inn",
		})
		if err != nil {
			return err
		}
		if choice == 2 {
			g.println("🏠 You return to the inn after your exploration.")
			return nil
		}
	}
}

func (g *Game) fight(ctx context.Context, name string, enc *adventure.Encounter) (combat.State, error) {
	m := enc.Monster
	g.println("")
	g.println("You encounter a dangerous creature!")
	g.printf("%s %s (Lvl %d) %d HP\n", m.Emoji, m.Name, m.Level, m.MaxHealth)

	report, err := g.provider.EncounterService.Fight(ctx, &encounter.FightInput{
		CharacterName: name,
		Monster:       m,
		Chooser:       &consoleChooser{game: g},
	})
	if err != nil {
		return "", err
	}

	if len(report.Rounds) > 0 {
		g.renderRound(report.Rounds[len(report.Rounds)-1])
	}
	g.renderOutcome(report)
	return report.Outcome, nil
}

// consoleChooser shows the previous round and asks the player what to do
type consoleChooser struct {
	game *Game
}

func (c *consoleChooser) Choose(_ context.Context, view *encounter.View) (combat.Action, error) {
	g := c.game
	if view.Last != nil {
		g.renderRound(view.Last)
	}

	choice, err := g.menu(fmt.Sprintf("Round %d", view.Round), []string{
		fmt.Sprintf("⚔️ Attack (%d/%d HP vs %s %d/%d HP)",
			view.Player.CurrentHP, view.Player.MaxHP, view.Monster.Name, view.Monster.CurrentHP, view.Monster.MaxHP),
		"🏃 Flee",
	})
	if err != nil {
		return "", err
	}
	if choice == 2 {
		return combat.ActionFlee, nil
	}
	return combat.ActionAttack, nil
}

func (g *Game) renderRound(round *combat.Round) {
	for _, strike := range []*combat.Strike{round.PlayerStrike, round.MonsterStrike} {
		if strike == nil {
			continue
		}
		g.printf("⚔️  %s deals %d damage to %s. (%d HP left)\n", strike.Attacker, strike.Damage, strike.Defender, strike.DefenderHP)
	}
}

func (g *Game) renderOutcome(report *encounter.Report) {
	g.println("")
	switch report.Outcome {
	case combat.StateVictory:
		g.printf("🎉 Victory! The %s is defeated.\n", report.Monster.Name)
		g.printf("✨ You gain %d XP.\n", report.ExperienceGained)
		if up := report.LevelUp; up != nil {
			g.printf("🆙 Level up! %d → %d (+%d max HP, +%d strength)\n", up.From, up.To, up.HealthGained, up.StrengthGained)
		}
		if report.Drop != nil {
			if report.DropLost {
				g.printf("🎒 The %s dropped a %s, but your bag is full and you leave it behind.\n", report.Monster.Name, report.Drop.GetName())
			} else {
				g.printf("🎁 The %s dropped a %s [%s]!\n", report.Monster.Name, report.Drop.GetName(), report.Drop.GetRarity())
			}
		}
	case combat.StateDefeat:
		g.printf("💀 The %s has bested you.\n", report.Monster.Name)
	case combat.StateFled:
		g.printf("🏃 You escape from the %s.\n", report.Monster.Name)
	}
	g.println(statusLine(report.Character))
}
