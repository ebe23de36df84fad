// Package console is the interactive text front end: menus, prompts and fight rendering
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/KirkDiggler/dungeon-engine/internal/domain/character"
	"github.com/KirkDiggler/dungeon-engine/internal/domain/equipment"
	dnderr "github.com/KirkDiggler/dungeon-engine/internal/errors"
	"github.com/KirkDiggler/dungeon-engine/internal/services"
	"github.com/KirkDiggler/dungeon-engine/internal/services/adventure"
	characterService "github.com/KirkDiggler/dungeon-engine/internal/services/character"
	"go.uber.org/zap"
)

// errLeave unwinds a menu back to its caller
var errLeave = errors.New("leave menu")

// Game drives one console session
type Game struct {
	provider *services.Provider
	in       *bufio.Scanner
	out      io.Writer
	logger   *zap.Logger
}

// GameConfig holds configuration for the game
type GameConfig struct {
	Provider *services.Provider // Required
	In       io.Reader          // Required
	Out      io.Writer          // Required
	Logger   *zap.Logger
}

// NewGame creates a console game
func NewGame(cfg *GameConfig) (*Game, error) {
	if cfg == nil || cfg.Provider == nil {
		return nil, dnderr.InvalidArgument("provider is required")
	}
	if cfg.In == nil || cfg.Out == nil {
		return nil, dnderr.InvalidArgument("input and output are required")
	}

	g := &Game{
		provider: cfg.Provider,
		in:       bufio.NewScanner(cfg.In),
		out:      cfg.Out,
		logger:   cfg.Logger,
	}
	if g.logger == nil {
		g.logger = zap.NewNop()
	}
	return g, nil
}

// Run shows the main menu until the player quits or input ends
func (g *Game) Run(ctx context.Context) error {
	g.println("⚔️  Welcome, adventurer!")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		choice, err := g.menu("Main Menu", []string{
			"🆕 New character",
			"📂 Load character",
			"🗑️ Delete character",
			"🚪 Quit",
		})
		if err != nil {
			return g.finish(err)
		}

		switch choice {
		case 1:
			err = g.newCharacter(ctx)
		case 2:
			err = g.loadCharacter(ctx)
		case 3:
			err = g.deleteCharacter(ctx)
		case 4:
			g.println("👋 Farewell!")
			return nil
		}
		if err != nil && !errors.Is(err, errLeave) {
			if fatal := g.report(err); fatal != nil {
				return g.finish(fatal)
			}
		}
	}
}

// finish turns the end of input into a clean exit
func (g *Game) finish(err error) error {
	if errors.Is(err, io.EOF) {
		g.println("")
		g.println("👋 Farewell!")
		return nil
	}
	return err
}

// report shows recoverable errors to the player and returns the ones that end the session
func (g *Game) report(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
		return err
	}
	g.logger.Debug("menu action failed", dnderr.Fields(err)...)

	switch {
	case dnderr.IsNotFound(err):
		g.printf("❌ Not found: %s\n", err)
	case dnderr.IsAlreadyExists(err):
		g.printf("❌ %s\n", err)
	case dnderr.IsSlotMismatch(err):
		g.printf("❌ That item does not fit there: %s\n", err)
	case dnderr.IsInventoryFull(err):
		g.printf("🎒 Your bag is full: %s\n", err)
	case dnderr.IsPersistenceFailure(err):
		g.printf("💾 Could not save, nothing was changed: %s\n", err)
	default:
		g.printf("❌ %s\n", err)
	}
	return nil
}

func (g *Game) newCharacter(ctx context.Context) error {
	name, err := g.prompt("What is your name, hero?")
	if err != nil {
		return err
	}
	emoji, err := g.prompt("Pick an emoji (blank for 🧙)")
	if err != nil {
		return err
	}

	char, err := g.provider.CharacterService.Create(ctx, &characterService.CreateInput{Name: name, Emoji: emoji})
	if err != nil {
		return err
	}
	g.printf("✨ %s %s begins their journey.\n", char.Emoji, char.Name)
	if weapon := char.Equipment.Get(equipment.SlotMainHand); weapon != nil {
		g.printf("🗡️ You grip your %s.\n", weapon.GetName())
	}
	return g.inn(ctx, char.Name)
}

func (g *Game) loadCharacter(ctx context.Context) error {
	summaries, err := g.provider.CharacterService.List(ctx)
	if err != nil {
		return err
	}
	if len(summaries) == 0 {
		g.println("📭 No saved characters yet.")
		return nil
	}

	options := make([]string, 0, len(summaries)+1)
	for _, s := range summaries {
		options = append(options, fmt.Sprintf("%s %s (Lvl %d)", s.Emoji, s.Name, s.Level))
	}
	options = append(options, "↩️ Back")

	choice, err := g.menu("Load Character", options)
	if err != nil {
		return err
	}
	if choice == len(options) {
		return nil
	}
	return g.inn(ctx, summaries[choice-1].Name)
}

func (g *Game) deleteCharacter(ctx context.Context) error {
	name, err := g.prompt("Which character should be deleted?")
	if err != nil {
		return err
	}
	confirm, err := g.prompt(fmt.Sprintf("Delete %s forever? (y/N)", name))
	if err != nil {
		return err
	}
	if !strings.EqualFold(confirm, "y") {
		g.println("Nothing was deleted.")
		return nil
	}

	if err := g.provider.CharacterService.Delete(ctx, name); err != nil {
		return err
	}
	g.printf("🗑️ %s has been deleted.\n", name)
	return nil
}

// inn is the hub between adventures
func (g *Game) inn(ctx context.Context, name string) error {
	for {
		char, err := g.provider.CharacterService.Load(ctx, name)
		if err != nil {
			return err
		}

		g.println("")
		g.println(statusLine(char))
		choice, err := g.menu("Welcome to the Cozy Dragon Inn! 🏠", []string{
			"🛏️ Rest",
			"🗺️ Go on an adventure",
			"📊 Character sheet",
			"🎒 Inventory",
			"🛡️ Equipment",
			"📈 Statistics",
			"🚪 Leave the inn",
		})
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			err = g.rest(ctx, char)
		case 2:
			err = g.adventure(ctx, name)
		case 3:
			g.characterSheet(char)
		case 4:
			err = g.inventory(ctx, char)
		case 5:
			err = g.equipped(ctx, char)
		case 6:
			err = g.statistics(ctx, name)
		case 7:
			return errLeave
		}
		if err != nil && !errors.Is(err, errLeave) {
			if fatal := g.report(err); fatal != nil {
				return fatal
			}
		}
	}
}

func (g *Game) rest(ctx context.Context, char *character.Character) error {
	if char.CurrentHealth >= char.MaxHealth {
		g.println("💤 You're already feeling great! No need to rest.")
		return nil
	}

	rested, err := g.provider.CharacterService.Rest(ctx, char.Name)
	if err != nil {
		return err
	}
	g.println("💤 You rest peacefully at the inn...")
	g.printf("💚 You feel fully rested and restored! (+%d HP)\n", rested.CurrentHealth-char.CurrentHealth)
	return nil
}

func (g *Game) chooseLocation() (adventure.Location, error) {
	locations := g.provider.Locations.List()
	if len(locations) == 0 {
		return nil, dnderr.NotFound("no adventures are available")
	}
	if len(locations) == 1 {
		return locations[0], nil
	}

	options := make([]string, 0, len(locations)+1)
	for _, l := range locations {
		options = append(options, fmt.Sprintf("%s %s", l.Emoji(), l.Name()))
	}
	options = append(options, "🏠 Return to the inn")

	choice, err := g.menu("🗺️ Adventure Destinations", options)
	if err != nil {
		return nil, err
	}
	if choice == len(options) {
		return nil, errLeave
	}
	return locations[choice-1], nil
}

func (g *Game) statistics(ctx context.Context, name string) error {
	stats, err := g.provider.CharacterService.Statistics(ctx, name)
	if err != nil {
		return err
	}

	g.println("📈 Lifetime statistics")
	g.printf("   Encounters:    %d\n", stats.Encounters)
	g.printf("   Victories:     %d (%d%%)\n", stats.Victories, stats.WinRate())
	g.printf("   Defeats:       %d\n", stats.Defeats)
	g.printf("   Fled:          %d\n", stats.Fled)
	g.printf("   Damage dealt:  %d\n", stats.DamageDealt)
	g.printf("   Damage taken:  %d\n", stats.DamageTaken)
	g.printf("   XP earned:     %d\n", stats.ExperienceEarned)
	return nil
}

// menu prints numbered options and reads until a valid choice is entered
func (g *Game) menu(title string, options []string) (int, error) {
	g.println("")
	g.println("== " + title + " ==")
	for i, option := range options {
		g.printf("%d) %s\n", i+1, option)
	}

	for {
		line, err := g.prompt(">")
		if err != nil {
			return 0, err
		}
		choice, err := strconv.Atoi(line)
		if err == nil && choice >= 1 && choice <= len(options) {
			return choice, nil
		}
		g.printf("Please enter a number from 1 to %d.\n", len(options))
	}
}

// prompt reads one trimmed line; io.EOF means the player is gone
func (g *Game) prompt(label string) (string, error) {
	fmt.Fprintf(g.out, "%s ", label)
	if !g.in.Scan() {
		if err := g.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(g.in.Text()), nil
}

func (g *Game) println(line string) {
	fmt.Fprintln(g.out, line)
}

func (g *Game) printf(format string, args ...any) {
	fmt.Fprintf(g.out, format, args...)
}

func statusLine(char *character.Character) string {
	return fmt.Sprintf("%s %s (Lvl %d): %d/%d HP", char.Emoji, char.Name, char.Level, char.CurrentHealth, char.MaxHealth)
}
