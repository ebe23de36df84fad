package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/KirkDiggler/dungeon-engine/internal/app"
	"github.com/KirkDiggler/dungeon-engine/internal/config"
	"github.com/KirkDiggler/dungeon-engine/internal/domain/character"
)

func main() {
	name := flag.String("name", "", "character to edit (required)")
	level := flag.Int("level", 0, "set level")
	xp := flag.Int("xp", -1, "set experience toward the next level")
	health := flag.Int("health", 0, "set current health")
	maxHealth := flag.Int("max-health", 0, "set maximum health")
	strength := flag.Int("strength", 0, "set strength")
	rest := flag.Bool("rest", false, "restore full health")
	flag.Parse()

	if *name == "" {
		fmt.Println("Usage: edit-character -name <character> [-level N] [-xp N] [-health N] [-max-health N] [-strength N] [-rest]")
		os.Exit(1)
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger, err := cfg.NewLogger()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	ctx := context.Background()
	provider, err := app.NewProvider(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	defer provider.Gateway.Close()

	char, err := provider.CharacterService.Load(ctx, *name)
	if err != nil {
		log.Fatalf("Failed to load character: %v", err)
	}
	log.Printf("Before: %s", describe(char))

	if *level > 0 {
		char.Level = *level
	}
	if *xp >= 0 {
		char.Experience = *xp
	}
	if *maxHealth > 0 {
		char.MaxHealth = *maxHealth
		char.CurrentHealth = min(char.CurrentHealth, char.MaxHealth)
	}
	if *health > 0 {
		char.CurrentHealth = *health
	}
	if *strength > 0 {
		char.Strength = *strength
	}
	if *rest {
		char.Rest()
	}

	// Save validates, so an impossible edit leaves the record untouched
	if err := provider.CharacterService.Save(ctx, char); err != nil {
		log.Fatalf("Failed to save character: %v", err)
	}
	log.Printf("After:  %s", describe(char))
}

func describe(c *character.Character) string {
	return fmt.Sprintf("%s %s level %d, XP %d, HP %d/%d, STR %d",
		c.Emoji, c.Name, c.Level, c.Experience, c.CurrentHealth, c.MaxHealth, c.Strength)
}
