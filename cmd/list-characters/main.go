package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/joho/godotenv"

	"github.com/KirkDiggler/dungeon-engine/internal/app"
	"github.com/KirkDiggler/dungeon-engine/internal/config"
)

func main() {
	withStats := flag.Bool("stats", false, "include lifetime statistics")
	flag.Parse()

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
	store, err := app.OpenGateway(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer store.Close()

	summaries, err := store.List(ctx)
	if err != nil {
		log.Fatalf("Failed to list characters: %v", err)
	}

	fmt.Printf("Found %d characters:\n", len(summaries))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	header := "NAME\tLEVEL\tCREATED\tLAST PLAYED"
	if *withStats {
		header += "\tENCOUNTERS\tWINS\tLOSSES\tFLED\tXP EARNED"
	}
	fmt.Fprintln(w, header)

	for _, s := range summaries {
		line := fmt.Sprintf("%s %s\t%d\t%s\t%s", s.Emoji, s.Name, s.Level,
			s.CreatedAt.Format("2006-01-02 15:04"), s.LastPlayed.Format("2006-01-02 15:04"))
		if *withStats {
			stats, statsErr := store.Statistics(ctx, s.Name)
			if statsErr != nil {
				fmt.Fprintf(w, "%s\tERROR - %v\n", line, statsErr)
				continue
			}
			line += fmt.Sprintf("\t%d\t%d\t%d\t%d\t%d",
				stats.Encounters, stats.Victories, stats.Defeats, stats.Fled, stats.ExperienceEarned)
		}
		fmt.Fprintln(w, line)
	}
	if err := w.Flush(); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
}
