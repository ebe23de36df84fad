package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/KirkDiggler/dungeon-engine/internal/app"
	"github.com/KirkDiggler/dungeon-engine/internal/config"
	"github.com/KirkDiggler/dungeon-engine/internal/console"
	dnderr "github.com/KirkDiggler/dungeon-engine/internal/errors"
)

func main() {
	// A missing .env is fine, the environment may already be set
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider, err := app.NewProvider(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to start", dnderr.Fields(err)...)
	}
	defer func() {
		if closeErr := provider.Gateway.Close(); closeErr != nil {
			logger.Error("failed to close store", zap.Error(closeErr))
		}
	}()

	game, err := console.NewGame(&console.GameConfig{
		Provider: provider,
		In:       os.Stdin,
		Out:      os.Stdout,
		Logger:   logger.Named("console"),
	})
	if err != nil {
		logger.Fatal("failed to create game", zap.Error(err))
	}

	if err := game.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error("game ended with an error", zap.Error(err))
	}
}
