package gateway

//go:generate mockgen -destination=mock/mock.go -package=mockgateway -source=gateway.go

import (
	"context"
	"time"

	"github.com/KirkDiggler/dungeon-engine/internal/domain/character"
	"github.com/KirkDiggler/dungeon-engine/internal/domain/monster"
	"github.com/KirkDiggler/dungeon-engine/internal/domain/statistics"
)

// Gateway is the single durable home of characters, monster templates and statistics.
// Every write either lands completely or not at all.
type Gateway interface {
	// Load returns the character saved under name
	Load(ctx context.Context, name string) (*character.Character, error)

	// Save creates or fully replaces the character record
	Save(ctx context.Context, char *character.Character) error

	// Commit saves the character and applies the statistics delta as one unit
	Commit(ctx context.Context, char *character.Character, delta *statistics.Delta) error

	// Delete removes the character along with its items and statistics
	Delete(ctx context.Context, name string) error

	// List returns every saved character, most recently played first
	List(ctx context.Context) ([]*Summary, error)

	// ListTemplates returns templates whose level range overlaps levels, by name
	ListTemplates(ctx context.Context, levels monster.LevelRange) ([]*monster.Template, error)

	// SeedTemplates stores templates whose names are not present yet
	SeedTemplates(ctx context.Context, templates []*monster.Template) error

	// RecordStatistics increments the character's counters
	RecordStatistics(ctx context.Context, delta *statistics.Delta) error

	// Statistics returns the character's lifetime counters
	Statistics(ctx context.Context, name string) (*statistics.Record, error)

	// Close releases the underlying store
	Close() error
}

// Summary is the list view of a saved character
type Summary struct {
	Name       string
	Emoji      string
	Level      int
	CreatedAt  time.Time
	LastPlayed time.Time
}

var (
	_ Gateway = (*InMemoryGateway)(nil)
	_ Gateway = (*SQLiteGateway)(nil)
	_ Gateway = (*RedisGateway)(nil)
)
