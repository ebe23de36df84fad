package gateway

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/dungeon-engine/internal/domain/character"
	"github.com/KirkDiggler/dungeon-engine/internal/domain/monster"
	"github.com/KirkDiggler/dungeon-engine/internal/domain/statistics"
)

type memoryRecord struct {
	char  *character.Character
	stats statistics.Record
	meta  Summary
}

// InMemoryGateway keeps everything in process memory.
// Useful for testing and throwaway sessions.
type InMemoryGateway struct {
	mu           sync.RWMutex
	characters   map[string]*memoryRecord
	templates    map[string]*monster.Template
	timeProvider TimeProvider
}

// NewInMemory creates an empty in-memory gateway
func NewInMemory(timeProvider TimeProvider) *InMemoryGateway {
	return &InMemoryGateway{
		characters:   make(map[string]*memoryRecord),
		templates:    make(map[string]*monster.Template),
		timeProvider: timeProviderOrDefault(timeProvider),
	}
}

func (g *InMemoryGateway) Load(ctx context.Context, name string) (*character.Character, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	rec, ok := g.characters[name]
	if !ok {
		return nil, notFound(name)
	}
	return rec.char.Clone(), nil
}

func (g *InMemoryGateway) Save(ctx context.Context, char *character.Character) error {
	if err := validateForSave(char); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.put(char)
	return nil
}

func (g *InMemoryGateway) Commit(ctx context.Context, char *character.Character, delta *statistics.Delta) error {
	if err := validateCommit(char, delta); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	rec := g.put(char)
	rec.stats.Apply(delta)
	return nil
}

// put stores a copy of char; callers hold the write lock
func (g *InMemoryGateway) put(char *character.Character) *memoryRecord {
	now := g.timeProvider.Now()
	rec, ok := g.characters[char.Name]
	if !ok {
		rec = &memoryRecord{
			stats: statistics.Record{CharacterName: char.Name},
			meta:  Summary{CreatedAt: now},
		}
		g.characters[char.Name] = rec
	}
	rec.char = char.Clone()
	rec.meta.Name = char.Name
	rec.meta.Emoji = char.Emoji
	rec.meta.Level = char.Level
	rec.meta.LastPlayed = now
	return rec
}

func (g *InMemoryGateway) Delete(ctx context.Context, name string) error {
	if err := validateName(name); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.characters[name]; !ok {
		return notFound(name)
	}
	delete(g.characters, name)
	return nil
}

func (g *InMemoryGateway) List(ctx context.Context) ([]*Summary, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Summary, 0, len(g.characters))
	for _, rec := range g.characters {
		meta := rec.meta
		out = append(out, &meta)
	}
	sortSummaries(out)
	return out, nil
}

func (g *InMemoryGateway) ListTemplates(ctx context.Context, levels monster.LevelRange) ([]*monster.Template, error) {
	if err := levels.Validate(); err != nil {
		return nil, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []*monster.Template
	for _, t := range g.templates {
		if t.Levels.Overlaps(levels) {
			copied := *t
			out = append(out, &copied)
		}
	}
	sortTemplates(out)
	return out, nil
}

func (g *InMemoryGateway) SeedTemplates(ctx context.Context, templates []*monster.Template) error {
	if err := validateTemplates(templates); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	for _, t := range templates {
		if _, ok := g.templates[t.Name]; ok {
			continue
		}
		copied := *t
		g.templates[t.Name] = &copied
	}
	return nil
}

func (g *InMemoryGateway) RecordStatistics(ctx context.Context, delta *statistics.Delta) error {
	if err := delta.Validate(); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	rec, ok := g.characters[delta.CharacterName]
	if !ok {
		return notFound(delta.CharacterName)
	}
	rec.stats.Apply(delta)
	return nil
}

func (g *InMemoryGateway) Statistics(ctx context.Context, name string) (*statistics.Record, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	rec, ok := g.characters[name]
	if !ok {
		return nil, notFound(name)
	}
	stats := rec.stats
	return &stats, nil
}

func (g *InMemoryGateway) Close() error {
	return nil
}

func sortSummaries(list []*Summary) {
	sort.SliceStable(list, func(i, j int) bool {
		if !list[i].LastPlayed.Equal(list[j].LastPlayed) {
			return list[i].LastPlayed.After(list[j].LastPlayed)
		}
		return list[i].Name < list[j].Name
	})
}

func sortTemplates(list []*monster.Template) {
	sort.Slice(list, func(i, j int) bool {
		return list[i].Name < list[j].Name
	})
}
