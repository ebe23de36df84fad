package adventure

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/dungeon-engine/internal/domain/monster"
	dnderr "github.com/KirkDiggler/dungeon-engine/internal/errors"
)

// Location is a place the player can adventure in
type Location interface {
	Key() string
	Name() string
	Emoji() string
	Intro() string
	// Levels bounds the monsters the location can produce
	Levels() monster.LevelRange
	// GenerateEncounter decides what the character meets next
	GenerateEncounter(ctx context.Context, characterLevel int) (*Encounter, error)
}

// Encounter holds exactly one of a monster or a peaceful event
type Encounter struct {
	Monster       *monster.Instance
	PeacefulEvent string
}

// IsPeaceful reports whether the encounter needs no fight
func (e *Encounter) IsPeaceful() bool {
	return e.Monster == nil
}

// Registry looks locations up by key
type Registry struct {
	mu        sync.RWMutex
	locations map[string]Location
}

// NewRegistry creates a registry holding locations
func NewRegistry(locations ...Location) *Registry {
	r := &Registry{locations: make(map[string]Location)}
	for _, l := range locations {
		r.locations[l.Key()] = l
	}
	return r
}

// Register adds a location, replacing any with the same key
func (r *Registry) Register(l Location) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.locations[l.Key()] = l
}

// Get returns the location registered under key
func (r *Registry) Get(key string) (Location, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.locations[key]
	if !ok {
		return nil, dnderr.NotFoundf("location %q not found", key).WithMeta("location", key)
	}
	return l, nil
}

// List returns every location ordered by key
func (r *Registry) List() []Location {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Location, 0, len(r.locations))
	for _, l := range r.locations {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })
	return out
}
