// Package uuid hands out item IDs behind an interface so tests can predict them
package uuid

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Generator produces unique item IDs
type Generator interface {
	New() string
}

// RandomGenerator returns random version 4 UUIDs
type RandomGenerator struct{}

// NewRandomGenerator creates a RandomGenerator
func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{}
}

func (g *RandomGenerator) New() string {
	return uuid.NewString()
}

// SequenceGenerator returns prefix-1, prefix-2, ... and is safe for concurrent use
type SequenceGenerator struct {
	Prefix string

	mu   sync.Mutex
	next int
}

func (g *SequenceGenerator) New() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return fmt.Sprintf("%s-%d", g.Prefix, g.next)
}
