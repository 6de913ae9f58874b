// Package registry maps game IDs to factories so the platform layers can
// build a game from its settings without importing it.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bricker/internal/config"
	"github.com/vovakirdan/tui-bricker/internal/core"
	"github.com/vovakirdan/tui-bricker/internal/scene"
)

// Game is driven by the platform one fixed tick at a time.
// Implementations hold pure logic: no Bubble Tea, no terminal access.
type Game interface {
	// ID is the key used for storage and the registry (e.g., "bricker").
	ID() string

	// Title is the display name (e.g., "Bricker").
	Title() string

	// Reset starts a fresh round. The RuntimeConfig carries the tick
	// rate and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame into dst.
	Render(dst *core.Screen)

	// State returns score, lives, bricks and the round status.
	State() core.GameState
}

// Settings carries the collaborators a game is built with.
// Zero fields mean the game's own defaults.
type Settings struct {
	Config config.BrickerConfig
	Images scene.ImageReader
	Sounds scene.SoundReader
	Logger *log.Logger
}

// Factory builds a game from its settings.
type Factory func(Settings) Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
)

// Register adds a factory, usually from the game package's init.
// It panics on a duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
}

// Create builds the game registered under id.
func Create(id string, s Settings) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q (registered: %s)", id, strings.Join(IDs(), ", "))
	}
	return f(s), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// IDs returns the registered IDs in sorted order.
func IDs() []string {
	mu.RLock()
	defer mu.RUnlock()

	ids := make([]string, 0, len(factories))
	for id := range factories {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
