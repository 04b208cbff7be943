// Package registry provides a global registry of play mode factories.
// Modes register themselves in init() functions, so the CLI and the
// terminal runtime can discover them without importing each one by name.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-jump/internal/core"
)

// Game is a playable session as seen by the platform layer.
// Implementations hold pure simulation state and never import Bubble Tea;
// the platform owns input mapping, timing and terminal output.
type Game interface {
	// ID returns a unique identifier (e.g. "jump", "jump_space").
	// Used for CLI commands and as the storage key.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a fresh session.
	// The RuntimeConfig provides the terminal size and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a pre-cleared screen buffer.
	Render(dst *core.Screen)

	State() core.GameState
}

// GameInfo describes a registered mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh, unstarted game.
type Factory func() Game

// ErrUnknownMode is returned by Create for an unregistered ID.
var ErrUnknownMode = errors.New("registry: unknown mode")

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a factory. Panics on a duplicate ID.
// The factory is called once to read the mode title.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", id))
	}
	entries[id] = entry{
		info:    GameInfo{ID: id, Title: f().Title()},
		factory: f,
	}
}

// List returns all registered modes sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return result
}

// Create instantiates a mode by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownMode, id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
