// Package registry provides a global registry of board presets.
// Built-in presets register themselves in init() functions and the
// config layer may override or extend them at startup, allowing the
// platform to resolve a preset by name without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-mines/internal/core"
)

// Preset is a named board configuration.
type Preset struct {
	// ID is the unique identifier used on the command line and in stats (e.g., "classic").
	ID string

	// Title is a human-readable name for display (e.g., "Classic").
	Title string

	// Board holds the generation parameters. Seed is ignored.
	Board core.BoardConfig
}

var (
	presets = make(map[string]Preset)
	mu      sync.RWMutex
)

// Register adds a preset to the registry.
// Typically called from an init() function.
// Panics if a preset with the same ID is already registered.
func Register(p Preset) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := presets[p.ID]; exists {
		panic(fmt.Sprintf("registry: preset %q already registered", p.ID))
	}
	presets[p.ID] = p
}

// Override adds a preset or replaces the one with the same ID.
func Override(p Preset) {
	mu.Lock()
	defer mu.Unlock()

	presets[p.ID] = p
}

// List returns all registered presets, sorted by ID.
func List() []Preset {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Preset, 0, len(presets))
	for _, p := range presets {
		result = append(result, p)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Lookup returns the preset with the given ID.
// Returns an error if the preset is not registered.
func Lookup(id string) (Preset, error) {
	mu.RLock()
	defer mu.RUnlock()

	p, ok := presets[id]
	if !ok {
		return Preset{}, fmt.Errorf("registry: unknown preset %q", id)
	}
	return p, nil
}

// Exists checks if a preset with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := presets[id]
	return ok
}
