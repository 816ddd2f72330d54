// Package theme provides a global registry of cosmetic variants.
// Themes register themselves in init() functions so front ends can
// list and select them by ID without hardcoded dependencies.
package theme

import (
	"fmt"
	"sort"
	"sync"
)

// DefaultID is used when no theme is requested.
const DefaultID = "neon"

// Info contains metadata about a registered theme.
type Info struct {
	ID    string
	Title string
}

var (
	themes = make(map[string]Theme)
	mu     sync.RWMutex
)

// Register adds a theme to the registry.
// Typically called from an init() function.
// Panics if the ID is empty or already registered, or the palette is empty.
func Register(t Theme) {
	mu.Lock()
	defer mu.Unlock()

	if t.ID == "" {
		panic("theme: empty theme ID")
	}
	if _, exists := themes[t.ID]; exists {
		panic(fmt.Sprintf("theme: %q already registered", t.ID))
	}
	if len(t.Palette) == 0 {
		panic(fmt.Sprintf("theme: %q has an empty palette", t.ID))
	}

	themes[t.ID] = t
}

// List returns information about all registered themes, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(themes))
	for id, t := range themes {
		result = append(result, Info{ID: id, Title: t.Title})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get looks a theme up by ID. An empty ID selects DefaultID.
func Get(id string) (Theme, error) {
	if id == "" {
		id = DefaultID
	}

	mu.RLock()
	defer mu.RUnlock()

	t, ok := themes[id]
	if !ok {
		return Theme{}, fmt.Errorf("theme: unknown theme %q", id)
	}
	return t, nil
}

// Exists checks if a theme with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := themes[id]
	return ok
}
