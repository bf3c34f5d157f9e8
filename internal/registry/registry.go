// Package registry provides a global registry of named lookup tables.
// Packages that own a table register it in their init() functions, so the
// CLI and the browser can list and resolve tables without hardcoded
// dependencies on every owner.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/keepercfg/internal/confparse"
)

// Source returns the current contents of a table.
type Source func() confparse.NamedTable

// TableInfo contains metadata about a registered table.
type TableInfo struct {
	ID    string
	Title string
	Size  int
}

var (
	sources = make(map[string]Source)
	titles  = make(map[string]string)
	mu      sync.RWMutex
)

// Register adds a table source to the registry.
// Panics if a table with the same ID is already registered.
func Register(id, title string, src Source) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := sources[id]; exists {
		panic(fmt.Sprintf("registry: table %q already registered", id))
	}
	sources[id] = src
	titles[id] = title
}

// List returns information about all registered tables, sorted by ID.
func List() []TableInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]TableInfo, 0, len(sources))
	for id, src := range sources {
		result = append(result, TableInfo{
			ID:    id,
			Title: titles[id],
			Size:  len(src()),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns the contents of a table by its ID.
// Returns an error if the table ID is not registered.
func Get(id string) (confparse.NamedTable, error) {
	mu.RLock()
	src, ok := sources[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown table %q", id)
	}
	return src(), nil
}

// Exists checks if a table with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := sources[id]
	return ok
}
