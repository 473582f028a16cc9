// Package registry provides a global registry of playable levels.
// Built-in levels register themselves in init(); level directories can be
// added at runtime, allowing the CLI and TUI to discover levels by ID.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/zombietrap/internal/zombietrap"
	"github.com/vovakirdan/zombietrap/internal/zombietrap/levels"
)

// Registry errors.
var (
	ErrUnknownLevel   = errors.New("registry: unknown level")
	ErrDuplicateLevel = errors.New("registry: level already registered")
)

// LevelInfo contains metadata about a registered level.
type LevelInfo struct {
	ID     string
	Title  string
	Width  int
	Height int
	Source string // "builtin" or a file path
}

// Factory creates a fresh initial configuration for a level.
type Factory func() (*zombietrap.Game, error)

type entry struct {
	info    LevelInfo
	factory Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

func init() {
	builtin, err := levels.Builtin()
	if err != nil {
		panic(fmt.Sprintf("registry: cannot load builtin levels: %v", err))
	}
	for _, lvl := range builtin {
		lvl.FilePath = "builtin"
		if err := RegisterLevel(lvl); err != nil {
			panic(err)
		}
	}
}

// Register adds a level factory to the registry.
// Returns ErrDuplicateLevel if the ID is already taken.
func Register(info LevelInfo, f Factory) error {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[info.ID]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateLevel, info.ID)
	}
	entries[info.ID] = entry{info: info, factory: f}
	return nil
}

// RegisterLevel registers a parsed level file.
func RegisterLevel(lvl levels.Level) error {
	w, h := lvl.Size()
	return Register(LevelInfo{
		ID:     lvl.ID,
		Title:  lvl.Name,
		Width:  w,
		Height: h,
		Source: lvl.FilePath,
	}, lvl.NewGame)
}

// RegisterDir registers every level found under dir.
// Levels whose ID is already taken are skipped and reported in the error.
func RegisterDir(dir string) (int, error) {
	lvls, err := levels.NewLoader(dir).LoadAll()
	if err != nil {
		return 0, err
	}

	var errs []error
	added := 0
	for _, lvl := range lvls {
		if err := RegisterLevel(lvl); err != nil {
			errs = append(errs, err)
			continue
		}
		added++
	}
	return added, errors.Join(errs...)
}

// List returns information about all registered levels, sorted by ID.
func List() []LevelInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]LevelInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create builds a new initial configuration for the level with the given ID.
func Create(id string) (*zombietrap.Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownLevel, id)
	}
	return e.factory()
}

// Info returns the metadata for a level.
func Info(id string) (LevelInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.info, ok
}

// Exists checks if a level with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
