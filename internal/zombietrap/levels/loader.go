// Package levels loads Zombie Trap level files.
// This package depends on zombietrap but zombietrap does not depend on levels.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/vovakirdan/zombietrap/internal/zombietrap"
)

// ErrMissingID is returned for a level file without an id.
var ErrMissingID = errors.New("levels: missing level id")

// ErrNotFound is returned by LoadByID when no level matches.
var ErrNotFound = errors.New("levels: level not found")

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Level represents a complete level definition.
type Level struct {
	ID       string
	Name     string
	Points   int
	Rows     []string
	Metadata map[string]string
	FilePath string
}

// NewGame creates the initial configuration for this level.
func (l *Level) NewGame() (*zombietrap.Game, error) {
	return zombietrap.Parse(l.Rows, l.Points)
}

// Size returns the board dimensions.
func (l *Level) Size() (w, h int) {
	if len(l.Rows) == 0 {
		return 0, 0
	}
	return len([]rune(l.Rows[0])), len(l.Rows)
}

// Loader handles loading levels from a directory.
type Loader struct {
	Root string
	fsys fs.FS
}

// NewLoader creates a new level loader for a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{Root: root, fsys: os.DirFS(root)}
}

// LoadAll recursively scans and loads all level files.
// Invalid files are skipped. Returns levels sorted by ID.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := fs.WalkDir(l.fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !slices.Contains(FormatExtensions(), strings.ToLower(filepath.Ext(path))) {
			return nil
		}

		level, err := l.loadFS(path)
		if err != nil {
			// Skip invalid files
			return nil
		}
		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, nil
}

// LoadFile loads a single level file from an arbitrary path.
func LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", path, err)
	}
	level, err := ParseYAML(data)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	level.FilePath = path
	return level, nil
}

func (l *Loader) loadFS(path string) (Level, error) {
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", path, err)
	}
	level, err := ParseYAML(data)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	level.FilePath = filepath.Join(l.Root, path)
	return level, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Builtin returns the levels compiled into the binary, sorted by ID.
func Builtin() ([]Level, error) {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		return nil, err
	}
	l := &Loader{Root: "builtin", fsys: sub}
	return l.LoadAll()
}
