package levels

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const sampleLevel = `id: test01
name: Sample
points: 3
rows:
  - "#####"
  - "#Z.O#"
  - "#####"
metadata:
  author: tester
`

func writeLevel(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestParseYAML(t *testing.T) {
	lvl, err := ParseYAML([]byte(sampleLevel))
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}
	if lvl.ID != "test01" || lvl.Name != "Sample" {
		t.Errorf("unexpected identity: %q %q", lvl.ID, lvl.Name)
	}
	if lvl.Points != 3 {
		t.Errorf("expected 3 points, got %d", lvl.Points)
	}
	if w, h := lvl.Size(); w != 5 || h != 3 {
		t.Errorf("expected 5x3, got %dx%d", w, h)
	}
	if lvl.Metadata["author"] != "tester" {
		t.Errorf("metadata not parsed: %v", lvl.Metadata)
	}
}

func TestParseYAMLDefaults(t *testing.T) {
	lvl, err := ParseYAML([]byte("id: bare\nrows: [\"ZO\"]\n"))
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}
	if lvl.Name != "bare" {
		t.Errorf("name should default to id, got %q", lvl.Name)
	}
	if lvl.Points != 1 {
		t.Errorf("points should default to 1, got %d", lvl.Points)
	}
}

func TestParseYAMLErrors(t *testing.T) {
	if _, err := ParseYAML([]byte("name: nobody\nrows: [\"ZO\"]\n")); !errors.Is(err, ErrMissingID) {
		t.Errorf("expected ErrMissingID, got %v", err)
	}
	if _, err := ParseYAML([]byte("id: bad\nrows: [\"ZX\"]\n")); err == nil {
		t.Error("expected an error for an unknown cell")
	}
	if _, err := ParseYAML([]byte("id: [")); err == nil {
		t.Error("expected an error for malformed yaml")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	lvl, err := ParseYAML([]byte(sampleLevel))
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}
	data, err := MarshalYAML(lvl)
	if err != nil {
		t.Fatalf("MarshalYAML failed: %v", err)
	}
	back, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML of marshaled level failed: %v", err)
	}
	if back.ID != lvl.ID || back.Points != lvl.Points || len(back.Rows) != len(lvl.Rows) {
		t.Errorf("round trip mismatch: %+v vs %+v", back, lvl)
	}
}

func TestLoaderLoadAll(t *testing.T) {
	dir := t.TempDir()
	writeLevel(t, dir, "b.yaml", "id: lvl-b\nrows: [\"ZO\"]\n")
	writeLevel(t, dir, "nested/a.yml", "id: lvl-a\nrows: [\"OZ\"]\n")
	writeLevel(t, dir, "broken.yaml", "rows: [\"ZO\"]\n")
	writeLevel(t, dir, "notes.txt", "id: ignored\n")

	lvls, err := NewLoader(dir).LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(lvls) != 2 {
		t.Fatalf("expected 2 levels, got %d", len(lvls))
	}
	if lvls[0].ID != "lvl-a" || lvls[1].ID != "lvl-b" {
		t.Errorf("levels not sorted: %s, %s", lvls[0].ID, lvls[1].ID)
	}
	if lvls[0].FilePath != filepath.Join(dir, "nested", "a.yml") {
		t.Errorf("unexpected file path %q", lvls[0].FilePath)
	}
}

func TestLoaderLoadByID(t *testing.T) {
	dir := t.TempDir()
	writeLevel(t, dir, "sample.yaml", sampleLevel)
	loader := NewLoader(dir)

	lvl, err := loader.LoadByID("test01")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	g, err := lvl.NewGame()
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	if g.Zombies() != 1 || g.Points() != 3 {
		t.Errorf("unexpected game: zombies=%d points=%d", g.Zombies(), g.Points())
	}

	if _, err := loader.LoadByID("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeLevel(t, t.TempDir(), "one.yaml", sampleLevel)

	lvl, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if lvl.FilePath != path {
		t.Errorf("expected FilePath %q, got %q", path, lvl.FilePath)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestBuiltin(t *testing.T) {
	lvls, err := Builtin()
	if err != nil {
		t.Fatalf("Builtin failed: %v", err)
	}
	if len(lvls) != 5 {
		t.Fatalf("expected 5 builtin levels, got %d", len(lvls))
	}
	for i, lvl := range lvls {
		if _, err := lvl.NewGame(); err != nil {
			t.Errorf("builtin %s does not parse: %v", lvl.ID, err)
		}
		if i > 0 && lvls[i-1].ID >= lvl.ID {
			t.Errorf("builtin levels not sorted: %s >= %s", lvls[i-1].ID, lvl.ID)
		}
	}
	if lvls[0].ID != "lvl01" || lvls[0].Name != "First Bite" {
		t.Errorf("unexpected first level: %s %q", lvls[0].ID, lvls[0].Name)
	}
}
