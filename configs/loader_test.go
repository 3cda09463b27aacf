package configs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name string, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader([]string{
		writeFile(t, "a.cue", "trace: true\n"),
		writeFile(t, "b.cue", "trace: false\ndump: true\n"),
	}, Schema)
	if err := loader.Err(); err != nil {
		t.Fatal(err)
	}

	var trace bool
	if err := loader.AssignFirst("trace", &trace); err != nil {
		t.Fatal(err)
	}
	if !trace {
		t.Fatal("first file should win")
	}

	var dump bool
	if err := loader.AssignFirst("dump", &dump); err != nil {
		t.Fatal(err)
	}
	if !dump {
		t.Fatal("should fall through to second file")
	}

	var tap bool
	if err := loader.AssignFirst("tap", &tap); !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestFirst(t *testing.T) {
	loader := NewLoader([]string{
		writeFile(t, "a.cue", "dump: true\n"),
	}, Schema)
	if !First[bool](loader, "dump") {
		t.Fatal()
	}
	if First[bool](loader, "trace") {
		t.Fatal()
	}

	empty := NewLoader(nil, Schema)
	if First[bool](empty, "dump") {
		t.Fatal()
	}
}

func TestUnknownField(t *testing.T) {
	loader := NewLoader([]string{
		writeFile(t, "bad.cue", "unknown_field: 1\n"),
	}, Schema)
	if err := loader.Err(); err == nil {
		t.Fatal("should error")
	}
	if First[bool](loader, "trace") {
		t.Fatal()
	}
}

func TestBadType(t *testing.T) {
	loader := NewLoader([]string{
		writeFile(t, "bad.cue", `trace: "yes"`+"\n"),
	}, Schema)
	if err := loader.Err(); err == nil {
		t.Fatal("should error")
	}
}

func TestMissingFile(t *testing.T) {
	loader := NewLoader([]string{
		filepath.Join(t.TempDir(), "none.cue"),
	}, Schema)
	if err := loader.Err(); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("got %v", err)
	}
}
