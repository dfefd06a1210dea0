package msgcat

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRenderDefaults(t *testing.T) {
	c, err := New("")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got, err := c.Render("board.column_full", nil)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != "This column is full! Please choose another one." {
		t.Errorf("column_full = %q", got)
	}

	got, err = c.Render("board.win", map[string]any{"Stone": "●", "Name": "Pink"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != "● Pink wins!" {
		t.Errorf("win = %q", got)
	}
}

func TestRenderMissing(t *testing.T) {
	c, err := New("")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := c.Render("board.nope", nil); err == nil {
		t.Error("expected error for unknown key")
	}
	if _, err := c.Render("board.win", map[string]any{"Name": "Pink"}); err == nil {
		t.Error("expected error for missing template field")
	}
	if got := c.Text("board.nope", nil); got != "board.nope" {
		t.Errorf("Text fallback = %q, want key", got)
	}
}

func TestOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "messages.yaml")
	content := "board:\n  win: \"{{.Name}} takes the round\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write override: %v", err)
	}
	c, err := New(path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := c.Text("board.win", map[string]any{"Name": "Teal"}); got != "Teal takes the round" {
		t.Errorf("win = %q", got)
	}
	// Keys absent from the override keep their defaults.
	if got := c.Text("board.reset", nil); got != "Board cleared." {
		t.Errorf("reset = %q", got)
	}
}

func TestOverrideMissingFile(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "absent.yaml")); err != nil {
		t.Errorf("missing override should be ignored: %v", err)
	}
}

func TestOverrideRejectsNonStrings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "messages.yaml")
	if err := os.WriteFile(path, []byte("board:\n  win: 3\n"), 0644); err != nil {
		t.Fatalf("write override: %v", err)
	}
	if _, err := New(path); err == nil {
		t.Error("expected error for non-string leaf")
	}
}
