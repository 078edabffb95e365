package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c != Default() {
		t.Fatalf("expected defaults, got %+v", c)
	}
	if c.AutosaveDelay() != time.Second {
		t.Fatalf("expected 1s debounce, got %v", c.AutosaveDelay())
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	body := `{"store":"sqlite","autosave_ms":250,"filename":"todo","theme":"dark"}`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Store != "sqlite" || c.Filename != "todo" || c.Theme != "dark" {
		t.Fatalf("overrides not applied: %+v", c)
	}
	if c.ExportDir != "." {
		t.Fatalf("expected default export dir kept, got %q", c.ExportDir)
	}
	if c.AutosaveDelay() != 250*time.Millisecond {
		t.Fatalf("unexpected delay %v", c.AutosaveDelay())
	}
	if filepath.Base(c.ResolvedStorePath()) != "notepad.db" {
		t.Fatalf("unexpected sqlite path %s", c.ResolvedStorePath())
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(`{"theme":"neon"}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected validation error")
	}
	if err := os.WriteFile(path, []byte(`{`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", FileName)
	want := Default()
	want.ExportDir = "/tmp/out"
	want.Fullscreen = true
	if err := Save(path, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != want {
		t.Fatalf("got %+v want %+v", got, want)
	}
}
