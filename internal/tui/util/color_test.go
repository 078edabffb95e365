package util

import (
	"testing"

	"notepad/internal/tui/state"
)

func TestNoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	if NoColor(false) {
		t.Fatalf("expected color when NO_COLOR is empty")
	}
	if !NoColor(true) {
		t.Fatalf("explicit flag must disable color")
	}
	t.Setenv("NO_COLOR", "1")
	if !NoColor(false) {
		t.Fatalf("NO_COLOR must disable color")
	}
}

func TestPalettesDiffer(t *testing.T) {
	if LightPalette().Bg == DarkPalette().Bg {
		t.Fatalf("themes should use different backgrounds")
	}
	// plain styles render text unchanged
	s := NewStyles(state.Dark, true)
	if got := s.Item.Render("x"); got != "x" {
		t.Fatalf("expected plain rendering, got %q", got)
	}
}
