package helpoverlay

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"

	"notepad/internal/tui/state"
	"notepad/internal/tui/util"
)

var plain = util.NewStyles(state.Light, true)

func TestKeysGroupsAndSkipsDisabled(t *testing.T) {
	undo := key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo"))
	hidden := key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "secret"), key.WithDisabled())
	out := Keys([]Section{{Title: "Edit", Keys: []key.Binding{undo, hidden}}}, plain)
	if !strings.Contains(out, "Edit:") || !strings.Contains(out, "ctrl+z") || !strings.Contains(out, "undo") {
		t.Fatalf("missing section content: %s", out)
	}
	if strings.Contains(out, "secret") {
		t.Fatalf("disabled bindings must be hidden")
	}
}

func TestAboutShowsVersion(t *testing.T) {
	out := About("1.2.3", plain)
	if !strings.Contains(out, "About Notepad") || !strings.Contains(out, "Version 1.2.3") {
		t.Fatalf("unexpected about text: %s", out)
	}
}
