package menubar

import (
	"strings"
	"testing"

	"notepad/internal/tui/state"
	"notepad/internal/tui/util"
)

var plain = util.NewStyles(state.Light, true)

func TestViewShowsUnsavedMarker(t *testing.T) {
	out := View(state.UIState{Width: 60}, Flags{Saved: false}, plain)
	if !strings.HasPrefix(out, " Notepad*") {
		t.Fatalf("expected unsaved marker, got %q", strings.SplitN(out, "\n", 2)[0])
	}
	out = View(state.UIState{Width: 60}, Flags{Saved: true}, plain)
	if strings.Contains(strings.SplitN(out, "\n", 2)[0], "*") {
		t.Fatalf("saved document must not show marker")
	}
}

func TestViewToolbarWhenClosed(t *testing.T) {
	out := View(state.UIState{}, Flags{Saved: true}, plain)
	for _, want := range []string{"[New]", "[Save]", "[Print]", "[Copy]", "[Cut]", "[Undo]", "[Redo]"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %s in toolbar: %s", want, out)
		}
	}
	if lines := strings.Count(out, "\n") + 1; lines != Height(state.UIState{}) {
		t.Fatalf("rendered %d rows, Height says %d", lines, Height(state.UIState{}))
	}
}

func TestViewDropdownWhenOpen(t *testing.T) {
	s := state.ToggleMenu(state.UIState{}, state.MenuEdit)
	out := View(s, Flags{Saved: true}, plain)
	for _, want := range []string{"Copy", "Cut", "Undo", "Redo", "Clear All", "ctrl+z"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %s in dropdown: %s", want, out)
		}
	}
	if strings.Contains(out, "[New]") {
		t.Fatalf("toolbar should be hidden behind the dropdown")
	}
	if lines := strings.Count(out, "\n") + 1; lines != Height(s) {
		t.Fatalf("rendered %d rows, Height says %d", lines, Height(s))
	}
}

func TestEnabled(t *testing.T) {
	undo := Item{Cmd: state.CmdUndo}
	redo := Item{Cmd: state.CmdRedo}
	if Enabled(undo, Flags{}) || Enabled(redo, Flags{}) {
		t.Fatalf("undo/redo disabled without history")
	}
	if !Enabled(undo, Flags{CanUndo: true}) || !Enabled(redo, Flags{CanRedo: true}) {
		t.Fatalf("undo/redo enabled with history")
	}
	if !Enabled(Item{Cmd: state.CmdCopy}, Flags{}) {
		t.Fatalf("copy is always enabled")
	}
}

func TestLocateTitles(t *testing.T) {
	spans := titleSpans()
	for _, m := range state.Menus {
		h := Locate(state.UIState{}, Flags{}, spans[m][0], 0)
		if h.Menu != m || !h.Inside {
			t.Fatalf("expected press on %v title, got %+v", m, h)
		}
	}
	if h := Locate(state.UIState{}, Flags{}, 0, 0); h.Inside {
		t.Fatalf("press on the brand is outside the menus")
	}
}

func TestLocateDropdownItems(t *testing.T) {
	s := state.ToggleMenu(state.UIState{}, state.MenuFile)
	x := titleSpans()[state.MenuFile][0] + 2
	h := Locate(s, Flags{}, x, 2)
	if h.Cmd != state.CmdNew {
		t.Fatalf("expected New at first row, got %+v", h)
	}
	h = Locate(s, Flags{}, x, 3)
	if h.Cmd != state.CmdSave {
		t.Fatalf("expected Save at second row, got %+v", h)
	}
	if h := Locate(s, Flags{}, x, 1); !h.Inside || h.Cmd != state.CmdNone {
		t.Fatalf("border press should be inside without a command: %+v", h)
	}
	if h := Locate(s, Flags{}, x, 30); h.Inside {
		t.Fatalf("press below the dropdown is outside: %+v", h)
	}
	if h := Locate(s, Flags{}, x+40, 2); h.Inside {
		t.Fatalf("press right of the dropdown is outside: %+v", h)
	}
}

func TestLocateDisabledItem(t *testing.T) {
	s := state.ToggleMenu(state.UIState{}, state.MenuEdit)
	x := titleSpans()[state.MenuEdit][0] + 2
	// Undo is the third item
	if h := Locate(s, Flags{}, x, 4); h.Cmd != state.CmdNone || !h.Inside {
		t.Fatalf("disabled undo must not fire: %+v", h)
	}
	if h := Locate(s, Flags{CanUndo: true}, x, 4); h.Cmd != state.CmdUndo {
		t.Fatalf("enabled undo should fire: %+v", h)
	}
}

func TestLocateToolbar(t *testing.T) {
	for _, b := range buttonSpans() {
		h := Locate(state.UIState{}, Flags{CanUndo: true, CanRedo: true}, b.span[0], 1)
		if h.Cmd != b.cmd {
			t.Fatalf("expected %v, got %+v", b.cmd, h)
		}
	}
	if h := Locate(state.UIState{}, Flags{}, 0, 5); h.Inside {
		t.Fatalf("editor press is outside the bar")
	}
}
