package state

import "testing"

func TestToggleMenuOneAtATime(t *testing.T) {
	s := UIState{}
	s = ToggleMenu(s, MenuFile)
	if s.ActiveMenu != MenuFile {
		t.Fatalf("expected File open")
	}
	s = MoveMenuCursor(s, 1, 3)
	s = ToggleMenu(s, MenuEdit)
	if s.ActiveMenu != MenuEdit || s.MenuCursor != 0 {
		t.Fatalf("opening another menu should replace the active one and reset the cursor")
	}
	s = ToggleMenu(s, MenuEdit)
	if s.ActiveMenu != MenuNone {
		t.Fatalf("toggling the active menu should close it")
	}
}

func TestStepMenuWraps(t *testing.T) {
	s := ToggleMenu(UIState{}, MenuFile)
	s = StepMenu(s, -1)
	if s.ActiveMenu != MenuHelp {
		t.Fatalf("expected wrap to Help, got %v", s.ActiveMenu)
	}
	s = StepMenu(s, 1)
	if s.ActiveMenu != MenuFile {
		t.Fatalf("expected wrap to File, got %v", s.ActiveMenu)
	}
	if StepMenu(UIState{}, 1).ActiveMenu != MenuNone {
		t.Fatalf("stepping with no open menu must not open one")
	}
}

func TestMoveMenuCursorWraps(t *testing.T) {
	s := ToggleMenu(UIState{}, MenuEdit)
	s = MoveMenuCursor(s, -1, 5)
	if s.MenuCursor != 4 {
		t.Fatalf("expected cursor 4, got %d", s.MenuCursor)
	}
	s = MoveMenuCursor(s, 1, 5)
	if s.MenuCursor != 0 {
		t.Fatalf("expected cursor 0, got %d", s.MenuCursor)
	}
}

func TestToggleThemeSetsNotice(t *testing.T) {
	s := ToggleTheme(UIState{Theme: Light})
	if s.Theme != Dark || s.Notice == "" {
		t.Fatalf("expected dark theme and notice")
	}
	if ToggleTheme(s).Theme != Light {
		t.Fatalf("expected light theme")
	}
}

func TestOverlayAndConfirmCloseMenu(t *testing.T) {
	s := ToggleMenu(UIState{}, MenuHelp)
	s = OpenOverlay(s, OverlayAbout)
	if s.ActiveMenu != MenuNone || !Modal(s) {
		t.Fatalf("overlay should close menu and be modal")
	}
	s = CloseOverlay(s)
	s = ToggleMenu(s, MenuFile)
	s = AskConfirm(s, ConfirmNew)
	if s.ActiveMenu != MenuNone || s.Confirm != ConfirmNew {
		t.Fatalf("confirm should close menu")
	}
	if Modal(ResolveConfirm(s)) {
		t.Fatalf("resolved confirm should not be modal")
	}
}

func TestParseTheme(t *testing.T) {
	if ParseTheme("dark") != Dark || ParseTheme("light") != Light || ParseTheme("") != Light {
		t.Fatalf("unexpected theme parsing")
	}
}
