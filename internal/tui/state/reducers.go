package state

// ToggleMenu opens m, or closes it when it is already the active dropdown.
// Only one dropdown is open at a time.
func ToggleMenu(s UIState, m Menu) UIState {
	if s.ActiveMenu == m {
		return CloseMenu(s)
	}
	s.ActiveMenu = m
	s.MenuCursor = 0
	return s
}

// CloseMenu closes the active dropdown, if any.
func CloseMenu(s UIState) UIState {
	s.ActiveMenu = MenuNone
	s.MenuCursor = 0
	return s
}

// StepMenu moves the open dropdown left or right, wrapping around.
func StepMenu(s UIState, delta int) UIState {
	if s.ActiveMenu == MenuNone {
		return s
	}
	idx := 0
	for i, m := range Menus {
		if m == s.ActiveMenu {
			idx = i
		}
	}
	n := len(Menus)
	idx = ((idx+delta)%n + n) % n
	s.ActiveMenu = Menus[idx]
	s.MenuCursor = 0
	return s
}

// MoveMenuCursor moves the highlighted item within a dropdown of n items.
func MoveMenuCursor(s UIState, delta, n int) UIState {
	if s.ActiveMenu == MenuNone || n <= 0 {
		return s
	}
	s.MenuCursor = ((s.MenuCursor+delta)%n + n) % n
	return s
}

func ToggleTheme(s UIState) UIState {
	if s.Theme == Light {
		s.Theme = Dark
		s.Notice = "Dark theme"
	} else {
		s.Theme = Light
		s.Notice = "Light theme"
	}
	return s
}

func ToggleFullscreen(s UIState) UIState {
	s.Fullscreen = !s.Fullscreen
	return s
}

// OpenOverlay shows a modal panel and closes any dropdown.
func OpenOverlay(s UIState, o Overlay) UIState {
	s = CloseMenu(s)
	s.Overlay = o
	return s
}

func CloseOverlay(s UIState) UIState {
	s.Overlay = OverlayNone
	return s
}

// AskConfirm raises a yes/no question and closes any dropdown.
func AskConfirm(s UIState, c Confirm) UIState {
	s = CloseMenu(s)
	s.Confirm = c
	return s
}

func ResolveConfirm(s UIState) UIState {
	s.Confirm = ConfirmNone
	return s
}

// Resize records the terminal size.
func Resize(s UIState, width, height int) UIState {
	s.Width = width
	s.Height = height
	return s
}

func SetNotice(s UIState, msg string) UIState {
	s.Notice = msg
	return s
}

// Modal reports whether a dialog currently owns the keyboard.
func Modal(s UIState) bool {
	return s.Confirm != ConfirmNone || s.Overlay != OverlayNone
}
