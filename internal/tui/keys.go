package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"notepad/internal/tui/state"
	"notepad/internal/tui/widgets/editor"
	"notepad/internal/tui/widgets/helpoverlay"
)

type keyMap struct {
	New        key.Binding
	Print      key.Binding
	Quit       key.Binding
	Copy       key.Binding
	Cut        key.Binding
	Undo       key.Binding
	Redo       key.Binding
	Clear      key.Binding
	Theme      key.Binding
	Fullscreen key.Binding
	Changes    key.Binding
	Keys       key.Binding
	Menu       key.Binding
	FileMenu   key.Binding
	EditMenu   key.Binding
	ViewMenu   key.Binding
	HelpMenu   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		New:        key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "new")),
		Print:      key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "print")),
		Quit:       key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),
		Copy:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy all")),
		Cut:        key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "cut all")),
		Undo:       key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo:       key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "redo")),
		Clear:      key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear all")),
		Theme:      key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "theme")),
		Fullscreen: key.NewBinding(key.WithKeys("f11"), key.WithHelp("f11", "full screen")),
		Changes:    key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "changes")),
		Keys:       key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "keys")),
		Menu:       key.NewBinding(key.WithKeys("f10"), key.WithHelp("f10", "menu")),
		FileMenu:   key.NewBinding(key.WithKeys("alt+f"), key.WithHelp("alt+f", "file menu")),
		EditMenu:   key.NewBinding(key.WithKeys("alt+e"), key.WithHelp("alt+e", "edit menu")),
		ViewMenu:   key.NewBinding(key.WithKeys("alt+v"), key.WithHelp("alt+v", "view menu")),
		HelpMenu:   key.NewBinding(key.WithKeys("alt+h"), key.WithHelp("alt+h", "help menu")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Keys, k.Menu, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.New, editor.SaveKey, k.Print, k.Quit},
		{k.Copy, k.Cut, k.Undo, k.Redo, k.Clear},
		{k.Theme, k.Fullscreen, k.Changes},
		{k.Menu, k.FileMenu, k.EditMenu, k.ViewMenu, k.HelpMenu, k.Keys},
	}
}

func (k keyMap) sections() []helpoverlay.Section {
	full := k.FullHelp()
	return []helpoverlay.Section{
		{Title: "File", Keys: full[0]},
		{Title: "Edit", Keys: full[1]},
		{Title: "View", Keys: full[2]},
		{Title: "Menus", Keys: full[3]},
	}
}

// command maps a global shortcut to its command.
func (k keyMap) command(msg tea.KeyMsg) state.Command {
	switch {
	case key.Matches(msg, k.New):
		return state.CmdNew
	case key.Matches(msg, k.Print):
		return state.CmdPrint
	case key.Matches(msg, k.Quit):
		return state.CmdQuit
	case key.Matches(msg, k.Copy):
		return state.CmdCopy
	case key.Matches(msg, k.Cut):
		return state.CmdCut
	case key.Matches(msg, k.Undo):
		return state.CmdUndo
	case key.Matches(msg, k.Redo):
		return state.CmdRedo
	case key.Matches(msg, k.Clear):
		return state.CmdClear
	case key.Matches(msg, k.Theme):
		return state.CmdTheme
	case key.Matches(msg, k.Fullscreen):
		return state.CmdFullscreen
	case key.Matches(msg, k.Changes):
		return state.CmdChanges
	case key.Matches(msg, k.Keys):
		return state.CmdKeys
	}
	return state.CmdNone
}

// menu maps a menu shortcut to the dropdown it opens.
func (k keyMap) menu(msg tea.KeyMsg) state.Menu {
	switch {
	case key.Matches(msg, k.Menu), key.Matches(msg, k.FileMenu):
		return state.MenuFile
	case key.Matches(msg, k.EditMenu):
		return state.MenuEdit
	case key.Matches(msg, k.ViewMenu):
		return state.MenuView
	case key.Matches(msg, k.HelpMenu):
		return state.MenuHelp
	}
	return state.MenuNone
}
