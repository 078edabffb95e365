package state

// Menu identifies a dropdown in the command bar.
type Menu int

const (
	MenuNone Menu = iota
	MenuFile
	MenuEdit
	MenuView
	MenuHelp
)

// Menus lists the dropdowns in display order.
var Menus = []Menu{MenuFile, MenuEdit, MenuView, MenuHelp}

func (m Menu) String() string {
	switch m {
	case MenuFile:
		return "File"
	case MenuEdit:
		return "Edit"
	case MenuView:
		return "View"
	case MenuHelp:
		return "Help"
	default:
		return ""
	}
}

// Command is a user-invokable action from a menu, a toolbar button or a key.
type Command int

const (
	CmdNone Command = iota
	CmdNew
	CmdSave
	CmdPrint
	CmdQuit
	CmdCopy
	CmdCut
	CmdUndo
	CmdRedo
	CmdClear
	CmdTheme
	CmdFullscreen
	CmdChanges
	CmdAbout
	CmdKeys
)

type Theme int

const (
	Light Theme = iota
	Dark
)

func ParseTheme(s string) Theme {
	if s == "dark" {
		return Dark
	}
	return Light
}

// Overlay is a modal panel drawn in place of the editor.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayFilename
	OverlayAbout
	OverlayKeys
	OverlayChanges
)

// Confirm is a pending yes/no question.
type Confirm int

const (
	ConfirmNone Confirm = iota
	ConfirmNew
	ConfirmClear
)

// UIState holds the transient command-bar and dialog state. None of it is
// persisted.
type UIState struct {
	ActiveMenu Menu
	MenuCursor int

	Overlay Overlay
	Confirm Confirm

	Theme      Theme
	Fullscreen bool

	Width  int
	Height int

	// ephemeral message shown in the status bar
	Notice string
}
