package menubar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"notepad/internal/tui/state"
	"notepad/internal/tui/util"
)

// Item is one entry of a dropdown.
type Item struct {
	Label    string
	Shortcut string
	Cmd      state.Command
}

// Flags are the document flags the bar reflects.
type Flags struct {
	Saved   bool
	CanUndo bool
	CanRedo bool
}

var items = map[state.Menu][]Item{
	state.MenuFile: {
		{"New", "ctrl+n", state.CmdNew},
		{"Save", "ctrl+s", state.CmdSave},
		{"Print", "ctrl+p", state.CmdPrint},
		{"Quit", "ctrl+q", state.CmdQuit},
	},
	state.MenuEdit: {
		{"Copy", "ctrl+c", state.CmdCopy},
		{"Cut", "ctrl+x", state.CmdCut},
		{"Undo", "ctrl+z", state.CmdUndo},
		{"Redo", "ctrl+y", state.CmdRedo},
		{"Clear All", "ctrl+l", state.CmdClear},
	},
	state.MenuView: {
		{"Theme", "ctrl+t", state.CmdTheme},
		{"Full Screen", "f11", state.CmdFullscreen},
		{"Changes", "ctrl+d", state.CmdChanges},
	},
	state.MenuHelp: {
		{"About", "", state.CmdAbout},
		{"Keys", "f1", state.CmdKeys},
	},
}

// toolbar mirrors the icon buttons: groups separated by a divider.
var toolbar = [][]Item{
	{{Label: "New", Cmd: state.CmdNew}, {Label: "Save", Cmd: state.CmdSave}, {Label: "Print", Cmd: state.CmdPrint}},
	{{Label: "Copy", Cmd: state.CmdCopy}, {Label: "Cut", Cmd: state.CmdCut}},
	{{Label: "Undo", Cmd: state.CmdUndo}, {Label: "Redo", Cmd: state.CmdRedo}},
}

const (
	brand        = " Notepad"
	titleGap     = "  "
	buttonGap    = " "
	groupDivider = " │ "
)

// Items returns the entries of m.
func Items(m state.Menu) []Item { return items[m] }

// Enabled reports whether it can run given f.
func Enabled(it Item, f Flags) bool {
	switch it.Cmd {
	case state.CmdUndo:
		return f.CanUndo
	case state.CmdRedo:
		return f.CanRedo
	}
	return true
}

// Selected returns the highlighted item of the open dropdown.
func Selected(s state.UIState) (Item, bool) {
	its := items[s.ActiveMenu]
	if s.MenuCursor < 0 || s.MenuCursor >= len(its) {
		return Item{}, false
	}
	return its[s.MenuCursor], true
}

// Height is the number of rows the header occupies: the menu row plus either
// the open dropdown or the toolbar row.
func Height(s state.UIState) int {
	if s.ActiveMenu != state.MenuNone {
		return 1 + len(items[s.ActiveMenu]) + 2 // border
	}
	return 2
}

func dropdownWidth(m state.Menu) int {
	w := 0
	for _, it := range items[m] {
		n := lipgloss.Width(it.Label) + 2
		if it.Shortcut != "" {
			n += lipgloss.Width(it.Shortcut) + 2
		}
		if n > w {
			w = n
		}
	}
	return w
}

// titleSpans returns the [start,end) columns of each menu title.
func titleSpans() map[state.Menu][2]int {
	out := map[state.Menu][2]int{}
	x := lipgloss.Width(brand) + 1 + len(titleGap) // brand + unsaved marker slot
	for _, m := range state.Menus {
		w := lipgloss.Width(m.String()) + 2
		out[m] = [2]int{x, x + w}
		x += w
	}
	return out
}

type buttonSpan struct {
	cmd  state.Command
	span [2]int
}

// buttonSpans returns the [start,end) columns of each toolbar button.
func buttonSpans() []buttonSpan {
	var out []buttonSpan
	x := 1
	for gi, group := range toolbar {
		if gi > 0 {
			x += lipgloss.Width(groupDivider)
		}
		for bi, it := range group {
			if bi > 0 {
				x += len(buttonGap)
			}
			w := lipgloss.Width(it.Label) + 2
			out = append(out, buttonSpan{it.Cmd, [2]int{x, x + w}})
			x += w
		}
	}
	return out
}

// View renders the header rows.
func View(s state.UIState, f Flags, st util.Styles) string {
	var b strings.Builder
	b.WriteString(menuRow(s, f, st))
	b.WriteString("\n")
	if s.ActiveMenu != state.MenuNone {
		b.WriteString(dropdown(s, f, st))
	} else {
		b.WriteString(toolbarRow(f, st))
	}
	return b.String()
}

func menuRow(s state.UIState, f Flags, st util.Styles) string {
	var b strings.Builder
	b.WriteString(st.Brand.Render(brand))
	if f.Saved {
		b.WriteString(st.Bar.Render(" "))
	} else {
		b.WriteString(st.Unsaved.Render("*"))
	}
	b.WriteString(st.Bar.Render(titleGap))
	for _, m := range state.Menus {
		title := " " + m.String() + " "
		if s.ActiveMenu == m {
			b.WriteString(st.MenuActive.Render(title))
		} else {
			b.WriteString(st.MenuTitle.Render(title))
		}
	}
	row := b.String()
	if pad := s.Width - lipgloss.Width(row); pad > 0 {
		row += st.Bar.Render(strings.Repeat(" ", pad))
	}
	return row
}

func dropdown(s state.UIState, f Flags, st util.Styles) string {
	w := dropdownWidth(s.ActiveMenu)
	lines := make([]string, 0, len(items[s.ActiveMenu]))
	for i, it := range items[s.ActiveMenu] {
		label := " " + it.Label
		line := label
		if it.Shortcut != "" {
			gap := w - lipgloss.Width(label) - lipgloss.Width(it.Shortcut) - 1
			if gap < 1 {
				gap = 1
			}
			line += strings.Repeat(" ", gap) + it.Shortcut
		}
		if pad := w - lipgloss.Width(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		switch {
		case !Enabled(it, f):
			line = st.ItemDisabled.Render(line)
		case i == s.MenuCursor:
			line = st.ItemSelected.Render(line)
		default:
			line = st.Item.Render(line)
		}
		lines = append(lines, line)
	}
	box := st.Dropdown.Render(strings.Join(lines, "\n"))
	offset := titleSpans()[s.ActiveMenu][0]
	return lipgloss.NewStyle().MarginLeft(offset).Render(box)
}

func toolbarRow(f Flags, st util.Styles) string {
	var b strings.Builder
	b.WriteString(" ")
	for gi, group := range toolbar {
		if gi > 0 {
			b.WriteString(st.Faint.Render(groupDivider))
		}
		for bi, it := range group {
			if bi > 0 {
				b.WriteString(buttonGap)
			}
			label := "[" + it.Label + "]"
			if Enabled(it, f) {
				b.WriteString(st.Button.Render(label))
			} else {
				b.WriteString(st.ItemDisabled.Render(label))
			}
		}
	}
	return b.String()
}

// Hit is the result of locating a mouse press.
type Hit struct {
	Menu   state.Menu    // a menu title was pressed
	Cmd    state.Command // a dropdown item or toolbar button was pressed
	Inside bool          // the press landed in the command bar's active region
}

// Locate maps a press at column x, row y to what it landed on. Presses on
// disabled entries count as inside but carry no command.
func Locate(s state.UIState, f Flags, x, y int) Hit {
	if y == 0 {
		for m, span := range titleSpans() {
			if x >= span[0] && x < span[1] {
				return Hit{Menu: m, Inside: true}
			}
		}
		return Hit{}
	}
	if s.ActiveMenu != state.MenuNone {
		left := titleSpans()[s.ActiveMenu][0]
		its := items[s.ActiveMenu]
		// row 1 and the last row are the dropdown border
		row := y - 2
		if x < left || x >= left+dropdownWidth(s.ActiveMenu)+2 || y < 1 || row >= len(its)+1 {
			return Hit{}
		}
		if row < 0 || row >= len(its) || !Enabled(its[row], f) {
			return Hit{Inside: true}
		}
		return Hit{Cmd: its[row].Cmd, Inside: true}
	}
	if y == 1 {
		for _, b := range buttonSpans() {
			if x >= b.span[0] && x < b.span[1] {
				if !Enabled(Item{Cmd: b.cmd}, f) {
					return Hit{Inside: true}
				}
				return Hit{Cmd: b.cmd, Inside: true}
			}
		}
	}
	return Hit{}
}
