package editor

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"notepad/internal/tui/util"
)

// SaveRequestMsg is raised when the save shortcut is pressed in the editor.
// The editor never saves by itself.
type SaveRequestMsg struct{}

// Change describes one edit of the buffer.
type Change struct {
	Prev string
	Next string
}

// SaveKey is the shortcut intercepted by the editor.
var SaveKey = key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save"))

// MaxLines is the row limit of the textarea; longer text is cut on load.
const MaxLines = 10000

// Editor is the editing surface: a textarea that reports value changes.
type Editor struct {
	ta       textarea.Model
	readOnly bool
}

func New() Editor {
	ta := textarea.New()
	ta.Placeholder = "Start typing here..."
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.Focus()
	return Editor{ta: ta}
}

func (e Editor) Value() string { return e.ta.Value() }

// SetValue replaces the buffer without reporting a change. The textarea
// rewrites tabs, carriage returns and control characters and drops rows past
// MaxLines; when the buffer is not exactly s the editor turns read-only so the
// rewritten text is never reported as an edit. It returns false in that case.
func (e *Editor) SetValue(s string) bool {
	e.ta.SetValue(s)
	e.readOnly = e.ta.Value() != s
	return !e.readOnly
}

// ReadOnly reports whether the last SetValue could not be shown verbatim.
func (e Editor) ReadOnly() bool { return e.readOnly }

// navigates reports whether k only moves the cursor.
func (e Editor) navigates(k tea.KeyMsg) bool {
	km := e.ta.KeyMap
	return key.Matches(k,
		km.CharacterForward, km.CharacterBackward,
		km.WordForward, km.WordBackward,
		km.LineNext, km.LinePrevious,
		km.LineStart, km.LineEnd,
		km.InputBegin, km.InputEnd,
	)
}

func (e *Editor) SetSize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	e.ta.SetWidth(width)
	e.ta.SetHeight(height)
}

// SetStyles applies theme colors to the textarea.
func (e *Editor) SetStyles(s util.Styles) {
	st := e.ta.FocusedStyle
	st.Base = s.Text
	st.Text = s.Text
	st.CursorLine = s.Text
	st.Placeholder = s.Faint
	st.EndOfBuffer = s.Faint
	e.ta.FocusedStyle = st
	e.ta.BlurredStyle = st
}

func (e *Editor) Focus() tea.Cmd { return e.ta.Focus() }

// Update forwards msg to the textarea. The returned Change is non-nil only if
// the buffer value changed.
func (e Editor) Update(msg tea.Msg) (Editor, tea.Cmd, *Change) {
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, SaveKey) {
		return e, func() tea.Msg { return SaveRequestMsg{} }, nil
	}
	if k, ok := msg.(tea.KeyMsg); ok && e.readOnly && !e.navigates(k) {
		return e, nil, nil
	}
	prev := e.ta.Value()
	var cmd tea.Cmd
	e.ta, cmd = e.ta.Update(msg)
	next := e.ta.Value()
	if next == prev {
		return e, cmd, nil
	}
	if e.readOnly {
		e.ta.SetValue(prev)
		return e, cmd, nil
	}
	return e, cmd, &Change{Prev: prev, Next: next}
}

func (e Editor) View() string { return e.ta.View() }
