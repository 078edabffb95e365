package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"notepad/internal/notepad"
	"notepad/internal/stats"
	"notepad/internal/tui/state"
	"notepad/internal/tui/util"
	"notepad/internal/tui/widgets/editor"
	"notepad/internal/tui/widgets/helpoverlay"
	"notepad/internal/tui/widgets/menubar"
	"notepad/internal/tui/widgets/statusbar"
)

// Options configures the notepad screen.
type Options struct {
	Version       string
	Filename      string // default export name
	AutosaveDelay time.Duration
	Theme         state.Theme
	Fullscreen    bool
	Mouse         bool
	NoColor       bool
	Logger        *log.Logger
}

// Run shows the notepad until the user quits. A pending autosave is written
// before Run returns.
func Run(ctl *notepad.Controller, opts Options) error {
	m := newModel(ctl, opts)
	var popts []tea.ProgramOption
	if opts.Fullscreen {
		popts = append(popts, tea.WithAltScreen())
	}
	if opts.Mouse {
		popts = append(popts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(m, popts...)
	_, err := p.Run()
	if ctl.Flush(context.Background()) {
		m.logger.Info("flushed pending autosave on exit")
	}
	return err
}

// ===== Model =====

// autosaveMsg fires when the debounce window of ticket has elapsed.
type autosaveMsg struct{ ticket notepad.Ticket }

func scheduleAutosave(d time.Duration, t notepad.Ticket) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return autosaveMsg{ticket: t} })
}

type model struct {
	ctl *notepad.Controller

	ui       state.UIState
	editor   editor.Editor
	filename textinput.Model
	panel    viewport.Model // scrollable body of the keys and changes overlays
	help     help.Model
	keys     keyMap
	styles   util.Styles

	noColor bool
	delay   time.Duration
	version string
	logger  *log.Logger
}

func newModel(ctl *notepad.Controller, opts Options) model {
	if opts.AutosaveDelay <= 0 {
		opts.AutosaveDelay = time.Second
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	name := strings.TrimSpace(opts.Filename)
	if name == "" {
		name = notepad.DefaultFilename
	}
	ti := textinput.New()
	ti.Prompt = "Filename: "
	ti.Placeholder = "Enter filename"
	ti.CharLimit = 255
	ti.SetValue(name)

	m := model{
		ctl:      ctl,
		ui:       state.UIState{Theme: opts.Theme, Fullscreen: opts.Fullscreen, Width: 80, Height: 24},
		editor:   editor.New(),
		filename: ti,
		panel:    viewport.New(60, 10),
		help:     help.New(),
		keys:     defaultKeyMap(),
		noColor:  util.NoColor(opts.NoColor),
		delay:    opts.AutosaveDelay,
		version:  opts.Version,
		logger:   opts.Logger,
	}
	m.syncEditor()
	m.applyTheme()
	m.layout()
	return m
}

func (m model) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle("Notepad"), m.editor.Focus())
}

// Update handles all TUI interactions.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ui = state.Resize(m.ui, msg.Width, msg.Height)
	case autosaveMsg:
		m.ctl.Autosave(context.Background(), msg.ticket)
		return m, nil
	case editor.SaveRequestMsg:
		m.save(m.filename.Value())
	case tea.MouseMsg:
		cmd = m.handleMouse(msg)
	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	default:
		var ch *editor.Change
		m.editor, cmd, ch = m.editor.Update(msg)
		if ch != nil {
			cmd = tea.Batch(cmd, m.edit(*ch))
		}
	}
	m.layout()
	return m, cmd
}

func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.ui.Confirm != state.ConfirmNone {
		return m.handleConfirm(msg)
	}
	switch m.ui.Overlay {
	case state.OverlayFilename:
		return m.handleFilename(msg)
	case state.OverlayAbout, state.OverlayKeys, state.OverlayChanges:
		switch msg.String() {
		case "esc", "q", "enter":
			m.ui = state.CloseOverlay(m.ui)
			return nil
		}
		var cmd tea.Cmd
		m.panel, cmd = m.panel.Update(msg)
		return cmd
	}
	if m.ui.ActiveMenu != state.MenuNone {
		if cmd, handled := m.handleMenuKey(msg); handled {
			return cmd
		}
		// any other key closes the dropdown and is handled normally
		m.ui = state.CloseMenu(m.ui)
	}

	m.ui.Notice = ""
	if mn := m.keys.menu(msg); mn != state.MenuNone {
		m.ui = state.ToggleMenu(m.ui, mn)
		return nil
	}
	if c := m.keys.command(msg); c != state.CmdNone {
		return m.run(c)
	}
	var cmd tea.Cmd
	var ch *editor.Change
	m.editor, cmd, ch = m.editor.Update(msg)
	if ch != nil {
		return tea.Batch(cmd, m.edit(*ch))
	}
	return cmd
}

func (m *model) handleMenuKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	n := len(menubar.Items(m.ui.ActiveMenu))
	switch msg.String() {
	case "esc", "f10":
		m.ui = state.CloseMenu(m.ui)
		return nil, true
	case "left":
		m.ui = state.StepMenu(m.ui, -1)
		return nil, true
	case "right":
		m.ui = state.StepMenu(m.ui, 1)
		return nil, true
	case "up":
		m.ui = state.MoveMenuCursor(m.ui, -1, n)
		return nil, true
	case "down":
		m.ui = state.MoveMenuCursor(m.ui, 1, n)
		return nil, true
	case "enter", " ":
		it, ok := menubar.Selected(m.ui)
		if ok && !menubar.Enabled(it, m.flags()) {
			return nil, true
		}
		m.ui = state.CloseMenu(m.ui)
		if !ok {
			return nil, true
		}
		return m.run(it.Cmd), true
	}
	if mn := m.keys.menu(msg); mn != state.MenuNone {
		m.ui = state.ToggleMenu(m.ui, mn)
		return nil, true
	}
	return nil, false
}

// handleMouse treats the command bar as the listener scope for presses: a
// press outside the active menu region closes the dropdown.
func (m *model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	if state.Modal(m.ui) {
		return nil
	}
	hit := menubar.Locate(m.ui, m.flags(), msg.X, msg.Y)
	switch {
	case hit.Menu != state.MenuNone:
		m.ui = state.ToggleMenu(m.ui, hit.Menu)
	case hit.Cmd != state.CmdNone:
		m.ui = state.CloseMenu(m.ui)
		return m.run(hit.Cmd)
	case !hit.Inside:
		m.ui = state.CloseMenu(m.ui)
	}
	return nil
}

func (m *model) handleConfirm(msg tea.KeyMsg) tea.Cmd {
	switch strings.ToLower(msg.String()) {
	case "y", "enter":
		c := m.ui.Confirm
		m.ui = state.ResolveConfirm(m.ui)
		switch c {
		case state.ConfirmNew:
			t, _ := m.ctl.New(true)
			return m.replaced(t)
		case state.ConfirmClear:
			t, _ := m.ctl.ClearAll(true)
			return m.replaced(t)
		}
	case "n", "esc":
		m.ui = state.ResolveConfirm(m.ui)
	}
	return nil
}

func (m *model) handleFilename(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		m.ui = state.CloseOverlay(m.ui)
		m.filename.Blur()
		m.save(m.filename.Value())
		return nil
	case "esc":
		m.ui = state.CloseOverlay(m.ui)
		m.filename.Blur()
		return nil
	}
	var cmd tea.Cmd
	m.filename, cmd = m.filename.Update(msg)
	return cmd
}

// run executes a command from a menu, a toolbar button or a shortcut.
func (m *model) run(c state.Command) tea.Cmd {
	ctx := context.Background()
	switch c {
	case state.CmdNew:
		t, err := m.ctl.New(false)
		if errors.Is(err, notepad.ErrConfirmationRequired) {
			m.ui = state.AskConfirm(m.ui, state.ConfirmNew)
			return nil
		}
		return m.replaced(t)
	case state.CmdSave:
		m.ui = state.OpenOverlay(m.ui, state.OverlayFilename)
		return m.filename.Focus()
	case state.CmdPrint:
		if err := m.ctl.Print(ctx); err != nil {
			m.ui = state.SetNotice(m.ui, "Print failed: "+err.Error())
		} else {
			m.ui = state.SetNotice(m.ui, "Opened print view")
		}
	case state.CmdQuit:
		m.ctl.Flush(ctx)
		return tea.Quit
	case state.CmdCopy:
		if m.ctl.Copy() {
			m.ui = state.SetNotice(m.ui, "Copied to clipboard")
		}
	case state.CmdCut:
		if t, ok := m.ctl.Cut(); ok {
			m.ui = state.SetNotice(m.ui, "Cut to clipboard")
			return m.replaced(t)
		}
	case state.CmdUndo:
		if t, ok := m.ctl.Undo(); ok {
			return m.replaced(t)
		}
	case state.CmdRedo:
		if t, ok := m.ctl.Redo(); ok {
			return m.replaced(t)
		}
	case state.CmdClear:
		if _, err := m.ctl.ClearAll(false); errors.Is(err, notepad.ErrConfirmationRequired) {
			m.ui = state.AskConfirm(m.ui, state.ConfirmClear)
		}
	case state.CmdTheme:
		m.ui = state.ToggleTheme(m.ui)
		m.applyTheme()
	case state.CmdFullscreen:
		m.ui = state.ToggleFullscreen(m.ui)
		if m.ui.Fullscreen {
			return tea.EnterAltScreen
		}
		return tea.ExitAltScreen
	case state.CmdChanges:
		m.showChanges(ctx)
	case state.CmdAbout:
		m.ui = state.OpenOverlay(m.ui, state.OverlayAbout)
	case state.CmdKeys:
		m.showPanel(state.OverlayKeys, helpoverlay.Keys(m.keys.sections(), m.styles))
	}
	return nil
}

// edit records a change typed into the editor and restarts the debounce.
func (m *model) edit(ch editor.Change) tea.Cmd {
	return scheduleAutosave(m.delay, m.ctl.Edit(ch.Next))
}

// replaced syncs the editor after the controller swapped the text.
func (m *model) replaced(t notepad.Ticket) tea.Cmd {
	m.syncEditor()
	return scheduleAutosave(m.delay, t)
}

// syncEditor shows the document in the editor. Text the editor cannot hold
// verbatim stays read-only until New, Clear All, Cut or Undo replaces it.
func (m *model) syncEditor() {
	text := m.ctl.Text()
	if m.editor.SetValue(text) {
		return
	}
	msg := "Read-only: tabs, carriage returns or control characters cannot be edited here"
	if n := stats.LineCount(text); n > editor.MaxLines {
		msg = fmt.Sprintf("Read-only: %d lines exceed the editor limit of %d", n, editor.MaxLines)
	}
	m.logger.Warn("document opened read-only", "lines", stats.LineCount(text))
	m.ui = state.SetNotice(m.ui, msg)
}

func (m *model) save(name string) {
	path, err := m.ctl.Save(context.Background(), name)
	if err != nil {
		m.ui = state.SetNotice(m.ui, "Save failed: "+err.Error())
		return
	}
	m.ui = state.SetNotice(m.ui, "Saved to "+path)
}

func (m *model) showChanges(ctx context.Context) {
	stored, err := m.ctl.Persisted(ctx)
	if err != nil {
		m.ui = state.SetNotice(m.ui, err.Error())
		return
	}
	cur := m.ctl.Text()
	ins, del := changeCounts(stored, cur)
	title := m.styles.DialogTitle.Render(fmt.Sprintf("Changes since last write (+%d -%d)", ins, del))
	m.showPanel(state.OverlayChanges, title+"\n\n"+renderChanges(stored, cur, m.styles))
}

func (m *model) showPanel(o state.Overlay, body string) {
	m.ui = state.OpenOverlay(m.ui, o)
	m.panel.SetContent(body)
	m.panel.GotoTop()
}

func (m *model) applyTheme() {
	m.styles = util.NewStyles(m.ui.Theme, m.noColor)
	m.editor.SetStyles(m.styles)
}

func (m *model) layout() {
	w := m.ui.Width
	bodyH := m.bodyHeight()
	m.editor.SetSize(w, bodyH)
	m.panel.Width = max(w-8, 10)
	m.panel.Height = max(bodyH-4, 3)
	m.help.Width = w
	m.filename.Width = max(min(40, w-24), 8)
}

func (m model) bodyHeight() int {
	return max(m.ui.Height-menubar.Height(m.ui)-1, 1)
}

func (m model) flags() menubar.Flags {
	return menubar.Flags{Saved: m.ctl.Saved(), CanUndo: m.ctl.CanUndo(), CanRedo: m.ctl.CanRedo()}
}

// ===== View =====

func (m model) View() string {
	header := menubar.View(m.ui, m.flags(), m.styles)
	body := m.editor.View()
	if d := m.dialog(); d != "" {
		body = lipgloss.Place(m.ui.Width, m.bodyHeight(), lipgloss.Center, lipgloss.Center, d)
	}
	hint := m.help.ShortHelpView(m.keys.ShortHelp())
	if m.editor.ReadOnly() {
		hint = "read-only • " + hint
	}
	status := statusbar.View(m.ctl.Stats(), m.ui.Notice, hint, m.ui.Width, m.styles)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, status)
}

func (m model) dialog() string {
	yesNo := m.styles.Faint.Render("y: yes   n: no")
	switch m.ui.Confirm {
	case state.ConfirmNew:
		return m.styles.Dialog.Render("You have unsaved changes. Are you sure you want to create a new document?\n\n" + yesNo)
	case state.ConfirmClear:
		return m.styles.Dialog.Render("Are you sure you want to clear all text?\n\n" + yesNo)
	}
	switch m.ui.Overlay {
	case state.OverlayFilename:
		return m.styles.Dialog.Render(
			m.styles.DialogTitle.Render("Save as") + "\n\n" +
				m.filename.View() + ".txt\n\n" +
				m.styles.Faint.Render("enter: save   esc: cancel"))
	case state.OverlayAbout:
		return m.styles.Dialog.Render(helpoverlay.About(m.version, m.styles))
	case state.OverlayKeys, state.OverlayChanges:
		return m.styles.Dialog.Render(m.panel.View())
	}
	return ""
}
