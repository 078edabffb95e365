package util

import (
	"os"

	"github.com/charmbracelet/lipgloss"

	"notepad/internal/tui/state"
)

// NoColor returns true if color output should be disabled.
func NoColor(explicit bool) bool {
	if explicit {
		return true
	}
	return os.Getenv("NO_COLOR") != ""
}

// Palette defines the colors of one theme.
type Palette struct {
	Fg       lipgloss.Color
	Bg       lipgloss.Color
	Bar      lipgloss.Color
	Accent   lipgloss.Color
	Muted    lipgloss.Color
	Danger   lipgloss.Color
	Success  lipgloss.Color
	Selected lipgloss.Color
}

func LightPalette() Palette {
	return Palette{
		Fg:       lipgloss.Color("#1F2328"),
		Bg:       lipgloss.Color("#FFFFFF"),
		Bar:      lipgloss.Color("#EEF1F5"),
		Accent:   lipgloss.Color("#3D6DFF"),
		Muted:    lipgloss.Color("#6C757D"),
		Danger:   lipgloss.Color("#D9534F"),
		Success:  lipgloss.Color("#2AA876"),
		Selected: lipgloss.Color("#DCE5FF"),
	}
}

func DarkPalette() Palette {
	return Palette{
		Fg:       lipgloss.Color("#E6E6E6"),
		Bg:       lipgloss.Color("#1E1E1E"),
		Bar:      lipgloss.Color("#2D2D30"),
		Accent:   lipgloss.Color("#6F9BFF"),
		Muted:    lipgloss.Color("#8A8F98"),
		Danger:   lipgloss.Color("#F0716B"),
		Success:  lipgloss.Color("#4CC38A"),
		Selected: lipgloss.Color("#3A3D41"),
	}
}

// Styles are the rendered lipgloss styles for one theme.
type Styles struct {
	Bar          lipgloss.Style
	Brand        lipgloss.Style
	Unsaved      lipgloss.Style
	MenuTitle    lipgloss.Style
	MenuActive   lipgloss.Style
	Dropdown     lipgloss.Style
	Item         lipgloss.Style
	ItemSelected lipgloss.Style
	ItemDisabled lipgloss.Style
	Button       lipgloss.Style
	Status       lipgloss.Style
	StatLabel    lipgloss.Style
	Notice       lipgloss.Style
	Dialog       lipgloss.Style
	DialogTitle  lipgloss.Style
	Faint        lipgloss.Style
	DiffAdd      lipgloss.Style
	DiffDel      lipgloss.Style
	Text         lipgloss.Style
}

// NewStyles builds the styles for theme. With noColor only bold/faint
// attributes are kept.
func NewStyles(theme state.Theme, noColor bool) Styles {
	if noColor {
		plain := lipgloss.NewStyle()
		return Styles{
			Bar:          plain,
			Brand:        plain.Bold(true),
			Unsaved:      plain.Bold(true),
			MenuTitle:    plain,
			MenuActive:   plain.Reverse(true),
			Dropdown:     plain.Border(lipgloss.NormalBorder()),
			Item:         plain,
			ItemSelected: plain.Reverse(true),
			ItemDisabled: plain.Faint(true),
			Button:       plain,
			Status:       plain,
			StatLabel:    plain,
			Notice:       plain.Bold(true),
			Dialog:       plain.Border(lipgloss.NormalBorder()).Padding(1, 2),
			DialogTitle:  plain.Bold(true),
			Faint:        plain.Faint(true),
			DiffAdd:      plain,
			DiffDel:      plain,
			Text:         plain,
		}
	}
	p := LightPalette()
	if theme == state.Dark {
		p = DarkPalette()
	}
	base := lipgloss.NewStyle().Foreground(p.Fg)
	return Styles{
		Bar:          base.Background(p.Bar),
		Brand:        base.Background(p.Bar).Bold(true),
		Unsaved:      lipgloss.NewStyle().Background(p.Bar).Foreground(p.Danger).Bold(true),
		MenuTitle:    base.Background(p.Bar),
		MenuActive:   lipgloss.NewStyle().Background(p.Accent).Foreground(lipgloss.Color("#FFFFFF")),
		Dropdown:     base.Border(lipgloss.RoundedBorder()).BorderForeground(p.Muted),
		Item:         base,
		ItemSelected: base.Background(p.Selected).Bold(true),
		ItemDisabled: lipgloss.NewStyle().Foreground(p.Muted).Faint(true),
		Button:       base.Background(p.Bar),
		Status:       lipgloss.NewStyle().Foreground(p.Muted),
		StatLabel:    lipgloss.NewStyle().Foreground(p.Muted).Bold(true),
		Notice:       lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		Dialog:       base.Border(lipgloss.RoundedBorder()).BorderForeground(p.Accent).Padding(1, 2),
		DialogTitle:  lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		Faint:        lipgloss.NewStyle().Foreground(p.Muted),
		DiffAdd:      lipgloss.NewStyle().Foreground(p.Success),
		DiffDel:      lipgloss.NewStyle().Foreground(p.Danger),
		Text:         base,
	}
}
