package statusbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"notepad/internal/stats"
	"notepad/internal/tui/util"
)

// View renders the word/character/line counters, the notice (if any) and a
// right-aligned hint, padded to width.
func View(st stats.Stats, notice, hint string, width int, s util.Styles) string {
	parts := []string{
		s.StatLabel.Render("Words:") + " " + s.Status.Render(fmt.Sprint(st.Words)),
		s.StatLabel.Render("Characters:") + " " + s.Status.Render(fmt.Sprint(st.Chars)),
		s.StatLabel.Render("Lines:") + " " + s.Status.Render(fmt.Sprint(st.Lines)),
	}
	left := " " + strings.Join(parts, "  ")
	if notice != "" {
		left += "  " + s.Notice.Render(notice)
	}
	if hint == "" {
		return left
	}
	right := s.Faint.Render(hint) + " "
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}
